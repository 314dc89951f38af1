// Command seed rebuilds the yearbook schema and fills it with sample users.
// Destructive: it drops the users and sessions tables first.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"yearbook_backend/internal/domain/entity"
	authadapters "yearbook_backend/internal/feature/auth/adapters"
	platformdb "yearbook_backend/internal/platform/db"
)

const seedPassword = "password123"

var branches = []string{"CSE", "ECE", "CST", "MECH", "CIVIL", "EEE"}
var batches = []int{2023, 2024, 2025}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	db := platformdb.OpenDB()

	log.Println("dropping tables...")
	if err := db.Migrator().DropTable(&entity.User{}, &authadapters.SessionModel{}); err != nil {
		log.Fatalf("failed to drop tables: %v", err)
	}
	log.Println("creating tables...")
	if err := platformdb.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	users := []entity.User{
		newUser(hash, "22A81A0532", "Arjun Mehta", "arjun@example.com", entity.UserTypeGraduated, 2024, "CSE", "A"),
		newUser(hash, "22A81A0564", "Priya Nair", "priya@example.com", entity.UserTypeGraduated, 2024, "CSE", "A"),
		newUser(hash, "22A81A0567", "Rahul Varma", "rahul@example.com", entity.UserTypeGraduated, 2024, "CSE", "B"),
	}
	users[0].IsBestOutgoing = true
	users[0].IsBranchTopper = true

	counter := 1
	for _, year := range batches {
		for _, branch := range branches {
			roll := fmt.Sprintf("%d%s%03d", year, branch, counter)
			name := fmt.Sprintf("%s Student %d", branch, counter)
			email := fmt.Sprintf("%s.%d@example.com", strings.ToLower(branch), counter)
			users = append(users, newUser(hash, roll, name, email, entity.UserTypeGraduated, year, branch, "A"))
			counter++
		}
	}

	repo := authadapters.NewUserGorm(db)
	ctx := context.Background()
	for i := range users {
		if err := repo.Create(ctx, &users[i]); err != nil {
			log.Fatalf("failed to insert %s: %v", users[i].RollNumber, err)
		}
	}

	log.Printf("inserted %d users", len(users))
}

func newUser(hash []byte, roll, name, email, userType string, batch int, branch, section string) entity.User {
	return entity.User{
		RollNumber:   roll,
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
		BatchYear:    batch,
		Branch:       branch,
		Section:      section,
		IsNew:        true,
	}
}
