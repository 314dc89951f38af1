package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"yearbook_backend/internal/app/di"
	"yearbook_backend/internal/app/router"
	authadapters "yearbook_backend/internal/feature/auth/adapters"
	authhandler "yearbook_backend/internal/feature/auth/transport/handler"
	authusecase "yearbook_backend/internal/feature/auth/usecase"
	directoryadapters "yearbook_backend/internal/feature/directory/adapters"
	directoryhandler "yearbook_backend/internal/feature/directory/transport/handler"
	directoryusecase "yearbook_backend/internal/feature/directory/usecase"
	profileadapters "yearbook_backend/internal/feature/profile/adapters"
	profilehandler "yearbook_backend/internal/feature/profile/transport/handler"
	profileusecase "yearbook_backend/internal/feature/profile/usecase"
	platformdb "yearbook_backend/internal/platform/db"
	platformredis "yearbook_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := platformdb.OpenDB()

	// Redis; without it sessions land in the relational fallback
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(platformredis.LoadConfig()); err != nil {
		log.Println("[WARN] Redis unavailable. Sessions fall back to the database.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	directoryRepo := directoryadapters.NewDirectoryGorm(db)
	profileRepo := profileadapters.NewProfileGorm(db)
	sessionStore := di.NewSessionStore(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionStore)
	directoryUC := directoryusecase.NewDirectoryUsecase(directoryRepo)
	profileUC := profileusecase.NewProfileUsecase(profileRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	directoryH := directoryhandler.NewDirectoryHandler(directoryUC)
	profileH := profilehandler.NewProfileHandler(profileUC)

	router := router.NewRouter(authH, directoryH, profileH, sessionStore)

	addr := ":" + os.Getenv("PORT")
	if addr == ":" {
		addr = ":8080"
	}
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
