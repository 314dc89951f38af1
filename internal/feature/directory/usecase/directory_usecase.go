package usecase

import (
	"context"

	"yearbook_backend/internal/domain/entity"
)

// DirectoryRepository abstracts the read-only queries the directory needs.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type DirectoryRepository interface {
	// ListGraduatedBatchYears returns the distinct batch years of graduated
	// users, newest first.
	ListGraduatedBatchYears(ctx context.Context) ([]int, error)

	// FindBestOutgoing returns the best outgoing student of a batch, or
	// (nil, nil) when the batch has none.
	FindBestOutgoing(ctx context.Context, year int) (*entity.User, error)

	// ListBranches returns the distinct branch codes present in a batch.
	ListBranches(ctx context.Context, year int) ([]string, error)

	// FindBranchTopper returns the topper of a (batch, branch) pair, or
	// (nil, nil) when there is none.
	FindBranchTopper(ctx context.Context, year int, branch string) (*entity.User, error)

	// ListSections returns the distinct section codes of a (batch, branch) pair.
	ListSections(ctx context.Context, year int, branch string) ([]string, error)

	// ListSectionStudents returns the members of a section in insertion order.
	ListSectionStudents(ctx context.Context, year int, branch, section string) ([]entity.User, error)

	// FindByRollNumber returns the user with the given roll number or
	// ErrUserNotFound.
	FindByRollNumber(ctx context.Context, rollNumber string) (*entity.User, error)

	// ListAllBranches returns the distinct branch codes across all users.
	ListAllBranches(ctx context.Context) ([]string, error)
}

// BatchDetail is the directory view of one admission batch.
type BatchDetail struct {
	BatchYear           int
	BestOutgoingStudent *entity.PublicProfile
	Branches            []string
}

// BranchDetail is the directory view of one branch within a batch.
type BranchDetail struct {
	BranchTopper *entity.PublicProfile
	Sections     []string
}

// DirectoryUsecase derives the four-level browsing hierarchy and the honor
// roll from the flat user table. It is stateless: every call reflects the
// store's current committed state.
type DirectoryUsecase struct {
	repo DirectoryRepository
}

// NewDirectoryUsecase creates a new DirectoryUsecase with the given repository.
func NewDirectoryUsecase(repo DirectoryRepository) *DirectoryUsecase {
	return &DirectoryUsecase{repo: repo}
}

// ListBatches returns the graduated batch years, newest first. Current
// students are not year-cohorted in the public directory.
func (u *DirectoryUsecase) ListBatches(ctx context.Context) ([]int, error) {
	return u.repo.ListGraduatedBatchYears(ctx)
}

// GetBatch returns the honor-roll entry and branch set of one batch.
func (u *DirectoryUsecase) GetBatch(ctx context.Context, year int) (*BatchDetail, error) {
	best, err := u.repo.FindBestOutgoing(ctx, year)
	if err != nil {
		return nil, err
	}
	branches, err := u.repo.ListBranches(ctx, year)
	if err != nil {
		return nil, err
	}

	detail := &BatchDetail{BatchYear: year, Branches: branches}
	if best != nil {
		detail.BestOutgoingStudent = best.ToPublic()
	}
	return detail, nil
}

// GetBranch returns the honor-roll entry and section set of one branch.
func (u *DirectoryUsecase) GetBranch(ctx context.Context, year int, branch string) (*BranchDetail, error) {
	topper, err := u.repo.FindBranchTopper(ctx, year, branch)
	if err != nil {
		return nil, err
	}
	sections, err := u.repo.ListSections(ctx, year, branch)
	if err != nil {
		return nil, err
	}

	detail := &BranchDetail{Sections: sections}
	if topper != nil {
		detail.BranchTopper = topper.ToPublic()
	}
	return detail, nil
}

// ListSectionStudents returns the public profiles of a section's members.
// An unknown section is an empty slice, not an error.
func (u *DirectoryUsecase) ListSectionStudents(ctx context.Context, year int, branch, section string) ([]*entity.PublicProfile, error) {
	users, err := u.repo.ListSectionStudents(ctx, year, branch, section)
	if err != nil {
		return nil, err
	}
	profiles := make([]*entity.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].ToPublic())
	}
	return profiles, nil
}

// GetProfile returns the public profile for a roll number.
func (u *DirectoryUsecase) GetProfile(ctx context.Context, rollNumber string) (*entity.PublicProfile, error) {
	user, err := u.repo.FindByRollNumber(ctx, rollNumber)
	if err != nil {
		return nil, err
	}
	return user.ToPublic(), nil
}

// ListAllBranches returns every branch code in the directory, for global
// navigation irrespective of batch.
func (u *DirectoryUsecase) ListAllBranches(ctx context.Context) ([]string, error) {
	return u.repo.ListAllBranches(ctx)
}
