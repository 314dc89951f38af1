package usecase

import (
	"context"
	"errors"
	"testing"

	"yearbook_backend/internal/domain/entity"
)

// mockDirectoryRepository is a mock implementation of the DirectoryRepository interface.
type mockDirectoryRepository struct {
	ListGraduatedBatchYearsFunc func(ctx context.Context) ([]int, error)
	FindBestOutgoingFunc        func(ctx context.Context, year int) (*entity.User, error)
	ListBranchesFunc            func(ctx context.Context, year int) ([]string, error)
	FindBranchTopperFunc        func(ctx context.Context, year int, branch string) (*entity.User, error)
	ListSectionsFunc            func(ctx context.Context, year int, branch string) ([]string, error)
	ListSectionStudentsFunc     func(ctx context.Context, year int, branch, section string) ([]entity.User, error)
	FindByRollNumberFunc        func(ctx context.Context, rollNumber string) (*entity.User, error)
	ListAllBranchesFunc         func(ctx context.Context) ([]string, error)
}

func (m *mockDirectoryRepository) ListGraduatedBatchYears(ctx context.Context) ([]int, error) {
	if m.ListGraduatedBatchYearsFunc != nil {
		return m.ListGraduatedBatchYearsFunc(ctx)
	}
	return nil, nil
}

func (m *mockDirectoryRepository) FindBestOutgoing(ctx context.Context, year int) (*entity.User, error) {
	if m.FindBestOutgoingFunc != nil {
		return m.FindBestOutgoingFunc(ctx, year)
	}
	return nil, nil
}

func (m *mockDirectoryRepository) ListBranches(ctx context.Context, year int) ([]string, error) {
	if m.ListBranchesFunc != nil {
		return m.ListBranchesFunc(ctx, year)
	}
	return nil, nil
}

func (m *mockDirectoryRepository) FindBranchTopper(ctx context.Context, year int, branch string) (*entity.User, error) {
	if m.FindBranchTopperFunc != nil {
		return m.FindBranchTopperFunc(ctx, year, branch)
	}
	return nil, nil
}

func (m *mockDirectoryRepository) ListSections(ctx context.Context, year int, branch string) ([]string, error) {
	if m.ListSectionsFunc != nil {
		return m.ListSectionsFunc(ctx, year, branch)
	}
	return nil, nil
}

func (m *mockDirectoryRepository) ListSectionStudents(ctx context.Context, year int, branch, section string) ([]entity.User, error) {
	if m.ListSectionStudentsFunc != nil {
		return m.ListSectionStudentsFunc(ctx, year, branch, section)
	}
	return nil, nil
}

func (m *mockDirectoryRepository) FindByRollNumber(ctx context.Context, rollNumber string) (*entity.User, error) {
	if m.FindByRollNumberFunc != nil {
		return m.FindByRollNumberFunc(ctx, rollNumber)
	}
	return nil, ErrUserNotFound
}

func (m *mockDirectoryRepository) ListAllBranches(ctx context.Context) ([]string, error) {
	if m.ListAllBranchesFunc != nil {
		return m.ListAllBranchesFunc(ctx)
	}
	return nil, nil
}

func TestDirectoryUsecase_GetBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("with best outgoing student", func(t *testing.T) {
		mockRepo := &mockDirectoryRepository{
			FindBestOutgoingFunc: func(ctx context.Context, year int) (*entity.User, error) {
				return &entity.User{RollNumber: "22A81A0532", BatchYear: year, IsBestOutgoing: true}, nil
			},
			ListBranchesFunc: func(ctx context.Context, year int) ([]string, error) {
				return []string{"CSE", "ECE"}, nil
			},
		}

		uc := NewDirectoryUsecase(mockRepo)
		detail, err := uc.GetBatch(ctx, 2024)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.BatchYear != 2024 {
			t.Errorf("unexpected batch year: %d", detail.BatchYear)
		}
		if detail.BestOutgoingStudent == nil || detail.BestOutgoingStudent.RollNumber != "22A81A0532" {
			t.Errorf("unexpected best outgoing student: %+v", detail.BestOutgoingStudent)
		}
		if len(detail.Branches) != 2 {
			t.Errorf("unexpected branches: %v", detail.Branches)
		}
	})

	t.Run("without best outgoing student", func(t *testing.T) {
		uc := NewDirectoryUsecase(&mockDirectoryRepository{
			ListBranchesFunc: func(ctx context.Context, year int) ([]string, error) {
				return []string{"CSE"}, nil
			},
		})
		detail, err := uc.GetBatch(ctx, 2023)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.BestOutgoingStudent != nil {
			t.Errorf("expected absent honoree, got %+v", detail.BestOutgoingStudent)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		repoErr := errors.New("db down")
		uc := NewDirectoryUsecase(&mockDirectoryRepository{
			FindBestOutgoingFunc: func(ctx context.Context, year int) (*entity.User, error) {
				return nil, repoErr
			},
		})
		if _, err := uc.GetBatch(ctx, 2024); !errors.Is(err, repoErr) {
			t.Errorf("expected repository error, got: %v", err)
		}
	})
}

func TestDirectoryUsecase_GetBranch(t *testing.T) {
	ctx := context.Background()

	t.Run("with topper", func(t *testing.T) {
		uc := NewDirectoryUsecase(&mockDirectoryRepository{
			FindBranchTopperFunc: func(ctx context.Context, year int, branch string) (*entity.User, error) {
				return &entity.User{RollNumber: "22A81A0564", IsBranchTopper: true}, nil
			},
			ListSectionsFunc: func(ctx context.Context, year int, branch string) ([]string, error) {
				return []string{"A", "B"}, nil
			},
		})

		detail, err := uc.GetBranch(ctx, 2024, "CSE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.BranchTopper == nil || !detail.BranchTopper.IsBranchTopper {
			t.Errorf("unexpected topper: %+v", detail.BranchTopper)
		}
		if len(detail.Sections) != 2 {
			t.Errorf("unexpected sections: %v", detail.Sections)
		}
	})

	t.Run("without topper", func(t *testing.T) {
		uc := NewDirectoryUsecase(&mockDirectoryRepository{})
		detail, err := uc.GetBranch(ctx, 2024, "EEE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.BranchTopper != nil {
			t.Errorf("expected absent topper, got %+v", detail.BranchTopper)
		}
	})
}

func TestDirectoryUsecase_ListSectionStudents(t *testing.T) {
	ctx := context.Background()

	t.Run("maps to public profiles", func(t *testing.T) {
		uc := NewDirectoryUsecase(&mockDirectoryRepository{
			ListSectionStudentsFunc: func(ctx context.Context, year int, branch, section string) ([]entity.User, error) {
				return []entity.User{
					{RollNumber: "A1", PasswordHash: "secret"},
					{RollNumber: "A2"},
				}, nil
			},
		})

		profiles, err := uc.ListSectionStudents(ctx, 2024, "CSE", "A")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(profiles) != 2 || profiles[0].RollNumber != "A1" {
			t.Errorf("unexpected profiles: %+v", profiles)
		}
	})

	t.Run("empty section is an empty slice", func(t *testing.T) {
		uc := NewDirectoryUsecase(&mockDirectoryRepository{})
		profiles, err := uc.ListSectionStudents(ctx, 2024, "CSE", "Z")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profiles == nil {
			t.Fatal("expected a non-nil empty slice")
		}
		if len(profiles) != 0 {
			t.Errorf("expected no profiles, got %d", len(profiles))
		}
	})
}

func TestDirectoryUsecase_GetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		uc := NewDirectoryUsecase(&mockDirectoryRepository{
			FindByRollNumberFunc: func(ctx context.Context, roll string) (*entity.User, error) {
				return &entity.User{RollNumber: roll}, nil
			},
		})
		profile, err := uc.GetProfile(ctx, "22A81A0532")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.PersonalQuote != entity.PlaceholderQuote {
			t.Errorf("expected placeholder quote, got %q", profile.PersonalQuote)
		}
	})

	t.Run("unknown roll number", func(t *testing.T) {
		uc := NewDirectoryUsecase(&mockDirectoryRepository{})
		if _, err := uc.GetProfile(ctx, "UNKNOWN"); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}
