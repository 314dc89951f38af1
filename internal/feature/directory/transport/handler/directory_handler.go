// Package handler provides HTTP handlers for the directory feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yearbook_backend/internal/domain/entity"
	"yearbook_backend/internal/feature/directory/transport/http/dto"
	"yearbook_backend/internal/feature/directory/usecase"
)

// DirectoryUsecase defines the directory operations this handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type DirectoryUsecase interface {
	ListBatches(ctx context.Context) ([]int, error)
	GetBatch(ctx context.Context, year int) (*usecase.BatchDetail, error)
	GetBranch(ctx context.Context, year int, branch string) (*usecase.BranchDetail, error)
	ListSectionStudents(ctx context.Context, year int, branch, section string) ([]*entity.PublicProfile, error)
	GetProfile(ctx context.Context, rollNumber string) (*entity.PublicProfile, error)
	ListAllBranches(ctx context.Context) ([]string, error)
}

// DirectoryHandler processes HTTP requests for the browsing hierarchy and
// profile lookups. All its routes sit behind the session middleware.
type DirectoryHandler struct {
	directory DirectoryUsecase
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directory DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// ListBatches handles GET /api/batches.
func (h *DirectoryHandler) ListBatches(c *gin.Context) {
	years, err := h.directory.ListBatches(c.Request.Context())
	if err != nil {
		h.serverError(c, "list batches", err)
		return
	}
	c.JSON(http.StatusOK, years)
}

// GetBatch handles GET /api/batch/:year.
func (h *DirectoryHandler) GetBatch(c *gin.Context) {
	year, ok := h.batchYear(c)
	if !ok {
		return
	}
	detail, err := h.directory.GetBatch(c.Request.Context(), year)
	if err != nil {
		h.serverError(c, "get batch", err)
		return
	}
	c.JSON(http.StatusOK, dto.BatchResp{
		BatchYear:           detail.BatchYear,
		BestOutgoingStudent: detail.BestOutgoingStudent,
		Branches:            detail.Branches,
	})
}

// GetBranch handles GET /api/branch/:year/:branch.
func (h *DirectoryHandler) GetBranch(c *gin.Context) {
	year, ok := h.batchYear(c)
	if !ok {
		return
	}
	detail, err := h.directory.GetBranch(c.Request.Context(), year, c.Param("branch"))
	if err != nil {
		h.serverError(c, "get branch", err)
		return
	}
	c.JSON(http.StatusOK, dto.BranchResp{
		BranchTopper: detail.BranchTopper,
		Sections:     detail.Sections,
	})
}

// ListSectionStudents handles GET /api/section/:year/:branch/:section.
// A section with no members is an empty array, not an error.
func (h *DirectoryHandler) ListSectionStudents(c *gin.Context) {
	year, ok := h.batchYear(c)
	if !ok {
		return
	}
	students, err := h.directory.ListSectionStudents(c.Request.Context(), year, c.Param("branch"), c.Param("section"))
	if err != nil {
		h.serverError(c, "list section students", err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetProfile handles GET /api/profile/:roll.
func (h *DirectoryHandler) GetProfile(c *gin.Context) {
	profile, err := h.directory.GetProfile(c.Request.Context(), c.Param("roll"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.serverError(c, "get profile", err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListAllBranches handles GET /api/branches.
func (h *DirectoryHandler) ListAllBranches(c *gin.Context) {
	branches, err := h.directory.ListAllBranches(c.Request.Context())
	if err != nil {
		h.serverError(c, "list all branches", err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

// batchYear parses the :year path parameter, answering 400 itself when the
// value is not an integer.
func (h *DirectoryHandler) batchYear(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid batch year"})
		return 0, false
	}
	return year, true
}

func (h *DirectoryHandler) serverError(c *gin.Context, op string, err error) {
	slog.Error("directory query failed", "op", op, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
