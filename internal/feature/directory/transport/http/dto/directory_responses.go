// Package dto defines data transfer objects for the directory feature's HTTP transport layer.
package dto

import "yearbook_backend/internal/domain/entity"

// BatchResp is the body for /api/batch/:year.
type BatchResp struct {
	BatchYear           int                   `json:"batch_year"`
	BestOutgoingStudent *entity.PublicProfile `json:"best_outgoing_student"`
	Branches            []string              `json:"branches"`
}

// BranchResp is the body for /api/branch/:year/:branch.
type BranchResp struct {
	BranchTopper *entity.PublicProfile `json:"branch_topper"`
	Sections     []string              `json:"sections"`
}
