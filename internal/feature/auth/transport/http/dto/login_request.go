// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq represents the request body for the /api/login endpoint.
// Both fields are mandatory; a missing one is a 400, not a 401.
type LoginReq struct {
	RollNumber string `json:"roll_number" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
