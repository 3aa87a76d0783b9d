package dto

// ChangePasswordRequest is the payload for replacing a user's password
type ChangePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// ChangePasswordResponse confirms a completed password change
type ChangePasswordResponse struct {
	Message string `json:"message"`
}
