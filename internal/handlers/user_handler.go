package handlers

import (
	"net/http"

	"bankoffice/internal/dto"
	"bankoffice/internal/errors"
	"bankoffice/internal/metrics"
	"bankoffice/internal/repositories"

	"github.com/labstack/echo/v4"
)

// UserHandler handles user credential HTTP requests
type UserHandler struct {
	userRepo repositories.UserRepositoryInterface
	metrics  *metrics.Metrics
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo repositories.UserRepositoryInterface, m *metrics.Metrics) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
		metrics:  m,
	}
}

// ChangePassword replaces a user's password
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	if req.Username == "" || req.NewPassword == "" {
		return SendError(c, errors.ValidationRequiredField)
	}

	if err := h.userRepo.ChangePassword(req.Username, req.NewPassword); err != nil {
		if h.metrics != nil {
			h.metrics.PasswordChange("failed")
		}
		return sendRepositoryError(c, err)
	}

	if h.metrics != nil {
		h.metrics.PasswordChange("success")
	}

	return c.JSON(http.StatusOK, dto.ChangePasswordResponse{
		Message: "Password changed successfully.",
	})
}
