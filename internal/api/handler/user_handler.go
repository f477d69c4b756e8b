package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzahub/ordering-system/internal/core/domain"
	"github.com/pizzahub/ordering-system/internal/core/ports"
)

type updateProfileRequest struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// UserHandler exposes the authenticated profile endpoints.
type UserHandler struct {
	service ports.AuthService
}

// NewUserHandler builds a UserHandler around the given auth service.
func NewUserHandler(service ports.AuthService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile godoc
// @Summary      Get profile
// @Description  Returns the authenticated user's profile.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} domain.User
// @Failure      401 {object} map[string]string
// @Router       /api/user [get]
func (h *UserHandler) Profile(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load profile"})
	}

	return c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary      Update profile
// @Description  Updates the authenticated user's name, phone or password.
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body updateProfileRequest true "Fields to update"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /api/user [put]
func (h *UserHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	err = h.service.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID:          userID,
		Name:            req.Name,
		Phone:           req.Phone,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "current password is incorrect"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "user not found"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update profile"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
}
