package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "craftquiz/internal/errors"
	"craftquiz/internal/service"
)

// AuthHandler handles the signup and login endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// CredentialsRequest is the request body for signup and login.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup registers a new user. Duplicate emails and missing fields are 400s;
// anything unexpected is a 500 with a generic message.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.StatusResponse{Success: false, Message: "Email and password are required"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.StatusResponse{Success: false, Message: "Email and password are required"})
	}

	if err := h.authService.Signup(c.Request().Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			return c.JSON(http.StatusBadRequest, apperrors.StatusResponse{Success: false, Message: "User already exists"})
		}
		log.Printf("signup error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.StatusResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(http.StatusOK, apperrors.StatusResponse{Success: true, Message: "Signup successful"})
}

// Login verifies credentials. Auth failures are reported with a 200 status
// and success:false in the body, not a 4xx.
func (h *AuthHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.StatusResponse{Success: false, Message: "Email and password are required"})
	}

	err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusOK, apperrors.StatusResponse{Success: false, Message: "User not found"})
	case errors.Is(err, service.ErrInvalidPassword):
		return c.JSON(http.StatusOK, apperrors.StatusResponse{Success: false, Message: "Invalid password"})
	case err != nil:
		log.Printf("login error: %v", err)
		return c.JSON(http.StatusInternalServerError, apperrors.StatusResponse{Success: false, Message: "Server error"})
	}

	return c.JSON(http.StatusOK, apperrors.StatusResponse{Success: true, Message: "Login successful"})
}
