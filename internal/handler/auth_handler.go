package handler

import (
	"go-purchase-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles account authentication
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(ErrorResponse("Invalid JSON", CodeValidationError))
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(ErrorResponse("Email and password are required", CodeValidationError))
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).
			JSON(ErrorResponse("Invalid email or password", CodeUnauthorized))
	}

	return c.JSON(SuccessResponse(response))
}
