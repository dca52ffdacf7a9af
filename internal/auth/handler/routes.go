package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/md-ali-0/skillsync-server/internal/middleware"
)

func RegisterRoutes(router fiber.Router, h *AuthHandler, tokens middleware.TokenVerifier) {
	auth := router.Group("/auth")

	auth.Post("/signup", h.Signup)
	auth.Post("/vendor-signup", h.VendorSignup)
	auth.Post("/signin", h.Signin)
	auth.Post("/refresh-token", h.RefreshToken)
	auth.Post("/change-password", middleware.Guard(tokens), h.ChangePassword)
	auth.Post("/forget-password", h.ForgotPassword)
	auth.Post("/reset-password", h.ResetPassword)
}
