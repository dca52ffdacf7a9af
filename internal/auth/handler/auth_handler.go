package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/md-ali-0/skillsync-server/internal/auth/dto"
	"github.com/md-ali-0/skillsync-server/internal/auth/service"
	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
	"github.com/md-ali-0/skillsync-server/internal/middleware"
	"github.com/md-ali-0/skillsync-server/internal/response"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}
	if input.Email == "" || input.Password == "" {
		return autherror.Validation("email and password are required")
	}

	user, err := h.authService.Signup(c.Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, "user registered successfully", service.ToUserOutput(user))
}

func (h *AuthHandler) VendorSignup(c *fiber.Ctx) error {
	var input dto.VendorSignupInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}
	if input.Email == "" || input.Password == "" {
		return autherror.Validation("email and password are required")
	}

	user, shop, err := h.authService.VendorSignup(c.Context(), input)
	if err != nil {
		return err
	}

	return response.Created(c, "vendor registered successfully", dto.VendorSignupOutput{
		User: service.ToUserOutput(user),
		Shop: dto.ShopOutput{
			ID:          shop.ID,
			Name:        shop.Name,
			Description: shop.Description,
			LogoURL:     shop.LogoURL,
			Status:      string(shop.Status),
		},
	})
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var input dto.SigninInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	tokens, err := h.authService.Signin(c.Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, "signed in successfully", tokens)
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	tokens, err := h.authService.Refresh(c.Context(), input)
	if err != nil {
		return err
	}

	return response.OK(c, "access token refreshed", tokens)
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return autherror.ErrMissingToken
	}

	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}
	if input.NewPassword == "" {
		return autherror.Validation("new password is required")
	}

	if err := h.authService.ChangePassword(c.Context(), principal, input); err != nil {
		return err
	}

	return response.OK(c, "password changed successfully", nil)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}
	if input.Email == "" {
		return autherror.Validation("email is required")
	}

	if err := h.authService.ForgotPassword(c.Context(), input); err != nil {
		return err
	}

	// Always 200, even for unknown accounts.
	return response.OK(c, "if the account exists, a reset link has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}
	if input.Token == "" || input.Password == "" {
		return autherror.Validation("token and password are required")
	}

	if err := h.authService.ResetPassword(c.Context(), input); err != nil {
		return err
	}

	return response.OK(c, "password reset successful", nil)
}
