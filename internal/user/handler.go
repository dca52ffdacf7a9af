package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
	"github.com/md-ali-0/skillsync-server/internal/middleware"
	"github.com/md-ali-0/skillsync-server/internal/query"
	"github.com/md-ali-0/skillsync-server/internal/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func RegisterRoutes(router fiber.Router, h *Handler, tokens middleware.TokenVerifier) {
	users := router.Group("/users")

	anyRole := middleware.Guard(tokens)
	adminOnly := middleware.Guard(tokens, domain.RoleAdmin)

	users.Get("/", adminOnly, h.List)
	users.Get("/teachers", h.ListTeachers)
	users.Get("/me", anyRole, h.GetMyProfile)
	users.Put("/me", anyRole, h.UpdateMyProfile)
	users.Patch("/:id", adminOnly, h.Update)
	users.Patch("/:id/status", adminOnly, h.ChangeStatus)
	users.Delete("/:id", adminOnly, h.Delete)
}

func paginationOptions(c *fiber.Ctx) query.Options {
	return query.Options{
		Page:      c.QueryInt("page"),
		Limit:     c.QueryInt("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
}

func (h *Handler) List(c *fiber.Ctx) error {
	users, meta, err := h.service.List(c.Context(), c.Queries(), paginationOptions(c))
	if err != nil {
		return err
	}
	return response.List(c, "users retrieved successfully", meta, users)
}

func (h *Handler) ListTeachers(c *fiber.Ctx) error {
	teachers, meta, err := h.service.ListTeachers(c.Context(), c.Queries(), paginationOptions(c))
	if err != nil {
		return err
	}
	return response.List(c, "teachers retrieved successfully", meta, teachers)
}

func (h *Handler) GetMyProfile(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return autherror.ErrMissingToken
	}

	profile, err := h.service.GetProfile(c.Context(), principal.UserID)
	if err != nil {
		return err
	}
	return response.OK(c, "profile retrieved successfully", profile)
}

func (h *Handler) UpdateMyProfile(c *fiber.Ctx) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return autherror.ErrMissingToken
	}

	var input UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	profile, err := h.service.UpdateProfile(c.Context(), principal.UserID, input)
	if err != nil {
		return err
	}
	return response.OK(c, "profile updated successfully", profile)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var input UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	profile, err := h.service.UpdateProfile(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return response.OK(c, "user updated successfully", profile)
}

func (h *Handler) ChangeStatus(c *fiber.Ctx) error {
	var input ChangeStatusInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	profile, err := h.service.ChangeStatus(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return response.OK(c, "user status updated successfully", profile)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return response.OK(c, "user deleted successfully", nil)
}
