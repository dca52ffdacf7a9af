package review

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
	reviews := router.Group("/reviews")

	reviews.Get("/", middleware.Guard(tokens, domain.RoleTeacher, domain.RoleLearner, domain.RoleAdmin), h.List)
	reviews.Get("/:id", h.GetOne)
	reviews.Post("/", middleware.Guard(tokens, domain.RoleLearner), h.Create)
	reviews.Patch("/:id", middleware.Guard(tokens, domain.RoleLearner), h.Update)
	reviews.Delete("/:id", middleware.Guard(tokens, domain.RoleLearner, domain.RoleAdmin), h.Delete)
}

func (h *Handler) List(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	opts := query.Options{
		Page:      c.QueryInt("page"),
		Limit:     c.QueryInt("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	reviews, meta, err := h.service.List(c.Context(), principal, c.Queries(), opts)
	if err != nil {
		return err
	}

	return response.List(c, "reviews retrieved successfully", meta, reviews)
}

func (h *Handler) GetOne(c *fiber.Ctx) error {
	review, err := h.service.GetOne(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.OK(c, "review retrieved successfully", review)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	review, err := h.service.Create(c.Context(), principal, input)
	if err != nil {
		return err
	}
	return response.Created(c, "review created successfully", review)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	review, err := h.service.Update(c.Context(), principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return response.OK(c, "review updated successfully", review)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	if err := h.service.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return response.OK(c, "review deleted successfully", nil)
}
