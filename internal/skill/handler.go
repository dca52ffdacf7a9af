package skill

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
	skills := router.Group("/skills")

	skills.Get("/", middleware.Guard(tokens, domain.RoleTeacher, domain.RoleLearner, domain.RoleAdmin), h.List)
	skills.Get("/:id", h.GetOne)
	skills.Post("/", middleware.Guard(tokens, domain.RoleTeacher), h.Create)
	skills.Patch("/:id", middleware.Guard(tokens, domain.RoleTeacher), h.Update)
	skills.Delete("/:id", middleware.Guard(tokens, domain.RoleTeacher), h.Delete)
}

func (h *Handler) List(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	opts := query.Options{
		Page:      c.QueryInt("page"),
		Limit:     c.QueryInt("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	skills, meta, err := h.service.List(c.Context(), principal, c.Queries(), opts)
	if err != nil {
		return err
	}

	return response.List(c, "skills retrieved successfully", meta, skills)
}

func (h *Handler) GetOne(c *fiber.Ctx) error {
	skill, err := h.service.GetOne(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.OK(c, "skill retrieved successfully", skill)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input CreateInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	skill, err := h.service.Create(c.Context(), principal, input)
	if err != nil {
		return err
	}
	return response.Created(c, "skill created successfully", skill)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	skill, err := h.service.Update(c.Context(), principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return response.OK(c, "skill updated successfully", skill)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	if err := h.service.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return response.OK(c, "skill deleted successfully", nil)
}
