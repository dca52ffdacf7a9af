package availability

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
	slots := router.Group("/availability")

	slots.Get("/", middleware.Guard(tokens, domain.RoleTeacher, domain.RoleLearner, domain.RoleAdmin), h.List)
	slots.Get("/:id", h.GetOne)
	slots.Post("/", middleware.Guard(tokens, domain.RoleTeacher), h.Create)
	slots.Patch("/:id", middleware.Guard(tokens, domain.RoleTeacher), h.Update)
	slots.Delete("/:id", middleware.Guard(tokens, domain.RoleTeacher), h.Delete)
}

func (h *Handler) List(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	opts := query.Options{
		Page:      c.QueryInt("page"),
		Limit:     c.QueryInt("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	slots, meta, err := h.service.List(c.Context(), principal, c.Queries(), opts)
	if err != nil {
		return err
	}

	return response.List(c, "availability retrieved successfully", meta, slots)
}

func (h *Handler) GetOne(c *fiber.Ctx) error {
	slot, err := h.service.GetOne(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return response.OK(c, "availability retrieved successfully", slot)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input UpsertInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	slot, err := h.service.Create(c.Context(), principal, input)
	if err != nil {
		return err
	}
	return response.Created(c, "availability created successfully", slot)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	var input UpsertInput
	if err := c.BodyParser(&input); err != nil {
		return autherror.Validation("invalid input")
	}

	slot, err := h.service.Update(c.Context(), principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return response.OK(c, "availability updated successfully", slot)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	principal, _ := middleware.PrincipalFrom(c)

	if err := h.service.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return response.OK(c, "availability deleted successfully", nil)
}
