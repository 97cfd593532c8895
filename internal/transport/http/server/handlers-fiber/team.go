package handlers_fiber

import (
	"net/http"

	"github.com/Durga62823/work-board-sub000/internal/mapper"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team and upserts members.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body dto.Team
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	team, err := h.uc.CreateTeam(c.Context(), mapper.FromDTOTeam(body))
	if err != nil {
		h.log.Infow("create team", "error", err)
		return h.writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(struct {
		Team dto.Team `json:"team"`
	}{Team: mapper.ToDTOTeam(*team)})
}

// GetTeam returns team with members by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTeam(*team))
}

// GetTeamSprints lists team sprints, latest start first.
func (h *Handler) GetTeamSprints(c *fiber.Ctx) error {
	sprints, err := h.uc.ListSprints(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Sprints []dto.Sprint `json:"sprints"`
	}{Sprints: mapper.ToDTOSprints(sprints)})
}

// PostProject creates a project owned by a team.
func (h *Handler) PostProject(c *fiber.Ctx) error {
	var body dto.Project
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	project, err := h.uc.CreateProject(c.Context(), mapper.FromDTOProject(body))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOProject(*project))
}

// GetProject returns a project by id.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.uc.Project(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOProject(*project))
}
