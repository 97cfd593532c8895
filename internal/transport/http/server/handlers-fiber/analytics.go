package handlers_fiber

import (
	"net/http"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// GetTeamWorkload returns open work per active team member.
func (h *Handler) GetTeamWorkload(c *fiber.Ctx) error {
	res, err := h.uc.TeamWorkload(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		TeamID  string                      `json:"team_id"`
		Members []entities.WorkloadSnapshot `json:"members"`
	}{TeamID: c.Params("id"), Members: res})
}

// GetTeamVelocity returns velocity of the last n completed sprints.
func (h *Handler) GetTeamVelocity(c *fiber.Ctx) error {
	n, err := queryInt(c, "n")
	if err != nil {
		return badRequest(c, "n must be an integer")
	}

	res, err := h.uc.SprintVelocity(c.Context(), c.Params("id"), n)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}

// GetTeamMetrics returns lead and cycle time over a trailing window.
func (h *Handler) GetTeamMetrics(c *fiber.Ctx) error {
	window, err := queryInt(c, "window_days")
	if err != nil {
		return badRequest(c, "window_days must be an integer")
	}

	res, err := h.uc.TaskMetrics(c.Context(), c.Params("id"), window)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}

// GetSprintBurndown returns ideal and actual remaining points per sprint day.
func (h *Handler) GetSprintBurndown(c *fiber.Ctx) error {
	res, err := h.uc.SprintBurndown(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(res)
}
