package handlers_fiber

import (
	"net/http"

	"github.com/Durga62823/work-board-sub000/internal/mapper"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostSprint creates a PLANNING sprint.
func (h *Handler) PostSprint(c *fiber.Ctx) error {
	var body dto.CreateSprintRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	sprint, err := h.uc.CreateSprint(c.Context(), mapper.FromDTOCreateSprint(body))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOSprint(*sprint))
}

// GetSprint returns a sprint by id.
func (h *Handler) GetSprint(c *fiber.Ctx) error {
	sprint, err := h.uc.Sprint(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSprint(*sprint))
}

// DeleteSprint removes a sprint and unlinks its tasks.
func (h *Handler) DeleteSprint(c *fiber.Ctx) error {
	if err := h.uc.DeleteSprint(c.Context(), c.Params("id")); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// PostSprintStart activates a sprint.
func (h *Handler) PostSprintStart(c *fiber.Ctx) error {
	sprint, err := h.uc.StartSprint(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSprint(*sprint))
}

// PostSprintComplete completes a sprint, optionally with retrospective notes.
func (h *Handler) PostSprintComplete(c *fiber.Ctx) error {
	var body dto.CompleteSprintRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid body")
		}
	}

	sprint, err := h.uc.CompleteSprint(c.Context(), c.Params("id"), body.RetrospectiveNotes)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSprint(*sprint))
}

// PostSprintVelocity records the completed points of a completed sprint.
func (h *Handler) PostSprintVelocity(c *fiber.Ctx) error {
	sprint, err := h.uc.RecordSprintVelocity(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOSprint(*sprint))
}

// PostSprintTask links a task to the sprint.
func (h *Handler) PostSprintTask(c *fiber.Ctx) error {
	var body dto.SprintTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	task, err := h.uc.AddTaskToSprint(c.Context(), body.TaskID, c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTask(*task))
}
