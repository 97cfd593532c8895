package handlers_fiber

import (
	"net/http"

	"github.com/Durga62823/work-board-sub000/internal/entities"
	"github.com/Durga62823/work-board-sub000/internal/mapper"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/dto"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// PostTask creates a task reported by the calling actor.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	task, err := h.uc.CreateTask(c.Context(), mapper.FromDTOCreateTask(body, middleware.ActorID(c)))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOTask(*task))
}

// GetTask returns a task by id.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	task, err := h.uc.Task(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTask(*task))
}

// GetTasks lists tasks filtered by sprint_id, project_id, assignee_id and status.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	filter := entities.TaskFilter{
		SprintID:   optionalQuery(c, "sprint_id"),
		ProjectID:  optionalQuery(c, "project_id"),
		AssigneeID: optionalQuery(c, "assignee_id"),
	}
	if s := optionalQuery(c, "status"); s != nil {
		status := entities.TaskStatus(*s)
		filter.Status = &status
	}

	tasks, err := h.uc.ListTasks(c.Context(), filter)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(struct {
		Tasks []dto.Task `json:"tasks"`
	}{Tasks: mapper.ToDTOTasks(tasks)})
}

// PatchTask applies a partial update.
func (h *Handler) PatchTask(c *fiber.Ctx) error {
	var body dto.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	task, err := h.uc.UpdateTask(c.Context(), c.Params("id"), mapper.FromDTOUpdateTask(body))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTask(*task))
}

// PostTaskMove changes the task status.
func (h *Handler) PostTaskMove(c *fiber.Ctx) error {
	var body dto.MoveTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	status := entities.TaskStatus(body.Status)
	var (
		task *entities.Task
		err  error
	)
	if body.BlockedReason != nil {
		task, err = h.uc.UpdateTask(c.Context(), c.Params("id"), entities.TaskPatch{
			Status:        &status,
			BlockedReason: body.BlockedReason,
		})
	} else {
		task, err = h.uc.MoveTask(c.Context(), c.Params("id"), status)
	}
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTask(*task))
}

// PostTaskAssign changes the task assignee.
func (h *Handler) PostTaskAssign(c *fiber.Ctx) error {
	var body dto.AssignTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	task, err := h.uc.AssignTask(c.Context(), c.Params("id"), body.AssigneeID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTask(*task))
}

// DeleteTask removes a task.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	if err := h.uc.DeleteTask(c.Context(), c.Params("id")); err != nil {
		return h.writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// DeleteTaskSprint unlinks a task from its sprint.
func (h *Handler) DeleteTaskSprint(c *fiber.Ctx) error {
	task, err := h.uc.RemoveTaskFromSprint(c.Context(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOTask(*task))
}

// PostTaskPriorities updates priorities of many tasks; failures are
// reported per item.
func (h *Handler) PostTaskPriorities(c *fiber.Ctx) error {
	var body dto.BulkPrioritiesRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	res, err := h.uc.BulkUpdatePriorities(c.Context(), mapper.FromDTOPriorityChanges(body.Updates))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.BulkPrioritiesResponse{Results: mapper.ToDTOBulkResults(res)})
}
