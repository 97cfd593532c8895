package handlers_fiber

import (
	"github.com/Durga62823/work-board-sub000/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the board API under /api/v1. Every route needs an
// actor; mutating routes also need a writer role.
func RegisterRoutes(router fiber.Router, h *Handler) {
	api := router.Group("/api/v1", middleware.Actor())
	w := middleware.RequireWriter()

	api.Post("/teams", w, h.PostTeam)
	api.Get("/teams/:id", h.GetTeam)
	api.Get("/teams/:id/sprints", h.GetTeamSprints)
	api.Get("/teams/:id/workload", h.GetTeamWorkload)
	api.Get("/teams/:id/velocity", h.GetTeamVelocity)
	api.Get("/teams/:id/metrics", h.GetTeamMetrics)
	api.Post("/users/set_is_active", w, h.PostUsersSetIsActive)
	api.Post("/projects", w, h.PostProject)
	api.Get("/projects/:id", h.GetProject)

	api.Post("/tasks", w, h.PostTask)
	api.Get("/tasks", h.GetTasks)
	api.Post("/tasks/priorities", w, h.PostTaskPriorities)
	api.Get("/tasks/:id", h.GetTask)
	api.Patch("/tasks/:id", w, h.PatchTask)
	api.Delete("/tasks/:id", w, h.DeleteTask)
	api.Post("/tasks/:id/move", w, h.PostTaskMove)
	api.Post("/tasks/:id/assign", w, h.PostTaskAssign)
	api.Delete("/tasks/:id/sprint", w, h.DeleteTaskSprint)

	api.Post("/sprints", w, h.PostSprint)
	api.Get("/sprints/:id", h.GetSprint)
	api.Delete("/sprints/:id", w, h.DeleteSprint)
	api.Post("/sprints/:id/start", w, h.PostSprintStart)
	api.Post("/sprints/:id/complete", w, h.PostSprintComplete)
	api.Post("/sprints/:id/velocity", w, h.PostSprintVelocity)
	api.Post("/sprints/:id/tasks", w, h.PostSprintTask)
	api.Get("/sprints/:id/burndown", h.GetSprintBurndown)
}
