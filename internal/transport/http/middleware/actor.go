package middleware

import (
	"strings"

	"github.com/Durga62823/work-board-sub000/internal/entities"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// Actor headers set by the upstream identity provider.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

const (
	localActorID   = "actor_id"
	localActorRole = "actor_role"
)

// Roles allowed to change board state.
var writerRoles = map[string]struct{}{
	"lead":    {},
	"manager": {},
	"admin":   {},
}

// Actor stores the caller identity into the request locals. Requests
// without an actor id are rejected.
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderActorID))
		if id == "" {
			return forbidden(c, "actor is required")
		}
		c.Locals(localActorID, id)
		c.Locals(localActorRole, strings.ToLower(strings.TrimSpace(c.Get(HeaderActorRole))))
		return c.Next()
	}
}

// RequireWriter rejects actors whose role may not mutate the board.
func RequireWriter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := writerRoles[ActorRole(c)]; !ok {
			return forbidden(c, "role may not modify the board")
		}
		return c.Next()
	}
}

// ActorID returns the authenticated actor id of the request.
func ActorID(c *fiber.Ctx) string {
	id, _ := c.Locals(localActorID).(string)
	return id
}

// ActorRole returns the lower-cased actor role of the request.
func ActorRole(c *fiber.Ctx) string {
	role, _ := c.Locals(localActorRole).(string)
	return role
}

func forbidden(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: dto.ErrorBody{
		Code:    string(entities.KindAuthorization),
		Message: msg,
	}})
}
