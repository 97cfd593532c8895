package handlers_fiber

import (
	"net/http"

	"github.com/Durga62823/work-board-sub000/internal/mapper"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostUsersSetIsActive toggles user activity flag.
func (h *Handler) PostUsersSetIsActive(c *fiber.Ctx) error {
	var body dto.SetUserActiveRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	usr, err := h.uc.SetActiveUser(c.Context(), body.UserID, body.IsActive)
	if err != nil {
		h.log.Errorw("failed to set is_active for user", "error", err.Error())
		return h.writeError(c, err)
	}

	resp := struct {
		User dto.User `json:"user"`
	}{User: mapper.ToDTOUser(*usr)}
	return c.Status(http.StatusOK).JSON(resp)
}
