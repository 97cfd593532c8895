package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/Durga62823/work-board-sub000/internal/entities"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

var kindStatus = map[entities.ErrorKind]int{
	entities.KindValidation:    http.StatusBadRequest,
	entities.KindNotFound:      http.StatusNotFound,
	entities.KindAuthorization: http.StatusForbidden,
	entities.KindConflict:      http.StatusConflict,
	entities.KindInternal:      http.StatusInternalServerError,
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	kind := entities.KindOf(err)
	msg := err.Error()
	if kind == entities.KindInternal {
		h.log.Errorw("request failed", "path", c.Path(), "error", err)
		msg = "internal error"
	}
	return c.Status(kindStatus[kind]).JSON(errorResponse(kind, msg))
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(entities.KindValidation, msg))
}

func errorResponse(kind entities.ErrorKind, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: string(kind), Message: msg}}
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func optionalQuery(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}
