package handlers_fiber

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Durga62823/work-board-sub000/internal/entities"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    entities.ErrorKind
		message string
	}{
		{
			name:    "validation",
			err:     fmt.Errorf("%w: title is required", entities.ErrInvalidArgument),
			status:  http.StatusBadRequest,
			code:    entities.KindValidation,
			message: "invalid argument: title is required",
		},
		{
			name:    "not_found",
			err:     entities.ErrSprintNotFound,
			status:  http.StatusNotFound,
			code:    entities.KindNotFound,
			message: "sprint not found",
		},
		{
			name:    "forbidden",
			err:     entities.ErrForbidden,
			status:  http.StatusForbidden,
			code:    entities.KindAuthorization,
			message: "forbidden",
		},
		{
			name:    "conflict",
			err:     entities.ErrSprintCompleted,
			status:  http.StatusConflict,
			code:    entities.KindConflict,
			message: "conflict: sprint completed",
		},
		{
			name:    "internal_hidden",
			err:     errors.New("connection reset by peer"),
			status:  http.StatusInternalServerError,
			code:    entities.KindInternal,
			message: "internal error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(zap.NewNop().Sugar(), nil)
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return h.writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, string(tt.code), body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}
