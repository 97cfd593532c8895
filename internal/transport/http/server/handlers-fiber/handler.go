// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Durga62823/work-board-sub000/internal/usecase"

	"go.uber.org/zap"
)

// Handler serves the board API using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("handler"),
		uc:  usecase,
	}
}
