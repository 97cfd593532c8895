package usecase

import (
	"time"

	"github.com/Durga62823/work-board-sub000/config"
	"github.com/Durga62823/work-board-sub000/internal/repository"
	"github.com/Durga62823/work-board-sub000/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	TeamUsecaseInterface
	TaskUsecaseInterface
	SprintUsecaseInterface
	AnalyticsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	repo repository.Repository,
	timeout time.Duration,
	engine config.EngineConfig,
	opts ...domain.Option,
) InterfaceUsecase {
	return domain.New(log, repo, timeout, engine, opts...)
}
