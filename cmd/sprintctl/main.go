// Command sprintctl administers the board database: migrations, fixture
// seeding and analytics reports.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Durga62823/work-board-sub000/config"
	"github.com/Durga62823/work-board-sub000/internal/repository"
	"github.com/Durga62823/work-board-sub000/internal/usecase"
	"github.com/Durga62823/work-board-sub000/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "sprintctl",
		Short:         "Administer the sprint and task board",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(reportCmd())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// app bundles what subcommands need from a started repository.
type app struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// openApp loads configuration and starts the repository, applying pending
// migrations. Callers must call close.
func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.OnStart(ctx); err != nil {
		return nil, nil, fmt.Errorf("start repository: %w", err)
	}

	a := &app{
		log: log.Named("sprintctl"),
		uc:  usecase.New(log, repo, cfg.Postgres.QueryTimeout, cfg.Engine),
	}
	closeFn := func() {
		_ = repo.OnStop(context.Background())
		_ = log.Sync()
	}
	return a, closeFn, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, closeFn, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()
			a.log.Infow("migrations applied")
			return nil
		},
	}
}
