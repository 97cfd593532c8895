package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Durga62823/work-board-sub000/internal/entities"
	"github.com/Durga62823/work-board-sub000/internal/usecase"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Fixtures is the YAML layout accepted by seed.
type Fixtures struct {
	Teams []TeamFixture `yaml:"teams"`
}

// TeamFixture describes one team with members and projects.
type TeamFixture struct {
	ID       string           `yaml:"id"`
	Name     string           `yaml:"name"`
	Members  []MemberFixture  `yaml:"members"`
	Projects []ProjectFixture `yaml:"projects"`
}

// MemberFixture describes a team member. Members are active unless
// active: false is given.
type MemberFixture struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	Active   *bool  `yaml:"active"`
}

// ProjectFixture describes a project of the enclosing team.
type ProjectFixture struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

func parseFixtures(r io.Reader) (Fixtures, error) {
	var fx Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return Fixtures{}, nil
		}
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return fx, nil
}

// applyFixtures creates teams and projects. Teams that already exist are
// skipped so seeding can be repeated.
func applyFixtures(ctx context.Context, uc usecase.TeamUsecaseInterface, fx Fixtures) (int, error) {
	created := 0
	for _, tf := range fx.Teams {
		team := entities.Team{ID: tf.ID, Name: tf.Name}
		for _, m := range tf.Members {
			active := m.Active == nil || *m.Active
			team.Members = append(team.Members, entities.User{
				ID:       m.ID,
				Username: m.Username,
				TeamID:   tf.ID,
				IsActive: active,
			})
		}

		res, err := uc.CreateTeam(ctx, team)
		switch {
		case errors.Is(err, entities.ErrTeamExists):
			continue
		case err != nil:
			return created, fmt.Errorf("team %q: %w", tf.Name, err)
		}
		created++

		for _, pf := range tf.Projects {
			if _, err := uc.CreateProject(ctx, entities.Project{ID: pf.ID, Name: pf.Name, TeamID: res.ID}); err != nil {
				return created, fmt.Errorf("project %q: %w", pf.Name, err)
			}
		}
	}
	return created, nil
}

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load teams, members and projects from a YAML file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return err
			}
			defer f.Close()

			fx, err := parseFixtures(f)
			if err != nil {
				return err
			}

			a, closeFn, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			n, err := applyFixtures(cmd.Context(), a.uc, fx)
			if err != nil {
				return err
			}
			a.log.Infow("seed done", "teams_created", n, "teams_in_file", len(fx.Teams))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "fixtures.yaml", "fixtures file")
	return cmd
}
