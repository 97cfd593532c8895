package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Durga62823/work-board-sub000/internal/entities"

	"github.com/jackc/pgx/v5"
)

const setUserActiveQuery = `
UPDATE users
SET is_active = $2
WHERE id = $1
RETURNING id, username, team_id, is_active
`

// SetUserActive updates the is_active flag and returns the updated user.
func (p *Postgres) SetUserActive(ctx context.Context, userID string, isActive bool) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, setUserActiveQuery, userID, isActive).
		Scan(&u.ID, &u.Username, &u.TeamID, &u.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to set user active", "error", err, "user_id", userID)
		return nil, fmt.Errorf("set user active: %w", err)
	}

	p.log.Infow("user active flag updated", "user_id", userID, "is_active", isActive)
	return &u, nil
}
