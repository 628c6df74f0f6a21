package db

import (
	"context"
	"fmt"

	"github.com/2BitsCoin/RisingWorld-RWGui/pkg/roster"
)

var _ roster.Source = (*DB)(nil)

// Users reads the roster from the players table, ordered by name.
func (db *DB) Users(ctx context.Context) ([]roster.User, error) {
	players, err := db.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	users := make([]roster.User, len(players))
	for i, p := range players {
		users[i] = roster.User{ID: p.ID, Name: p.Name, JoinedAt: p.CreatedAt}
	}
	return users, nil
}
