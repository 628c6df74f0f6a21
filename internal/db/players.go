package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrPlayerNotFound is returned when removing an unknown player.
var ErrPlayerNotFound = errors.New("player not found")

// Player is a roster entry.
type Player struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// AddPlayer inserts a player and returns it.
func (db *DB) AddPlayer(ctx context.Context, name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now().UTC()
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO players (name, created_at) VALUES (?, ?)`, name, now)
	if err != nil {
		return nil, fmt.Errorf("insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("player id: %w", err)
	}
	return &Player{ID: id, Name: name, CreatedAt: now}, nil
}

// EnsurePlayer returns the player called name, adding it when missing.
func (db *DB) EnsurePlayer(ctx context.Context, name string) (*Player, error) {
	p, err := db.GetPlayerByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	return db.AddPlayer(ctx, name)
}

// GetPlayerByName returns the player with the given name, or nil if not found.
func (db *DB) GetPlayerByName(ctx context.Context, name string) (*Player, error) {
	p := &Player{}
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM players WHERE name = ?`, strings.TrimSpace(name),
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get player by name: %w", err)
	}
	return p, nil
}

// RemovePlayer deletes the player called name.
func (db *DB) RemovePlayer(ctx context.Context, name string) error {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM players WHERE name = ?`, strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("remove %q: %w", name, ErrPlayerNotFound)
	}
	return nil
}

// ListPlayers returns every player ordered by name.
func (db *DB) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, created_at FROM players ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
