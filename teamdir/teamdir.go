// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package teamdir

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hackforge/hackslot/auth"
	"github.com/hackforge/hackslot/db"
	"github.com/hackforge/hackslot/models"
)

var (
	ErrEmailRegistered = errors.New("email is already registered to a team")
	ErrUnknownToken    = errors.New("unknown team token")
	ErrUnknownCode     = errors.New("unknown join code")
)

// Directory maps authenticated identities to teams. It owns the team
// table; the allocator only ever sees the resolved team ID.
type Directory struct {
	db           *sql.DB
	joinCodeSalt string
}

func New(conn *sql.DB, joinCodeSalt string) *Directory {
	return &Directory{db: conn, joinCodeSalt: joinCodeSalt}
}

// Register creates a team for the given contact email and issues its
// token and join code. One team per email: a duplicate registration
// returns ErrEmailRegistered.
func (d *Directory) Register(ctx context.Context, name, email string) (models.Team, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	teamID := uuid.NewString()
	token, err := auth.GenerateTeamToken()
	if err != nil {
		return models.Team{}, "", err
	}
	joinCode := auth.GenerateJoinCode(teamID, d.joinCodeSalt)

	team := models.Team{
		ID:        teamID,
		Name:      name,
		Email:     email,
		JoinCode:  joinCode,
		CreatedAt: time.Now().UTC(),
	}

	_, err = d.db.ExecContext(ctx, `
		INSERT INTO team (id, name, contact_email, team_token, join_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, team.ID, team.Name, team.Email, token, team.JoinCode, team.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.Team{}, "", ErrEmailRegistered
		}
		return models.Team{}, "", fmt.Errorf("failed to register team: %w", err)
	}

	return team, token, nil
}

// ResolveToken returns the team holding the given token.
func (d *Directory) ResolveToken(ctx context.Context, token string) (models.Team, error) {
	return d.lookup(ctx, "team_token", token, ErrUnknownToken)
}

// ByJoinCode returns the team with the given join code.
func (d *Directory) ByJoinCode(ctx context.Context, code string) (models.Team, error) {
	return d.lookup(ctx, "join_code", code, ErrUnknownCode)
}

func (d *Directory) lookup(ctx context.Context, column, value string, notFound error) (models.Team, error) {
	var team models.Team
	err := d.db.QueryRowContext(ctx, `
		SELECT id, name, contact_email, join_code, created_at
		FROM team
		WHERE `+column+` = $1
	`, value).Scan(&team.ID, &team.Name, &team.Email, &team.JoinCode, &team.CreatedAt)

	if err == sql.ErrNoRows {
		return models.Team{}, notFound
	}
	if err != nil {
		return models.Team{}, fmt.Errorf("failed to look up team: %w", err)
	}
	return team, nil
}
