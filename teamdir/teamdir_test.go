// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package teamdir_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hackforge/hackslot/teamdir"
	"github.com/hackforge/hackslot/testutil"
)

func TestRegisterAndResolve(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	dir := teamdir.New(conn, testutil.TestJoinCodeSalt)
	ctx := context.Background()

	team, token, err := dir.Register(ctx, "Null Pointers", "Lead@Example.com")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if team.ID == "" || token == "" || team.JoinCode == "" {
		t.Fatalf("Register returned incomplete team: %+v token=%q", team, token)
	}
	// Email is normalized
	if team.Email != "lead@example.com" {
		t.Errorf("email = %q, want lowercased", team.Email)
	}

	resolved, err := dir.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("ResolveToken failed: %v", err)
	}
	if resolved.ID != team.ID || resolved.Name != "Null Pointers" {
		t.Errorf("ResolveToken = %+v, want team %s", resolved, team.ID)
	}

	byCode, err := dir.ByJoinCode(ctx, team.JoinCode)
	if err != nil {
		t.Fatalf("ByJoinCode failed: %v", err)
	}
	if byCode.ID != team.ID {
		t.Errorf("ByJoinCode = %+v, want team %s", byCode, team.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	dir := teamdir.New(conn, testutil.TestJoinCodeSalt)
	ctx := context.Background()

	if _, _, err := dir.Register(ctx, "First", "shared@example.com"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, _, err := dir.Register(ctx, "Second", "SHARED@example.com")
	if !errors.Is(err, teamdir.ErrEmailRegistered) {
		t.Errorf("duplicate Register error = %v, want ErrEmailRegistered", err)
	}
}

func TestResolveUnknowns(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	dir := teamdir.New(conn, testutil.TestJoinCodeSalt)
	ctx := context.Background()

	if _, err := dir.ResolveToken(ctx, "no-such-token"); !errors.Is(err, teamdir.ErrUnknownToken) {
		t.Errorf("ResolveToken error = %v, want ErrUnknownToken", err)
	}
	if _, err := dir.ByJoinCode(ctx, "no-such-code"); !errors.Is(err, teamdir.ErrUnknownCode) {
		t.Errorf("ByJoinCode error = %v, want ErrUnknownCode", err)
	}
}
