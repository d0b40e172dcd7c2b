package models

import "time"

// Difficulty level constants for problem statements
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Machine-readable error kinds returned in ErrorResponse.Error
const (
	KindAlreadyClaimed   = "already_claimed"
	KindCapacityExceeded = "capacity_exceeded"
	KindUnknownProblem   = "unknown_problem"
	KindConflict         = "conflict"
	KindBadRequest       = "bad_request"
	KindUnauthorized     = "unauthorized"
	KindNotFound         = "not_found"
	KindInternal         = "internal"
)

// Request types

type RegisterTeamRequest struct {
	TeamName string `json:"team_name"`
	Email    string `json:"email"`
}

type ClaimRequest struct {
	ProblemID string `json:"problem_id"`
}

// Response types

type RegisterTeamResponse struct {
	TeamID    string `json:"team_id"`
	TeamToken string `json:"team_token"`
	JoinCode  string `json:"join_code"`
}

type TeamResponse struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
	JoinCode string `json:"join_code,omitempty"`
}

type ClaimResponse struct {
	Claim   ClaimRecord `json:"claim"`
	Message string      `json:"message"`
}

// MyClaimResponse wraps the optional claim for GET /claims/me.
// Claim is null when the team has not locked in a problem yet.
type MyClaimResponse struct {
	Claim *ClaimRecord `json:"claim"`
}

// ProblemView is a catalog entry joined with its live capacity state.
type ProblemView struct {
	ProblemStatement
	ClaimedCount  int  `json:"claimed_count"`
	CapacityLimit int  `json:"capacity_limit"`
	Full          bool `json:"full"`
}

// Domain types

// ProblemStatement is an immutable catalog entry. Authored once in the
// catalog package; never mutated at runtime.
type ProblemStatement struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Level            string   `json:"level"`
	DomainTags       []string `json:"domain_tags"`
	Description      string   `json:"description"`
	DeclaredCapacity int      `json:"declared_capacity"`
}

// CapacityRecord is the mutable per-problem counter row. Only the
// allocator writes it; claimed_count never exceeds capacity_limit.
type CapacityRecord struct {
	ProblemID     string    `json:"problem_id"`
	CapacityLimit int       `json:"capacity_limit"`
	ClaimedCount  int       `json:"claimed_count"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// ClaimRecord is a team's locked-in problem statement. Single-assignment:
// once written, its problem_id never changes for the life of the event.
type ClaimRecord struct {
	TeamID    string    `json:"team_id"`
	ProblemID string    `json:"problem_id"`
	ClaimedBy string    `json:"claimed_by"`
	ClaimedAt time.Time `json:"claimed_at"`
	IPHash    string    `json:"-"`
}

type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"-"` // Never expose in JSON
	JoinCode  string    `json:"join_code"`
	CreatedAt time.Time `json:"created_at"`
}

// CapacitySnapshot is one entry of the live counts feed.
type CapacitySnapshot struct {
	ProblemID     string `json:"problem_id"`
	ClaimedCount  int    `json:"claimed_count"`
	CapacityLimit int    `json:"capacity_limit"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
