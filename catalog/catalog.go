// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"fmt"

	"github.com/hackforge/hackslot/models"
)

// Catalog is an immutable, indexed set of problem statements.
type Catalog struct {
	problems []models.ProblemStatement
	byID     map[string]models.ProblemStatement
}

// New builds a Catalog from the given problem statements.
// Returns an error on duplicate IDs, unknown levels, or non-positive
// declared capacities, so a bad catalog fails at startup rather than at
// claim time.
func New(problems []models.ProblemStatement) (*Catalog, error) {
	c := &Catalog{
		problems: make([]models.ProblemStatement, 0, len(problems)),
		byID:     make(map[string]models.ProblemStatement, len(problems)),
	}

	for _, p := range problems {
		if p.ID == "" {
			return nil, fmt.Errorf("problem statement %q has empty id", p.Title)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate problem statement id %q", p.ID)
		}
		if !validLevel(p.Level) {
			return nil, fmt.Errorf("problem statement %q has unknown level %q", p.ID, p.Level)
		}
		if p.DeclaredCapacity <= 0 {
			return nil, fmt.Errorf("problem statement %q has non-positive capacity %d", p.ID, p.DeclaredCapacity)
		}
		c.problems = append(c.problems, p)
		c.byID[p.ID] = p
	}

	return c, nil
}

// Default returns the built-in event catalog. Panics on an invalid
// built-in list, which is a programming error caught at startup.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		panic("catalog: invalid built-in problem list: " + err.Error())
	}
	return c
}

// Get returns the problem statement for id, and whether it exists.
func (c *Catalog) Get(id string) (models.ProblemStatement, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// All returns the problem statements in authored order. Callers must not
// mutate the returned slice.
func (c *Catalog) All() []models.ProblemStatement {
	return c.problems
}

// Len returns the number of problem statements.
func (c *Catalog) Len() int {
	return len(c.problems)
}

func validLevel(level string) bool {
	switch level {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
		return true
	}
	return false
}
