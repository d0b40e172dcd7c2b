// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/hackforge/hackslot/models"

// builtin is the authored problem list for the current event.
// Edit this list between events; it is never mutated at runtime.
var builtin = []models.ProblemStatement{
	{
		ID:               "ps-agritech-advisory",
		Title:            "Hyperlocal Crop Advisory",
		Level:            models.LevelIntermediate,
		DomainTags:       []string{"agritech", "ml"},
		Description:      "Build an advisory service that combines local weather, soil type, and market prices into daily guidance for smallholder farmers.",
		DeclaredCapacity: 5,
	},
	{
		ID:               "ps-healthcare-triage",
		Title:            "Rural Clinic Triage Assistant",
		Level:            models.LevelAdvanced,
		DomainTags:       []string{"healthcare", "ml", "mobile"},
		Description:      "An offline-capable triage assistant that helps community health workers prioritize patients with limited connectivity.",
		DeclaredCapacity: 4,
	},
	{
		ID:               "ps-fintech-microsavings",
		Title:            "Gamified Micro-Savings",
		Level:            models.LevelBeginner,
		DomainTags:       []string{"fintech", "web"},
		Description:      "A savings tracker that turns small recurring deposits into streaks, goals, and shared challenges.",
		DeclaredCapacity: 6,
	},
	{
		ID:               "ps-civic-grievance",
		Title:            "Civic Grievance Redressal Tracker",
		Level:            models.LevelBeginner,
		DomainTags:       []string{"civictech", "web"},
		Description:      "Track municipal complaints from filing to resolution with public status pages and escalation timers.",
		DeclaredCapacity: 6,
	},
	{
		ID:               "ps-edtech-peerlearn",
		Title:            "Peer Learning Matchmaker",
		Level:            models.LevelIntermediate,
		DomainTags:       []string{"edtech", "web"},
		Description:      "Match students who need help on a topic with peers who recently mastered it, scheduling short tutoring slots.",
		DeclaredCapacity: 5,
	},
	{
		ID:               "ps-logistics-lastmile",
		Title:            "Last-Mile Delivery Pooling",
		Level:            models.LevelAdvanced,
		DomainTags:       []string{"logistics", "optimization"},
		Description:      "Pool deliveries from multiple small merchants into shared routes, with live re-planning as orders arrive.",
		DeclaredCapacity: 4,
	},
	{
		ID:               "ps-sustainability-ewaste",
		Title:            "E-Waste Collection Network",
		Level:            models.LevelIntermediate,
		DomainTags:       []string{"sustainability", "maps"},
		Description:      "Coordinate neighborhood e-waste pickup drives: drop points, collection schedules, and recycler handoff tracking.",
		DeclaredCapacity: 5,
	},
	{
		ID:               "ps-accessibility-signbridge",
		Title:            "Sign Language Video Glossary",
		Level:            models.LevelAdvanced,
		DomainTags:       []string{"accessibility", "ml", "video"},
		Description:      "A crowd-reviewed glossary mapping technical vocabulary to sign language clips, embeddable in lecture players.",
		DeclaredCapacity: 3,
	},
}
