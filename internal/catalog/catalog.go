// Package catalog holds the shared catalog of joinable tasks shown on
// the search view. The catalog is fixed demo content; applying to join
// is acknowledged locally and goes nowhere.
package catalog

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/lmai/taskboard/internal/model"
)

// Entry is one joinable task in the shared catalog.
type Entry struct {
	ID          int
	Name        string
	Description string
	MaxMembers  int
	Duration    string
	Keywords    []string
	Tags        []string
	Status      string
}

var entries = []Entry{
	{
		ID:          1,
		Name:        "Website Redesign Project",
		Description: "Complete redesign of company website with modern UI/UX",
		MaxMembers:  8,
		Duration:    "6 weeks",
		Keywords:    []string{"design", "frontend", "UI/UX", "responsive"},
		Tags:        []string{"urgent", "high-priority"},
		Status:      model.TaskStatusActive,
	},
	{
		ID:          2,
		Name:        "Mobile App Development",
		Description: "Develop cross-platform mobile application for iOS and Android",
		MaxMembers:  6,
		Duration:    "12 weeks",
		Keywords:    []string{"mobile", "react-native", "cross-platform", "API"},
		Tags:        []string{"development", "mobile"},
		Status:      model.TaskStatusPending,
	},
	{
		ID:          3,
		Name:        "Database Migration",
		Description: "Migrate legacy database to cloud-based solution",
		MaxMembers:  4,
		Duration:    "4 weeks",
		Keywords:    []string{"database", "migration", "cloud", "AWS"},
		Tags:        []string{"infrastructure", "critical"},
		Status:      model.TaskStatusActive,
	},
	{
		ID:          4,
		Name:        "Marketing Campaign Launch",
		Description: "Launch comprehensive digital marketing campaign",
		MaxMembers:  5,
		Duration:    "8 weeks",
		Keywords:    []string{"marketing", "digital", "campaign", "analytics"},
		Tags:        []string{"marketing", "launch"},
		Status:      model.TaskStatusPending,
	},
	{
		ID:          5,
		Name:        "Security Audit & Compliance",
		Description: "Conduct security audit and ensure compliance standards",
		MaxMembers:  3,
		Duration:    "3 weeks",
		Keywords:    []string{"security", "audit", "compliance", "GDPR"},
		Tags:        []string{"security", "compliance"},
		Status:      model.TaskStatusActive,
	},
	{
		ID:          6,
		Name:        "Customer Support System",
		Description: "Implement new customer support ticketing system",
		MaxMembers:  7,
		Duration:    "5 weeks",
		Keywords:    []string{"support", "ticketing", "customer", "automation"},
		Tags:        []string{"customer-service", "system"},
		Status:      model.TaskStatusCompleted,
	},
	{
		ID:          7,
		Name:        "Data Analytics Dashboard",
		Description: "Create comprehensive analytics dashboard for business insights",
		MaxMembers:  6,
		Duration:    "7 weeks",
		Keywords:    []string{"analytics", "dashboard", "data", "visualization"},
		Tags:        []string{"analytics", "dashboard"},
		Status:      model.TaskStatusPending,
	},
	{
		ID:          8,
		Name:        "API Integration Project",
		Description: "Integrate third-party APIs for enhanced functionality",
		MaxMembers:  4,
		Duration:    "4 weeks",
		Keywords:    []string{"API", "integration", "third-party", "REST"},
		Tags:        []string{"integration", "API"},
		Status:      model.TaskStatusActive,
	},
	{
		ID:          9,
		Name:        "Content Management System",
		Description: "Develop custom CMS for content publishing workflow",
		MaxMembers:  5,
		Duration:    "9 weeks",
		Keywords:    []string{"CMS", "content", "publishing", "workflow"},
		Tags:        []string{"content", "management"},
		Status:      model.TaskStatusPending,
	},
	{
		ID:          10,
		Name:        "Performance Optimization",
		Description: "Optimize application performance and reduce load times",
		MaxMembers:  3,
		Duration:    "3 weeks",
		Keywords:    []string{"performance", "optimization", "speed", "monitoring"},
		Tags:        []string{"optimization", "performance"},
		Status:      model.TaskStatusCompleted,
	},
}

// Entries returns the full catalog.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// searchText is the per-entry haystack: name, description, keywords,
// and tags joined together.
func (e Entry) searchText() string {
	parts := append([]string{e.Name, e.Description}, e.Keywords...)
	parts = append(parts, e.Tags...)
	return strings.Join(parts, " ")
}

// Search returns the catalog entries matching query ranked by fuzzy
// match quality. An empty query returns the full catalog.
func Search(query string) []Entry {
	if strings.TrimSpace(query) == "" {
		return Entries()
	}

	targets := make([]string, len(entries))
	for i, e := range entries {
		targets[i] = e.searchText()
	}

	matches := fuzzy.Find(query, targets)
	out := make([]Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, entries[m.Index])
	}
	return out
}
