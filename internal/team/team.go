// Package team holds the fixed team roster. The roster doubles as the
// user directory for the per-task permission selectors.
package team

import "github.com/lmai/taskboard/internal/model"

var members = []model.TeamMember{
	{
		ID:         "1",
		Name:       "Cristiano",
		Email:      "cristiano@example.com",
		Phone:      "+1 (555) 123-4567",
		Location:   "New York, NY",
		JoinDate:   "2023-01-15",
		Role:       "Senior Developer",
		Department: "Engineering",
	},
	{
		ID:         "2",
		Name:       "Jenny Foster",
		Email:      "jenny.foster@example.com",
		Phone:      "+1 (555) 234-5678",
		Location:   "San Francisco, CA",
		JoinDate:   "2023-02-20",
		Role:       "Project Manager",
		Department: "Management",
	},
	{
		ID:         "3",
		Name:       "Benjamin Will",
		Email:      "benjamin.will@example.com",
		Phone:      "+1 (555) 345-6789",
		Location:   "Chicago, IL",
		JoinDate:   "2023-03-10",
		Role:       "UI/UX Designer",
		Department: "Design",
	},
	{
		ID:         "4",
		Name:       "Olivier Solin",
		Email:      "olivier.solin@example.com",
		Phone:      "+1 (555) 456-7890",
		Location:   "Austin, TX",
		JoinDate:   "2023-04-05",
		Role:       "Marketing Specialist",
		Department: "Marketing",
	},
	{
		ID:         "5",
		Name:       "Osman Brandon",
		Email:      "osman.brandon@example.com",
		Phone:      "+1 (555) 567-8901",
		Location:   "Seattle, WA",
		JoinDate:   "2023-05-12",
		Role:       "Data Analyst",
		Department: "Analytics",
	},
}

// Members returns the roster.
func Members() []model.TeamMember {
	out := make([]model.TeamMember, len(members))
	copy(out, members)
	return out
}

// MemberByID returns the roster entry matching id, or nil.
func MemberByID(id string) *model.TeamMember {
	for i := range members {
		if members[i].ID == id {
			m := members[i]
			return &m
		}
	}
	return nil
}
