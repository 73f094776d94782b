package team_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmai/taskboard/internal/team"
)

func TestMembersRoster(t *testing.T) {
	members := team.Members()
	require.Len(t, members, 5)

	assert.Equal(t, "Cristiano", members[0].Name)
	assert.Equal(t, "Osman Brandon", members[4].Name)

	for _, m := range members {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Email)
		assert.NotEmpty(t, m.Role)
		assert.NotEmpty(t, m.Department)
	}
}

func TestMembersReturnsCopy(t *testing.T) {
	members := team.Members()
	members[0].Name = "mutated"

	assert.Equal(t, "Cristiano", team.Members()[0].Name)
}

func TestMemberByID(t *testing.T) {
	m := team.MemberByID("2")
	require.NotNil(t, m)
	assert.Equal(t, "Jenny Foster", m.Name)

	assert.Nil(t, team.MemberByID("99"))
}
