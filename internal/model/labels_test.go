package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmai/taskboard/internal/model"
)

func TestAddLabel(t *testing.T) {
	labels := model.AddLabel(nil, "design")
	labels = model.AddLabel(labels, "frontend")
	assert.Equal(t, []string{"design", "frontend"}, labels)

	// Exact duplicates are a no-op; case differs means distinct.
	labels = model.AddLabel(labels, "design")
	assert.Equal(t, []string{"design", "frontend"}, labels)

	labels = model.AddLabel(labels, "Design")
	assert.Equal(t, []string{"design", "frontend", "Design"}, labels)
}

func TestRemoveLabel(t *testing.T) {
	labels := []string{"a", "b", "c"}

	labels = model.RemoveLabel(labels, "b")
	assert.Equal(t, []string{"a", "c"}, labels)

	// Removing an absent label is a no-op.
	labels = model.RemoveLabel(labels, "missing")
	assert.Equal(t, []string{"a", "c"}, labels)
}

func TestTaskClone(t *testing.T) {
	task := model.Task{
		ID:       "t1",
		Name:     "original",
		Files:    []string{"a.docx"},
		Keywords: []string{"k"},
		Tags:     []string{"t"},
		Permissions: model.Permissions{
			View: []string{"1"},
			Edit: []string{"1", "2"},
		},
		Comments: []model.Comment{{ID: "c1", Author: "Alice"}},
	}

	clone := task.Clone()
	clone.Files[0] = "b.docx"
	clone.Permissions.View[0] = "9"
	clone.Comments[0].Author = "Bob"

	assert.Equal(t, "a.docx", task.Files[0])
	assert.Equal(t, "1", task.Permissions.View[0])
	assert.Equal(t, "Alice", task.Comments[0].Author)
}

func TestTeamMemberAvatar(t *testing.T) {
	assert.Equal(t, "C", model.TeamMember{Name: "Cristiano"}.Avatar())
	assert.Equal(t, "?", model.TeamMember{}.Avatar())
}
