package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/store"
	"github.com/lmai/taskboard/tests/testutil"
)

func newTaskStore(t *testing.T) *store.TaskStore {
	t.Helper()
	return store.NewTaskStore(testutil.NewTestLocal(t))
}

func TestAddTaskPrepends(t *testing.T) {
	s := newTaskStore(t)

	first, err := s.AddTask(store.TaskDraft{Name: "first", Status: model.TaskStatusActive})
	require.NoError(t, err)
	second, err := s.AddTask(store.TaskDraft{Name: "second", Status: model.TaskStatusActive})
	require.NoError(t, err)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, second.ID, tasks[0].ID)
	assert.Equal(t, first.ID, tasks[1].ID)

	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.NotNil(t, first.Comments)
}

func TestAddTaskAllowsDuplicateNames(t *testing.T) {
	s := newTaskStore(t)

	a, err := s.AddTask(store.TaskDraft{Name: "same"})
	require.NoError(t, err)
	b, err := s.AddTask(store.TaskDraft{Name: "same"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.Tasks(), 2)
}

func TestUpdateTaskPartial(t *testing.T) {
	s := newTaskStore(t)

	created, err := s.AddTask(store.TaskDraft{
		Name:        "original",
		Description: "desc",
		MaxMembers:  3,
		Status:      model.TaskStatusActive,
	})
	require.NoError(t, err)

	name := "renamed"
	status := model.TaskStatusCompleted
	require.NoError(t, s.UpdateTask(created.ID, store.TaskUpdate{
		Name:   &name,
		Status: &status,
	}))

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	got := tasks[0]

	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, model.TaskStatusCompleted, got.Status)

	// Untouched fields keep their values; identity never changes.
	assert.Equal(t, "desc", got.Description)
	assert.Equal(t, 3, got.MaxMembers)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	s := newTaskStore(t)

	created, err := s.AddTask(store.TaskDraft{Name: "task"})
	require.NoError(t, err)

	name := "changed"
	require.NoError(t, s.UpdateTask("no-such-id", store.TaskUpdate{Name: &name}))

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, created.Name, tasks[0].Name)
}

func TestDeleteTask(t *testing.T) {
	s := newTaskStore(t)

	keep, err := s.AddTask(store.TaskDraft{Name: "keep"})
	require.NoError(t, err)
	remove, err := s.AddTask(store.TaskDraft{Name: "remove"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(remove.ID))

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, keep.ID, tasks[0].ID)

	// Unknown id is a no-op.
	require.NoError(t, s.DeleteTask("no-such-id"))
	assert.Len(t, s.Tasks(), 1)
}

func TestAddComment(t *testing.T) {
	s := newTaskStore(t)

	target, err := s.AddTask(store.TaskDraft{Name: "target"})
	require.NoError(t, err)
	_, err = s.AddTask(store.TaskDraft{Name: "other"})
	require.NoError(t, err)

	require.NoError(t, s.AddComment(target.ID, store.CommentDraft{
		Author:      "Alice",
		AuthorEmail: "alice@example.com",
		Content:     "Looks good.",
	}))
	require.NoError(t, s.AddComment(target.ID, store.CommentDraft{
		Author:      "Bob",
		AuthorEmail: "bob@example.com",
		Content:     "Agreed.",
	}))

	var got model.Task
	for _, task := range s.Tasks() {
		if task.ID == target.ID {
			got = task
		} else {
			assert.Empty(t, task.Comments)
		}
	}

	require.Len(t, got.Comments, 2)
	assert.Equal(t, "Alice", got.Comments[0].Author)
	assert.Equal(t, "Agreed.", got.Comments[1].Content)
	assert.NotEmpty(t, got.Comments[0].ID)
	assert.False(t, got.Comments[0].Timestamp.IsZero())
}

func TestAddCommentUnknownTaskIsNoOp(t *testing.T) {
	s := newTaskStore(t)

	require.NoError(t, s.AddComment("no-such-id", store.CommentDraft{
		Author:  "Alice",
		Content: "Lost.",
	}))
	assert.Empty(t, s.Tasks())
}

func TestEditingTaskPointer(t *testing.T) {
	s := newTaskStore(t)

	assert.Nil(t, s.EditingTask())

	created, err := s.AddTask(store.TaskDraft{Name: "editing"})
	require.NoError(t, err)

	s.SetEditingTask(&created)
	editing := s.EditingTask()
	require.NotNil(t, editing)
	assert.Equal(t, created.ID, editing.ID)

	// The snapshot is a copy; mutating it does not affect the store.
	editing.Name = "mutated"
	assert.Equal(t, "editing", s.EditingTask().Name)

	s.ClearEditingTask()
	assert.Nil(t, s.EditingTask())
}

func TestTaskRoundTrip(t *testing.T) {
	local := testutil.NewTestLocal(t)

	s1 := store.NewTaskStore(local)
	created, err := s1.AddTask(store.TaskDraft{
		Name:          "persisted",
		Description:   "survives restart",
		Files:         []string{"report.docx"},
		MaxMembers:    4,
		Duration:      "2h30m",
		Keywords:      []string{"design"},
		Tags:          []string{"urgent"},
		Status:        model.TaskStatusPending,
		StartDateTime: "2026-09-01 09:00",
		EndDateTime:   "2026-09-01 11:30",
		Permissions:   model.Permissions{View: []string{"1", "2"}, Edit: []string{"1"}},
	})
	require.NoError(t, err)
	require.NoError(t, s1.AddComment(created.ID, store.CommentDraft{
		Author:  "Alice",
		Content: "First.",
	}))

	s2 := store.NewTaskStore(local)
	require.NoError(t, s2.LoadError())

	tasks := s2.Tasks()
	require.Len(t, tasks, 1)
	got := tasks[0]

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "persisted", got.Name)
	assert.Equal(t, []string{"report.docx"}, got.Files)
	assert.Equal(t, []string{"1", "2"}, got.Permissions.View)
	assert.Equal(t, "2026-09-01 09:00", got.StartDateTime)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Alice", got.Comments[0].Author)

	// JSON round-tripping drops the monotonic clock reading, so compare
	// with a tolerance.
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestTaskStoreCorruptRecord(t *testing.T) {
	local := testutil.NewTestLocal(t)
	require.NoError(t, local.Set(store.TaskRecordKey, "{not json"))

	s := store.NewTaskStore(local)
	assert.Error(t, s.LoadError())
	assert.Empty(t, s.Tasks())

	// The store stays usable after the failed load.
	_, err := s.AddTask(store.TaskDraft{Name: "fresh"})
	require.NoError(t, err)
	assert.Len(t, s.Tasks(), 1)
}

func TestTasksReturnsCopies(t *testing.T) {
	s := newTaskStore(t)

	_, err := s.AddTask(store.TaskDraft{Name: "original", Tags: []string{"a"}})
	require.NoError(t, err)

	snapshot := s.Tasks()
	snapshot[0].Name = "mutated"
	snapshot[0].Tags[0] = "b"

	tasks := s.Tasks()
	assert.Equal(t, "original", tasks[0].Name)
	assert.Equal(t, "a", tasks[0].Tags[0])
}
