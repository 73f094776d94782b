package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/storage"
)

// TaskRecordKey is the local-storage record holding the task collection.
const TaskRecordKey = "taskboard_tasks"

// TaskDraft is the caller-supplied portion of a new task. The store
// assigns the ID and creation timestamp itself.
type TaskDraft struct {
	Name          string
	Description   string
	Files         []string
	MaxMembers    int
	Duration      string
	Keywords      []string
	Tags          []string
	Status        string
	StartDateTime string
	EndDateTime   string
	Permissions   model.Permissions

	// Comments may carry a pre-existing thread; it defaults to empty.
	Comments []model.Comment
}

// TaskUpdate describes a partial update. Nil fields are left unchanged.
// The task's ID and CreatedAt are never touched.
type TaskUpdate struct {
	Name          *string
	Description   *string
	Files         *[]string
	MaxMembers    *int
	Duration      *string
	Keywords      *[]string
	Tags          *[]string
	Status        *string
	StartDateTime *string
	EndDateTime   *string
	Permissions   *model.Permissions
}

// CommentDraft is the caller-supplied portion of a new comment.
type CommentDraft struct {
	Author      string
	AuthorEmail string
	Content     string
}

// TaskStore is the authoritative owner of the task collection and of the
// single "task currently open for editing" pointer. Every mutation
// rewrites the full collection to local storage. Consumers receive deep
// copies and never hold references into store-owned state.
type TaskStore struct {
	mu      sync.Mutex
	local   *storage.Local
	tasks   []model.Task
	editing *model.Task
	loadErr error
}

// NewTaskStore constructs the store and rehydrates the task collection
// from local storage. A missing record starts the store empty; a record
// that fails to decode also starts the store empty, with the decode
// error retained for the diagnostic view.
func NewTaskStore(local *storage.Local) *TaskStore {
	s := &TaskStore{local: local, tasks: []model.Task{}}

	raw, ok, err := local.Get(TaskRecordKey)
	if err != nil {
		s.loadErr = err
		return s
	}
	if !ok {
		return s
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.loadErr = fmt.Errorf("decoding task record: %w", err)
		return s
	}

	// Comments must never be nil, including on tasks persisted before
	// they had any.
	for i := range tasks {
		if tasks[i].Comments == nil {
			tasks[i].Comments = []model.Comment{}
		}
	}
	s.tasks = tasks

	return s
}

// Tasks returns a snapshot of the collection, most recently created
// first.
func (s *TaskStore) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// AddTask assigns a fresh ID and creation timestamp to the draft and
// prepends the resulting task to the collection. Task names are not
// required to be unique. The created task is returned as a snapshot.
// The returned error reports persistence failures only.
func (s *TaskStore) AddTask(draft TaskDraft) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := model.Task{
		ID:            uuid.New().String(),
		Name:          draft.Name,
		Description:   draft.Description,
		Files:         draft.Files,
		MaxMembers:    draft.MaxMembers,
		Duration:      draft.Duration,
		Keywords:      draft.Keywords,
		Tags:          draft.Tags,
		Status:        draft.Status,
		CreatedAt:     time.Now(),
		StartDateTime: draft.StartDateTime,
		EndDateTime:   draft.EndDateTime,
		Permissions:   draft.Permissions.Clone(),
		Comments:      draft.Comments,
	}
	if task.Comments == nil {
		task.Comments = []model.Comment{}
	}

	s.tasks = append([]model.Task{task}, s.tasks...)
	return task.Clone(), s.save()
}

// UpdateTask merges the given fields into the task matching id. An
// unknown id is a silent no-op. ID and CreatedAt are never modified.
func (s *TaskStore) UpdateTask(id string, upd TaskUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	t := &s.tasks[i]
	if upd.Name != nil {
		t.Name = *upd.Name
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.Files != nil {
		t.Files = *upd.Files
	}
	if upd.MaxMembers != nil {
		t.MaxMembers = *upd.MaxMembers
	}
	if upd.Duration != nil {
		t.Duration = *upd.Duration
	}
	if upd.Keywords != nil {
		t.Keywords = *upd.Keywords
	}
	if upd.Tags != nil {
		t.Tags = *upd.Tags
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.StartDateTime != nil {
		t.StartDateTime = *upd.StartDateTime
	}
	if upd.EndDateTime != nil {
		t.EndDateTime = *upd.EndDateTime
	}
	if upd.Permissions != nil {
		t.Permissions = upd.Permissions.Clone()
	}

	return s.save()
}

// DeleteTask removes the task matching id. An unknown id is a silent
// no-op.
func (s *TaskStore) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return s.save()
}

// AddComment assigns a fresh ID and timestamp to the draft and appends
// it to the matching task's thread. An unknown task id is a silent
// no-op.
func (s *TaskStore) AddComment(taskID string, draft CommentDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(taskID)
	if i < 0 {
		return nil
	}

	comment := model.Comment{
		ID:          uuid.New().String(),
		Author:      draft.Author,
		AuthorEmail: draft.AuthorEmail,
		Content:     draft.Content,
		Timestamp:   time.Now(),
	}
	s.tasks[i].Comments = append(s.tasks[i].Comments, comment)

	return s.save()
}

// SetEditingTask records the task currently open in the settings form.
// The store does not verify that the task still exists.
func (s *TaskStore) SetEditingTask(t *model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t == nil {
		s.editing = nil
		return
	}
	clone := t.Clone()
	s.editing = &clone
}

// ClearEditingTask clears the editing pointer.
func (s *TaskStore) ClearEditingTask() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = nil
}

// EditingTask returns a snapshot of the task currently open for editing,
// or nil when none is set.
func (s *TaskStore) EditingTask() *model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == nil {
		return nil
	}
	clone := s.editing.Clone()
	return &clone
}

// LoadError returns the error retained from store initialization, if
// rehydration failed. It is surfaced on the diagnostic view only.
func (s *TaskStore) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// indexOf returns the position of the task matching id, or -1.
// Callers must hold s.mu.
func (s *TaskStore) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// save serializes the full collection to local storage. Callers must
// hold s.mu.
func (s *TaskStore) save() error {
	data, err := json.Marshal(s.tasks)
	if err != nil {
		return fmt.Errorf("encoding task record: %w", err)
	}
	if err := s.local.Set(TaskRecordKey, string(data)); err != nil {
		return fmt.Errorf("persisting task record: %w", err)
	}
	return nil
}
