package model

import "time"

// Task status constants.
const (
	TaskStatusActive    = "active"
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Permissions holds the per-task access lists. View and edit membership
// are independent: a user may appear in neither list, either, or both.
type Permissions struct {
	// View lists the user identifiers allowed to see the task.
	View []string `json:"view"`

	// Edit lists the user identifiers allowed to modify the task.
	Edit []string `json:"edit"`
}

// Clone returns a deep copy of the permission lists.
func (p Permissions) Clone() Permissions {
	return Permissions{
		View: cloneStrings(p.View),
		Edit: cloneStrings(p.Edit),
	}
}

// Comment is a single authored message attached to exactly one task.
// Comments are append-only: once added they are never edited or deleted.
type Comment struct {
	// ID is the unique identifier assigned when the comment is appended.
	ID string `json:"id"`

	// Author is the display name of the comment writer.
	Author string `json:"author"`

	// AuthorEmail is the comment writer's email address.
	AuthorEmail string `json:"authorEmail"`

	// Content is the comment body.
	Content string `json:"content"`

	// Timestamp is when the comment was appended. Immutable.
	Timestamp time.Time `json:"timestamp"`
}

// Task is a unit of work with metadata, permissions, a schedule, and a
// comment thread.
type Task struct {
	// ID is the unique identifier assigned at creation time. Immutable.
	ID string `json:"id"`

	// Name is the task title.
	Name string `json:"name"`

	// Description is the free-text task body.
	Description string `json:"description"`

	// Files lists the attached filenames. Display-only references;
	// no file content is stored.
	Files []string `json:"files"`

	// MaxMembers is the member cap for the task's team.
	MaxMembers int `json:"maxMembers"`

	// Duration is a free-text or derived duration label ("3h 30m").
	Duration string `json:"duration"`

	// Keywords and Tags are short labels in insertion order.
	Keywords []string `json:"keywords"`
	Tags     []string `json:"tags"`

	// Status is one of the TaskStatus* constants.
	Status string `json:"status"`

	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time `json:"createdAt"`

	// StartDateTime and EndDateTime are optional combined
	// "YYYY-MM-DD HH:MM" strings produced by the schedule widget.
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`

	// Permissions holds the view/edit access lists.
	Permissions Permissions `json:"permissions"`

	// Comments is the task's thread, oldest first. Never nil.
	Comments []Comment `json:"comments"`
}

// Clone returns a deep copy of the task so that callers cannot mutate
// store-owned state through a returned snapshot.
func (t Task) Clone() Task {
	c := t
	c.Files = cloneStrings(t.Files)
	c.Keywords = cloneStrings(t.Keywords)
	c.Tags = cloneStrings(t.Tags)
	c.Permissions = t.Permissions.Clone()
	c.Comments = make([]Comment, len(t.Comments))
	copy(c.Comments, t.Comments)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
