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

// MessageRecordKey is the local-storage record holding the inbox.
const MessageRecordKey = "taskboard_messages"

// adminSender is the fixed sender label on outgoing admin messages.
const adminSender = "You"

// MessageDraft is the caller-supplied portion of a new message. The
// store assigns the ID and timestamp and starts the message unread.
type MessageDraft struct {
	Type        string
	Sender      string
	SenderEmail string
	Content     string
}

// MessageStore is the authoritative owner of the message inbox. The
// unread count is derived from the collection on every access, never
// cached. Every mutation rewrites the full collection to local storage.
type MessageStore struct {
	mu       sync.Mutex
	local    *storage.Local
	messages []model.Message
	loadErr  error
}

// NewMessageStore constructs the store and rehydrates the inbox from
// local storage. On first run (no record) it seeds the demonstration
// inbox; a record that fails to decode also falls back to the seeded
// inbox, with the decode error retained for the diagnostic view.
func NewMessageStore(local *storage.Local) *MessageStore {
	s := &MessageStore{local: local}

	raw, ok, err := local.Get(MessageRecordKey)
	if err != nil {
		s.loadErr = err
	} else if ok {
		var messages []model.Message
		if err := json.Unmarshal([]byte(raw), &messages); err != nil {
			s.loadErr = fmt.Errorf("decoding message record: %w", err)
		} else {
			if messages == nil {
				messages = []model.Message{}
			}
			s.messages = messages
			return s
		}
	}

	// One-time bootstrap: seed the demo inbox and persist it so the
	// seeding never repeats.
	s.messages = seedMessages(time.Now())
	_ = s.save()

	return s
}

// seedMessages builds the first-run demonstration inbox: two unread
// user messages and one read system welcome, with relative past
// timestamps.
func seedMessages(now time.Time) []model.Message {
	return []model.Message{
		{
			ID:          uuid.New().String(),
			Type:        model.MessageTypeUser,
			Sender:      "Cristiano",
			SenderEmail: "cristiano@example.com",
			Content:     "Hi! I'm interested in joining your project. Can you provide more details?",
			Timestamp:   now.Add(-2 * time.Hour),
			Read:        false,
		},
		{
			ID:          uuid.New().String(),
			Type:        model.MessageTypeUser,
			Sender:      "Jenny Foster",
			SenderEmail: "jenny.foster@example.com",
			Content:     "Great work on the project! Looking forward to collaborating.",
			Timestamp:   now.Add(-5 * time.Hour),
			Read:        false,
		},
		{
			ID:        uuid.New().String(),
			Type:      model.MessageTypeSystem,
			Sender:    "System",
			Content:   "Welcome to Task Management System! You can now start creating and managing your tasks.",
			Timestamp: now.Add(-24 * time.Hour),
			Read:      true,
		},
	}
}

// Messages returns a snapshot of the inbox, newest first.
func (s *MessageStore) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// UnreadCount returns the number of messages not yet marked read,
// recomputed from the current collection state.
func (s *MessageStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, m := range s.messages {
		if !m.Read {
			count++
		}
	}
	return count
}

// AddMessage assigns a fresh ID and timestamp to the draft, marks it
// unread, and prepends it to the inbox. The created message is
// returned; the error reports persistence failures only.
func (s *MessageStore) AddMessage(draft MessageDraft) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := model.Message{
		ID:          uuid.New().String(),
		Type:        draft.Type,
		Sender:      draft.Sender,
		SenderEmail: draft.SenderEmail,
		Content:     draft.Content,
		Timestamp:   time.Now(),
		Read:        false,
	}
	s.messages = append([]model.Message{msg}, s.messages...)

	return msg, s.save()
}

// MarkAsRead marks the matching message read. An unknown id is a
// silent no-op; marking an already-read message changes nothing.
func (s *MessageStore) MarkAsRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Read = true
			return s.save()
		}
	}
	return nil
}

// MarkAllAsRead marks every message in the inbox read.
func (s *MessageStore) MarkAllAsRead() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		s.messages[i].Read = true
	}
	return s.save()
}

// SendToAdmin prepends an outgoing admin-typed message with the fixed
// sender label. Outgoing messages are created already read, so they
// never contribute to the unread count.
func (s *MessageStore) SendToAdmin(content string) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := model.Message{
		ID:        uuid.New().String(),
		Type:      model.MessageTypeAdmin,
		Sender:    adminSender,
		Content:   content,
		Timestamp: time.Now(),
		Read:      true,
	}
	s.messages = append([]model.Message{msg}, s.messages...)

	return msg, s.save()
}

// LoadError returns the error retained from store initialization, if
// rehydration failed. It is surfaced on the diagnostic view only.
func (s *MessageStore) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// save serializes the full inbox to local storage. Callers must hold
// s.mu.
func (s *MessageStore) save() error {
	data, err := json.Marshal(s.messages)
	if err != nil {
		return fmt.Errorf("encoding message record: %w", err)
	}
	if err := s.local.Set(MessageRecordKey, string(data)); err != nil {
		return fmt.Errorf("persisting message record: %w", err)
	}
	return nil
}
