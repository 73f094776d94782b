package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/store"
	"github.com/lmai/taskboard/tests/testutil"
)

func TestMessageStoreSeedsFirstRun(t *testing.T) {
	s := store.NewMessageStore(testutil.NewTestLocal(t))

	messages := s.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, 2, s.UnreadCount())

	assert.Equal(t, "Cristiano", messages[0].Sender)
	assert.Equal(t, model.MessageTypeUser, messages[0].Type)
	assert.False(t, messages[0].Read)

	assert.Equal(t, "Jenny Foster", messages[1].Sender)
	assert.False(t, messages[1].Read)

	assert.Equal(t, "System", messages[2].Sender)
	assert.Equal(t, model.MessageTypeSystem, messages[2].Type)
	assert.True(t, messages[2].Read)

	// Newest first.
	assert.True(t, messages[0].Timestamp.After(messages[1].Timestamp))
	assert.True(t, messages[1].Timestamp.After(messages[2].Timestamp))
}

func TestMessageStoreSeedsOnlyOnce(t *testing.T) {
	local := testutil.NewTestLocal(t)

	s1 := store.NewMessageStore(local)
	require.NoError(t, s1.MarkAllAsRead())

	s2 := store.NewMessageStore(local)
	assert.Len(t, s2.Messages(), 3)
	assert.Zero(t, s2.UnreadCount())
}

func TestAddMessagePrepends(t *testing.T) {
	s := store.NewMessageStore(testutil.NewTestLocal(t))

	msg, err := s.AddMessage(store.MessageDraft{
		Type:        model.MessageTypeUser,
		Sender:      "Benjamin Will",
		SenderEmail: "benjamin.will@example.com",
		Content:     "Can I join the redesign project?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Read)
	assert.False(t, msg.Timestamp.IsZero())

	messages := s.Messages()
	require.Len(t, messages, 4)
	assert.Equal(t, msg.ID, messages[0].ID)
	assert.Equal(t, 3, s.UnreadCount())
}

func TestMarkAsRead(t *testing.T) {
	s := store.NewMessageStore(testutil.NewTestLocal(t))

	unreadID := s.Messages()[0].ID
	require.NoError(t, s.MarkAsRead(unreadID))
	assert.Equal(t, 1, s.UnreadCount())

	// Marking again changes nothing.
	require.NoError(t, s.MarkAsRead(unreadID))
	assert.Equal(t, 1, s.UnreadCount())

	// Unknown id is a no-op.
	require.NoError(t, s.MarkAsRead("no-such-id"))
	assert.Equal(t, 1, s.UnreadCount())
}

func TestMarkAllAsRead(t *testing.T) {
	s := store.NewMessageStore(testutil.NewTestLocal(t))

	require.NoError(t, s.MarkAllAsRead())
	assert.Zero(t, s.UnreadCount())

	for _, msg := range s.Messages() {
		assert.True(t, msg.Read)
	}
}

func TestSendToAdmin(t *testing.T) {
	s := store.NewMessageStore(testutil.NewTestLocal(t))
	before := s.UnreadCount()

	msg, err := s.SendToAdmin("Please reset my account.")
	require.NoError(t, err)

	assert.Equal(t, model.MessageTypeAdmin, msg.Type)
	assert.Equal(t, "You", msg.Sender)
	assert.True(t, msg.Read)

	messages := s.Messages()
	assert.Equal(t, msg.ID, messages[0].ID)

	// Outgoing messages never contribute to the unread count.
	assert.Equal(t, before, s.UnreadCount())
}

func TestMessageRoundTrip(t *testing.T) {
	local := testutil.NewTestLocal(t)

	s1 := store.NewMessageStore(local)
	sent, err := s1.SendToAdmin("Archive me.")
	require.NoError(t, err)

	s2 := store.NewMessageStore(local)
	require.NoError(t, s2.LoadError())

	messages := s2.Messages()
	require.Len(t, messages, 4)
	assert.Equal(t, sent.ID, messages[0].ID)
	assert.Equal(t, "Archive me.", messages[0].Content)
}

func TestMessageStoreCorruptRecordReseeds(t *testing.T) {
	local := testutil.NewTestLocal(t)
	require.NoError(t, local.Set(store.MessageRecordKey, "{not json"))

	s := store.NewMessageStore(local)
	assert.Error(t, s.LoadError())

	// The corrupt record falls back to the seeded inbox.
	assert.Len(t, s.Messages(), 3)
	assert.Equal(t, 2, s.UnreadCount())
}
