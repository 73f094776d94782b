package model

import "time"

// Message type constants. The type is a display tag only; admin-typed
// messages represent outgoing messages to the administrator and are
// created pre-marked read.
const (
	MessageTypeUser   = "user"
	MessageTypeSystem = "system"
	MessageTypeAdmin  = "admin"
)

// Message is an inbox entry representing user-to-user, system-generated,
// or outgoing-to-admin communication.
type Message struct {
	// ID is the unique identifier assigned at creation time.
	ID string `json:"id"`

	// Type is one of the MessageType* constants.
	Type string `json:"type"`

	// Sender is the display name of the message origin.
	Sender string `json:"sender"`

	// SenderEmail is the sender's email address, when known.
	SenderEmail string `json:"senderEmail,omitempty"`

	// Content is the message body.
	Content string `json:"content"`

	// Timestamp is when the message was created. Immutable.
	Timestamp time.Time `json:"timestamp"`

	// Read reports whether the user has seen this message.
	Read bool `json:"read"`
}
