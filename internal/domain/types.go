package domain

import "time"

// SessionID identifies one running chat session instance. It is generated
// once at session construction, is stable for that instance's lifetime, and
// is never transmitted; its only job is detecting self-pairing.
type SessionID string

// PairingCode is the addressable name of a room and the only admission
// credential. Codes come from the crypto provider and are assumed unique
// among open rooms.
type PairingCode string

// MessageType classifies message content.
type MessageType string

const (
	TextMessage  MessageType = "text"
	ImageMessage MessageType = "image"
	AudioMessage MessageType = "audio"
)

// Valid reports whether t is one of the known message types.
func (t MessageType) Valid() bool {
	switch t {
	case TextMessage, ImageMessage, AudioMessage:
		return true
	}
	return false
}

// Sender records which side of the pairing produced a message.
type Sender string

const (
	SenderSelf Sender = "self"
	SenderPeer Sender = "peer"
)

// Message is one entry in a session's local log. Immutable once appended;
// append order is delivery order. Encrypted documents that the content passed
// through the crypto provider.
type Message struct {
	ID        string
	Content   string
	Type      MessageType
	Timestamp time.Time
	Sender    Sender
	Encrypted bool
}

// Payload is the raw content handed to room subscribers on fan-out.
type Payload struct {
	Content string
	Type    MessageType
}
