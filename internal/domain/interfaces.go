package domain

import "context"

// CryptoProvider is the capability interface for key material and pairing
// codes. The core never inspects key material; it only sequences these calls
// and propagates their failures.
type CryptoProvider interface {
	// GenerateKeyPair creates fresh key material for the current session,
	// replacing any previous keys. Failures wrap ErrCrypto.
	GenerateKeyPair(ctx context.Context) error

	// GeneratePairingCode mints a code unique among open rooms.
	// Failures wrap ErrCrypto.
	GeneratePairingCode(ctx context.Context) (PairingCode, error)

	// Reset wipes any key material held for the current session.
	// Calling it repeatedly is a no-op.
	Reset()
}

// ChatService is the session-facing API consumed by the UI layer.
type ChatService interface {
	// GenerateCode starts hosting a pairing session and returns the code to
	// share with the peer out of band.
	GenerateCode(ctx context.Context) (PairingCode, error)

	// JoinChat redeems a code generated by another session. A missing room
	// and self-pairing both return false, not an error.
	JoinChat(ctx context.Context, code PairingCode) (bool, error)

	// SendMessage appends a local message and relays it to the peer.
	// Returns ErrNotPaired when no pairing is active.
	SendMessage(content string, typ MessageType) error

	// LeaveChat ends the pairing, clears the local log, and resets the
	// crypto provider. Idempotent.
	LeaveChat()

	// Messages returns a snapshot of the local log in append order.
	Messages() []Message

	IsPaired() bool
	IsConnected() bool
	PairingCode() (PairingCode, bool)
}
