package domain

import "errors"

var (
	// ErrCrypto indicates the crypto provider failed to produce key material
	// or a pairing code. The session stays unpaired.
	ErrCrypto = errors.New("crypto provider failure")

	// ErrNotPaired is returned when a send is attempted without an active
	// pairing. No state is mutated.
	ErrNotPaired = errors.New("not paired with a chat session")

	// ErrUnknownMessageType is returned for a message type outside the known
	// set.
	ErrUnknownMessageType = errors.New("unknown message type")
)
