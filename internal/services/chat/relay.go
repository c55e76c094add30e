package chat

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pairchat/internal/domain"
)

// SendMessage appends content to the local log and fans it out to the peer.
//
// The local echo always happens, even when no peer is subscribed or the room
// has already been deleted; delivery is best effort. An unpaired session gets
// ErrNotPaired and the log is left unchanged.
func (s *Service) SendMessage(content string, typ domain.MessageType) error {
	if !typ.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownMessageType, typ)
	}

	s.mu.Lock()
	if !s.paired {
		s.mu.Unlock()
		return domain.ErrNotPaired
	}
	code, sub := s.code, s.sub
	s.messages = append(s.messages, newMessage(content, typ, domain.SenderSelf))
	s.mu.Unlock()

	// Best effort: the peer may already have left and deleted the room.
	s.rooms.Broadcast(code, sub, domain.Payload{Content: content, Type: typ})
	return nil
}

// deliver handles one inbound payload from the peer. Failures are logged and
// swallowed: the sender has already completed its own send and there is no
// channel back to report them.
func (s *Service) deliver(p domain.Payload) {
	if !p.Type.Valid() {
		log.Warn().Str("type", string(p.Type)).Msg("dropping inbound message of unknown type")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.paired {
		// A broadcast that raced our teardown must not land in the log.
		log.Debug().Msg("dropping inbound message for torn-down session")
		return
	}
	s.messages = append(s.messages, newMessage(p.Content, p.Type, domain.SenderPeer))
}
