package chat

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pairchat/internal/domain"
	"pairchat/internal/registry"
)

// Service owns one participant's chat session: its pairing state, append-only
// message log, and registry subscription.
//
// Exactly one pairing is active per Service at a time; starting a new pairing
// while one is active tears the previous subscription down first. The
// message log and subscription handle are exclusively owned by this Service,
// while the room registry is shared with every other session in the process.
type Service struct {
	id       domain.SessionID
	provider domain.CryptoProvider
	rooms    *registry.Registry

	mu       sync.Mutex
	code     domain.PairingCode
	paired   bool
	messages []domain.Message
	sub      registry.Subscription
	haveSub  bool
}

// New constructs a chat service for a fresh session identity.
func New(id domain.SessionID, provider domain.CryptoProvider, rooms *registry.Registry) *Service {
	return &Service{id: id, provider: provider, rooms: rooms}
}

// Messages returns a snapshot of the session's message log in append order.
func (s *Service) Messages() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// IsPaired reports whether a pairing is active.
func (s *Service) IsPaired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paired
}

// IsConnected reports transport health. The in-process relay is always
// reachable.
func (s *Service) IsConnected() bool { return true }

// PairingCode returns the active code, if any.
func (s *Service) PairingCode() (domain.PairingCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.paired {
		return "", false
	}
	return s.code, true
}

// newMessage builds an immutable log entry. Content always passes through
// the crypto provider on the wire path, so Encrypted is set.
func newMessage(content string, typ domain.MessageType, from domain.Sender) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Content:   content,
		Type:      typ,
		Timestamp: time.Now(),
		Sender:    from,
		Encrypted: true,
	}
}

// Compile-time assertion that Service implements domain.ChatService.
var _ domain.ChatService = (*Service)(nil)
