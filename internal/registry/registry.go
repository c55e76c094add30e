package registry

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"pairchat/internal/domain"
	"pairchat/internal/metrics"
)

// ErrRoomExists is returned when a code collides with an open room. Codes
// are assumed effectively unique; the error is defensive.
var ErrRoomExists = errors.New("room already exists")

// DeliveryFunc receives one payload fanned out to a room subscriber.
type DeliveryFunc func(domain.Payload)

// Subscription is the opaque handle identifying one subscriber in one room.
// It is the token for exact removal and for sender exclusion on fan-out.
// The zero value is not a valid subscription.
type Subscription struct {
	code domain.PairingCode
	id   uint64
}

// Code returns the pairing code the subscription belongs to.
func (s Subscription) Code() domain.PairingCode { return s.code }

type room struct {
	creator     domain.SessionID
	subscribers map[uint64]DeliveryFunc
}

// Registry is the process-wide mapping from pairing code to open room. It is
// shared mutable state across independently running sessions: every operation
// is atomic under one mutex, but sequences are not. In particular the join
// path's creator check and subscribe are separate calls, so a room can vanish
// or gain a subscriber between them. That window is an accepted limitation of
// the in-process relay.
type Registry struct {
	mu     sync.Mutex
	nextID uint64
	rooms  map[domain.PairingCode]*room
}

// New returns an empty registry. One instance is shared by every session in
// the process and lives for its duration.
func New() *Registry {
	return &Registry{rooms: make(map[domain.PairingCode]*room)}
}

// Create opens a room keyed by code with an empty subscriber set. The
// creator identity never changes after creation.
func (r *Registry) Create(code domain.PairingCode, creator domain.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[code]; ok {
		return ErrRoomExists
	}
	r.rooms[code] = &room{creator: creator, subscribers: make(map[uint64]DeliveryFunc)}
	metrics.RoomsCreated.Inc()
	metrics.RoomsOpen.Set(float64(len(r.rooms)))
	log.Debug().Str("code", string(code)).Msg("room created")
	return nil
}

// Creator reports the identity that opened the room, if it is still open.
func (r *Registry) Creator(code domain.PairingCode) (domain.SessionID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[code]
	if !ok {
		return "", false
	}
	return rm.creator, true
}

// Subscribe registers fn as a subscriber of the room and returns the handle
// for later removal. ok is false when no room is open under code.
func (r *Registry) Subscribe(code domain.PairingCode, fn DeliveryFunc) (Subscription, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[code]
	if !ok {
		return Subscription{}, false
	}
	r.nextID++
	rm.subscribers[r.nextID] = fn
	return Subscription{code: code, id: r.nextID}, true
}

// Unsubscribe removes exactly the subscription's entry. When the last
// subscriber leaves, the room is deleted. Missing rooms and already-removed
// handles are no-ops, so repeated or out-of-order teardown never errors.
func (r *Registry) Unsubscribe(sub Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.rooms[sub.code]
	if !ok {
		return
	}
	delete(rm.subscribers, sub.id)
	if len(rm.subscribers) == 0 {
		delete(r.rooms, sub.code)
		metrics.RoomsOpen.Set(float64(len(r.rooms)))
		log.Debug().Str("code", string(sub.code)).Msg("room deleted")
	}
}

// Delete drops the room regardless of remaining subscribers. No-op when
// absent.
func (r *Registry) Delete(code domain.PairingCode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[code]; !ok {
		return
	}
	delete(r.rooms, code)
	metrics.RoomsOpen.Set(float64(len(r.rooms)))
	log.Debug().Str("code", string(code)).Msg("room deleted")
}

// Broadcast delivers p to every subscriber of the room except from, in no
// particular order, and returns the delivery count. Callbacks run outside
// the registry lock. A missing room drops the payload and returns 0; the
// relay is best effort and the sender has already echoed locally.
func (r *Registry) Broadcast(code domain.PairingCode, from Subscription, p domain.Payload) int {
	r.mu.Lock()
	rm, ok := r.rooms[code]
	if !ok {
		r.mu.Unlock()
		metrics.MessagesDropped.Inc()
		log.Debug().Str("code", string(code)).Msg("broadcast into closed room dropped")
		return 0
	}
	targets := make([]DeliveryFunc, 0, len(rm.subscribers))
	for id, fn := range rm.subscribers {
		if code == from.code && id == from.id {
			continue
		}
		targets = append(targets, fn)
	}
	r.mu.Unlock()

	for _, fn := range targets {
		fn(p)
	}
	metrics.MessagesRelayed.Add(float64(len(targets)))
	return len(targets)
}

// Open reports the number of open rooms.
func (r *Registry) Open() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}
