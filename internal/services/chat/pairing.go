package chat

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pairchat/internal/domain"
	"pairchat/internal/metrics"
)

// GenerateCode starts hosting a new pairing session and returns the code to
// share with the peer out of band.
//
// Steps:
//  1. Tear down any active pairing.
//  2. Ask the provider for a fresh key pair, then a pairing code.
//  3. Open a room under that code with this session as creator.
//  4. Register our delivery callback and mark the session paired.
//
// Provider failures surface to the caller and leave the session idle. The
// message log is untouched.
func (s *Service) GenerateCode(ctx context.Context) (domain.PairingCode, error) {
	s.teardown()

	if err := s.provider.GenerateKeyPair(ctx); err != nil {
		return "", fmt.Errorf("generate key pair: %w", err)
	}
	code, err := s.provider.GeneratePairingCode(ctx)
	if err != nil {
		return "", fmt.Errorf("generate pairing code: %w", err)
	}
	if err := s.rooms.Create(code, s.id); err != nil {
		return "", fmt.Errorf("open room: %w", err)
	}
	sub, ok := s.rooms.Subscribe(code, s.deliver)
	if !ok {
		// Only reachable if another session deleted the room in the window
		// after Create.
		return "", fmt.Errorf("room %s closed before host subscription", code)
	}

	s.mu.Lock()
	s.code = code
	s.sub = sub
	s.haveSub = true
	s.paired = true
	s.mu.Unlock()

	log.Info().Str("code", string(code)).Msg("hosting pairing session")
	return code, nil
}

// JoinChat redeems a pairing code generated by another session.
//
// A missing room and an attempt to join a room this session created both
// return false: expected negative outcomes, not faults. Provider failures
// surface as errors. Either way a failed join leaves the session idle.
//
// The creator check exists because the registry is process-wide, so a single
// process could otherwise generate a code and then redeem it itself.
func (s *Service) JoinChat(ctx context.Context, code domain.PairingCode) (bool, error) {
	s.teardown()

	creator, ok := s.rooms.Creator(code)
	if !ok {
		metrics.JoinsRejected.WithLabelValues("not_found").Inc()
		return false, nil
	}
	if creator == s.id {
		metrics.JoinsRejected.WithLabelValues("self_pairing").Inc()
		log.Warn().Str("code", string(code)).Msg("refusing to join own room")
		return false, nil
	}

	if err := s.provider.GenerateKeyPair(ctx); err != nil {
		return false, fmt.Errorf("generate key pair: %w", err)
	}

	sub, ok := s.rooms.Subscribe(code, s.deliver)
	if !ok {
		// Room vanished between the creator check and the subscription.
		metrics.JoinsRejected.WithLabelValues("not_found").Inc()
		return false, nil
	}

	s.mu.Lock()
	s.code = code
	s.sub = sub
	s.haveSub = true
	s.paired = true
	s.mu.Unlock()

	log.Info().Str("code", string(code)).Msg("joined pairing session")
	return true, nil
}
