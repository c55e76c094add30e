package chat

// LeaveChat ends the active pairing: the subscription is released (deleting
// the room if we were its last subscriber), the local log is cleared, the
// session is unpaired, and the provider's key material is reset. Calling it
// repeatedly, or on a session that never paired, is a no-op.
func (s *Service) LeaveChat() {
	s.teardown()

	s.mu.Lock()
	s.messages = nil
	s.mu.Unlock()

	s.provider.Reset()
}

// Close releases the session's registry resources without discarding the
// local log. Callers defer it so the subscription is removed on every exit
// path, including error paths out of the pairing calls.
func (s *Service) Close() {
	s.teardown()
}

// teardown releases the active subscription, if any, and unpairs the
// session. The message log is left intact. Idempotent.
func (s *Service) teardown() {
	s.mu.Lock()
	sub, had := s.sub, s.haveSub
	s.code = ""
	s.paired = false
	s.haveSub = false
	s.mu.Unlock()

	// Outside our own lock: Unsubscribe takes the registry lock, and a
	// concurrent Broadcast may be waiting on ours in deliver.
	if had {
		s.rooms.Unsubscribe(sub)
	}
}
