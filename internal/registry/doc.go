// Package registry implements the process-wide room store that pairs chat
// sessions and fans messages out between them.
//
// It is the sole source of truth for which sessions exist and who is
// listening. Rooms are created by the pairing path, mutated by
// subscribe/unsubscribe, and garbage-collected when their subscriber set
// empties. Subscriptions are opaque handles so removal is exact rather than
// relying on callback identity.
package registry
