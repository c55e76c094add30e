// Package chat implements the per-participant chat session: pairing
// (generate and join), the message relay with local echo and best-effort
// fan-out, and the lifecycle that ties the registry subscription to the
// pairing's lifetime.
//
// State machine: Idle -> (generate success | join success) -> Paired ->
// (LeaveChat | Close) -> Idle. A failed generate or join leaves the session
// Idle.
package chat
