// Package outcome provides a generic success-or-failure wrapper for
// synchronous computations, as an explicit alternative to panic-based error
// flow.
//
// Common usage:
// - Success/Failure: construct an Outcome directly
// - Call/Try: run a computation behind the safe boundary
// - Map/Recover/Fold: transform outcomes without unwinding the stack
// - OnSuccess/OnFailure: trigger side effects without changing the outcome
// - Must/MustSucceed: exit back to panic-based flow
//
// A failure Outcome is a normal return value; nothing is logged or reported
// automatically. Only Call and the ...Catching transforms recover panics;
// every other callback panics straight through to the caller.
//
// For fluent synchronous composition see package chain; for channel-lifted
// fan-out see package pipe.
package outcome
