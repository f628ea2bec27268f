// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of outcome.Outcome[T] values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose outcome-returning or error-returning functions
// - Map/MapCatching/Recover: transform the value or the failure
// - Ensure: trigger side effects without changing the outcome
// - Or: pick the first successful chain
// - Finally: reduce to a concrete value via handlers
//
// A failure short-circuits every success-path step, so a chain can be read
// top to bottom as the happy path with failure handling at the end.
package chain
