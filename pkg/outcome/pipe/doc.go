// Package pipe provides channel-lifted helpers for running outcome stages
// over fan-out pipelines with a fixed number of worker lines.
//
// Common usage:
// - FromValues/Collect: bridge slices and outcome channels
// - MapStage/TryStage/TeeStage: lift plain functions into stages
// - Run: execute a stage over an input channel with n lines
// - RunLimited: the same, gated on a golang.org/x/time/rate limiter
//
// Output ordering across lines is unspecified; with a single line the input
// order is preserved. When the context is cancelled, inputs that were not
// processed are emitted as failures carrying the context error, so every
// input still yields exactly one output.
package pipe
