// Package errors provides structured error handling for the roulette API.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - HTTP status mapping per error code
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("profile not found")
//	err := errors.InvalidArgumentf("invalid roll speed: %s", speed)
//
// Wrapping errors:
//
//	if err := repo.SaveSettings(ctx, id, settings); err != nil {
//	    return errors.Wrap(err, "failed to save settings")
//	}
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound)
//   - Wrap redis errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Check preconditions and return FailedPrecondition errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert errors to HTTP responses via Code.HTTPStatus
//   - Extract user-friendly messages with GetMessage
package errors
