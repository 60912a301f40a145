// Package errs provides standardized error types for the production tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package covers two groups of errors:
//
// Construction and lookup errors shared by all layers:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value fails validation
//   - ValueIsOutOfRangeError: a value lies outside its allowed range
//   - ObjectNotFoundError: an object cannot be found
//
// Production-flow errors raised by the scan and decomposition paths:
//   - MalformedCodeError: scanned text parses as no known code shape
//   - InvalidTransitionError: an illegal bundle stage move
//   - InsufficientStockError: strict-policy stock shortfall at the draw point
//   - AlreadyDecomposedError / InvalidDecompositionError: decomposition failures
//   - ConcurrencyConflictError: the request lost a per-bundle race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Callers branch on sentinels, never on message text. The HTTP layer maps
// sentinels to status codes; the scan flow maps them to operator prompts.
package errs
