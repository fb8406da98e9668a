// Package errs provides standardized error types for the stockflow application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the warehouse core:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed input
//   - ObjectNotFoundError: unknown order, product, facility, or employee
//   - InvalidStateError: illegal lifecycle transitions and incomplete scan passes
//   - StockInsufficientError: a stock commitment that cannot be satisfied,
//     carrying the product, available, and requested quantities for the caller
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
package errs
