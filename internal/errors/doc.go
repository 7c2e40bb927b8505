// Package apperrors defines the application-level error types of longdiv
// and maps them to process exit codes.
//
// Division parameter errors stay in the division package; apperrors wraps
// them when they cross into the application (bad CLI operands, self-test
// mismatches, timeouts). Every wrapper implements Unwrap so errors.Is and
// errors.As see the original cause.
package apperrors
