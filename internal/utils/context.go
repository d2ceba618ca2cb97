// Package utils provides general-purpose helper utilities used across
// different parts of the application: type-safe context keys, JWT token
// generation and validation, HTTP response writing, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EncoderIDCtxKey is the key used to store the authenticated encoder's
// identifier in the context. Used together with GetEncoderIDFromContext for
// type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.EncoderIDCtxKey, int64(42))
var EncoderIDCtxKey = contextKey("encoderID")

// EncoderRoleCtxKey is the key used to store the authenticated encoder's
// role in the context.
var EncoderRoleCtxKey = contextKey("encoderRole")

// GetEncoderIDFromContext retrieves the encoder identifier from the context.
//
// Returns the encoder ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetEncoderIDFromContext(ctx context.Context) (int64, bool) {
	encoderID, ok := ctx.Value(EncoderIDCtxKey).(int64)
	return encoderID, ok
}

// GetEncoderRoleFromContext retrieves the encoder role from the context.
func GetEncoderRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(EncoderRoleCtxKey).(string)
	return role, ok
}
