// Package log defines the minimal structured logging surface used across
// lib-ptrarray.
//
// The package carries no backend of its own: Logger is a small interface
// with strongly-typed fields, satisfied by the zap adapter in the sibling
// zap package and by NopLogger for callers that want logging disabled.
package log
