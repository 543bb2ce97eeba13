// Package pointers provides helpers for pointer creation and conversions.
//
// Use this package to reduce boilerplate at ownership-transfer call sites
// (for example Array.Add) while keeping pointer semantics explicit.
package pointers
