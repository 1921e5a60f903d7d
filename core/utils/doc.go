// Package utils provides common utility functions for route-atlas.
// It holds the loose type conversions needed where JSON payloads carry
// numbers and strings interchangeably.
package utils
