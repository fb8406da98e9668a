// Package kernel contains shared value objects used across aggregates.
// Currently this is the UUID identity type that every entity in the
// warehouse model is keyed by.
package kernel
