// Package kernel contains shared value objects used across the domain model.
// These are the building blocks for aggregates: identifiers and other
// primitive-wrapping types that carry their own validation rules.
package kernel
