// Package sense defines the Sense identifier (spec.md §4.4), the sense
// inventory and disambiguated-context map types built around it, and the
// Disambiguate helper used by the Watset orchestrator to rewrite a raw
// neighbor context into a sense-level context.
package sense
