// Package domain defines the core data models and the capability interfaces
// shared across the app. It contains plain types (parameters, statuses,
// reports) and contracts (library, suites, terminal, stores) only.
package domain
