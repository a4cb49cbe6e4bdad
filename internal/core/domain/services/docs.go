// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the rental system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RentalBooker: A domain service for opening a rental against a fleet unit
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
