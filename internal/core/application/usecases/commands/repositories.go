// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"rentmoto/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the narrowest interface covering the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MotorcycleRepoFactory provides access to the motorcycle repository within a transaction.
	MotorcycleRepoFactory interface {
		MotorcycleRepository() ports.MotorcycleRepository
	}

	// RiderRepoFactory provides access to the rider repository within a transaction.
	RiderRepoFactory interface {
		RiderRepository() ports.RiderRepository
	}

	// RentalRepoFactory provides access to the rental repository within a transaction.
	RentalRepoFactory interface {
		RentalRepository() ports.RentalRepository
	}

	// MotorcycleUoW manages transactions for fleet-only operations.
	MotorcycleUoW interface {
		TxManager
		MotorcycleRepoFactory
	}

	// MotorcycleUoWFactory creates new fleet unit of work instances.
	MotorcycleUoWFactory interface {
		Create() MotorcycleUoW
	}

	// RiderUoW manages transactions for rider-only operations.
	RiderUoW interface {
		TxManager
		RiderRepoFactory
	}

	// RiderUoWFactory creates new rider unit of work instances.
	RiderUoWFactory interface {
		Create() RiderUoW
	}

	// RentalUoW manages transactions for operations touching a rental and the
	// motorcycle it occupies, such as closing a contract.
	RentalUoW interface {
		TxManager
		RentalRepoFactory
		MotorcycleRepoFactory
	}

	// RentalUoWFactory creates new rental unit of work instances.
	RentalUoWFactory interface {
		Create() RentalUoW
	}

	// UoW manages transactions across rider, rental, and motorcycle
	// aggregates. Used by rental creation, which coordinates all three.
	UoW interface {
		TxManager
		RiderRepoFactory
		RentalRepoFactory
		MotorcycleRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
