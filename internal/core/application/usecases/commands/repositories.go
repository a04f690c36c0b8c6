// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// StatusRepoFactory provides access to the status registry repository within a transaction.
	StatusRepoFactory interface {
		StatusRepository() ports.StatusRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// DistributorRepoFactory provides access to the distributor repository within a transaction.
	DistributorRepoFactory interface {
		DistributorRepository() ports.DistributorRepository
	}

	// TransitionUoW manages the transaction of a single status transition:
	// the parcel read/write, the registry lookup and the audit append all
	// happen against one transaction so that the parcel update and its
	// audit entry commit together.
	TransitionUoW interface {
		TxManager
		ParcelRepoFactory
		StatusRepoFactory
		AuditRepoFactory
	}

	// TransitionUoWFactory creates new transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// StatusUoW manages transactions for registry-only operations.
	// Used when commands only modify status registry entries.
	StatusUoW interface {
		TxManager
		StatusRepoFactory
	}

	// StatusUoWFactory creates new status unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// NotificationUoW provides the read side of the overdue notification
	// run: stale parcels and distributor contacts. The job never writes.
	NotificationUoW interface {
		TxManager
		ParcelRepoFactory
		DistributorRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
