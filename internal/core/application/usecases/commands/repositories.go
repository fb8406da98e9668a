// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"stockflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// FacilityRepoFactory provides access to the facility repository within a transaction.
	FacilityRepoFactory interface {
		FacilityRepository() ports.FacilityRepository
	}

	// EmployeeRepoFactory provides access to the employee repository within a transaction.
	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	// ScanSessionRepoFactory provides access to the scan-session repository within a transaction.
	ScanSessionRepoFactory interface {
		ScanSessionRepository() ports.ScanSessionRepository
	}

	// AuditLogRepoFactory provides access to the audit-log repository within a transaction.
	AuditLogRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// OrderingUoW manages transactions for order creation: the order itself,
	// price lookups, the facility check, and the opened scan session.
	OrderingUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		FacilityRepoFactory
		ScanSessionRepoFactory
	}

	// OrderingUoWFactory creates ordering unit of work instances.
	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// TransitionUoW manages transactions for status transitions: the order,
	// the products being committed, the scan session, and the audit log.
	TransitionUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		ScanSessionRepoFactory
		AuditLogRepoFactory
	}

	// TransitionUoWFactory creates transition unit of work instances.
	TransitionUoWFactory interface {
		Create() TransitionUoW
	}

	// CompleteScanUoW extends TransitionUoW with the employee lookup needed
	// to resolve the packer finishing the scan pass.
	CompleteScanUoW interface {
		TransitionUoW
		EmployeeRepoFactory
	}

	// CompleteScanUoWFactory creates complete-scan unit of work instances.
	CompleteScanUoWFactory interface {
		Create() CompleteScanUoW
	}

	// ScanUoW manages transactions for scanning a single unit.
	ScanUoW interface {
		TxManager
		OrderRepoFactory
		ScanSessionRepoFactory
	}

	// ScanUoWFactory creates scan unit of work instances.
	ScanUoWFactory interface {
		Create() ScanUoW
	}

	// EmployeeUoW manages transactions for employee removal.
	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	// EmployeeUoWFactory creates employee unit of work instances.
	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}
)
