// Package audit contains the immutable record of administrator-driven order
// status changes. Entries are append-only: never updated, never deleted.
package audit

import (
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/pkg/errs"
)

// Entry is one audit row: which order moved, from and to which status, who
// did it, and when.
type Entry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	oldStatus order.Status
	newStatus order.Status
	actorID   string
	actorName string
	changedAt time.Time

	isConstructed bool
}

// NewEntry creates an audit entry. The only validation beyond identifiers is
// a non-empty actor identity; the statuses were already validated by the
// transition that produced the entry.
func NewEntry(
	orderID kernel.UUID,
	oldStatus, newStatus order.Status,
	actorID, actorName string,
	changedAt time.Time,
) (*Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if actorID == "" {
		return nil, errs.NewValueIsRequiredError("actor id")
	}

	return &Entry{
		id:            kernel.NewUUID(),
		orderID:       orderID,
		oldStatus:     oldStatus,
		newStatus:     newStatus,
		actorID:       actorID,
		actorName:     actorName,
		changedAt:     changedAt,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an audit entry from persistence.
func RestoreEntry(
	id, orderID kernel.UUID,
	oldStatus, newStatus order.Status,
	actorID, actorName string,
	changedAt time.Time,
) (*Entry, error) {
	e, err := NewEntry(orderID, oldStatus, newStatus, actorID, actorName, changedAt)
	if err != nil {
		return nil, err
	}
	e.id = id
	return e, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return errs.NewValueIsRequiredError("Entry must be created via NewEntry")
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// OrderID returns the order the entry refers to.
func (e *Entry) OrderID() kernel.UUID { return e.orderID }

// OldStatus returns the status before the change.
func (e *Entry) OldStatus() order.Status { return e.oldStatus }

// NewStatus returns the status after the change.
func (e *Entry) NewStatus() order.Status { return e.newStatus }

// ActorID returns the identity of the administrator who made the change.
func (e *Entry) ActorID() string { return e.actorID }

// ActorName returns the administrator's display name.
func (e *Entry) ActorName() string { return e.actorName }

// ChangedAt returns when the change happened.
func (e *Entry) ChangedAt() time.Time { return e.changedAt }
