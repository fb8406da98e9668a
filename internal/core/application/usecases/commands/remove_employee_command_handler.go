package commands

import (
	"context"
)

// RemoveEmployeeCommandHandler deletes an employee record. The identity
// reference is cleared and the row deleted in the same transaction, so a
// failure between the two steps cannot leave a dangling reference.
// Historical order and audit rows keep the employee id; they are snapshots,
// not foreign keys.
type RemoveEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewRemoveEmployeeCommandHandler creates a handler for employee removal.
func NewRemoveEmployeeCommandHandler(uowFactory EmployeeUoWFactory) RemoveEmployeeCommandHandler {
	return RemoveEmployeeCommandHandler{uowFactory: uowFactory}
}

// Handle processes the removal.
func (h RemoveEmployeeCommandHandler) Handle(ctx context.Context, cmd RemoveEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EmployeeRepository()

	emp, err := repo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	if emp.IdentityID() != nil {
		if err = repo.ClearIdentity(ctx, emp.ID()); err != nil {
			return err
		}
	}

	if err = repo.Delete(ctx, emp.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
