package models

import (
	"fmt"
)

// ValidationError is returned when operation input is malformed: a
// non-positive budget, an unparseable deadline, a role mismatch.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError is returned when an operation references an entity id
// that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// InvalidStateError is returned when a status transition is attempted
// from a state that forbids it.
type InvalidStateError struct {
	ProjectID string
	Status    ProjectStatus
	Op        string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s project %q in status %q", e.Op, e.ProjectID, e.Status)
}

// PreconditionError reports an internal invariant violation: a view was
// dispatched without the selection context the navigation controller is
// supposed to guarantee. It must never occur in correct operation.
type PreconditionError struct {
	View    ViewType
	Missing string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("view %q dispatched without %s", e.View, e.Missing)
}
