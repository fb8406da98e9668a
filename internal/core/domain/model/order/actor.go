package order

import "stockflow/internal/pkg/errs"

// Actor identifies who requested a status transition. Human actors
// (administrators and warehouse staff) leave audit entries; the system actor,
// used for transitions the application performs on its own behalf (such as
// the one triggered by completing a scan pass), does not.
type Actor struct {
	id    string
	name  string
	human bool
}

// NewActor creates a human actor. The identity is required; the display
// name falls back to the identity when empty.
func NewActor(id, name string) (Actor, error) {
	if id == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor id")
	}
	if name == "" {
		name = id
	}
	return Actor{id: id, name: name, human: true}, nil
}

// SystemActor returns the actor used for application-initiated transitions.
func SystemActor() Actor {
	return Actor{id: "system", name: "system"}
}

// ID returns the actor's identity.
func (a Actor) ID() string { return a.id }

// Name returns the actor's display name.
func (a Actor) Name() string { return a.name }

// IsHuman reports whether the transition was administrator-initiated and
// must therefore be audited.
func (a Actor) IsHuman() bool { return a.human }
