package ports

import "time"

// Clock abstracts the current time so handlers can stamp processing records
// and audit entries deterministically in tests.
type Clock interface {
	Now() time.Time
}
