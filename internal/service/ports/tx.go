package ports

import "context"

// TxManager serializes every capacity- and queue-mutating operation on one
// experience. fn runs with exclusive access to that experience; repositories
// called with the ctx passed to fn join the same unit of work. A non-nil error
// from fn discards all writes made through that ctx.
type TxManager interface {
	InExperience(ctx context.Context, experienceID string, fn func(ctx context.Context) error) error
}
