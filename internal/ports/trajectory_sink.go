package ports

import (
	"context"

	"github.com/bnema/kondo-sampler/internal/domain"
)

type TrajectorySink interface {
	Record(ctx context.Context, transition domain.Transition) error
}

// DiscardSink drops every transition.
type DiscardSink struct{}

func (DiscardSink) Record(context.Context, domain.Transition) error { return nil }
