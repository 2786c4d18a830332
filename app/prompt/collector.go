package prompt

import (
	"context"

	"github.com/Blainegunn/generator-aem-component/app/component"
)

// Outcome is the result of a completed collection: the derived spec and
// whether the operator confirmed it. A declined outcome never reaches the
// materializer.
type Outcome struct {
	Spec      component.Spec
	Confirmed bool
}

// Collector gathers a component spec from the operator.
type Collector interface {
	Collect(ctx context.Context) (Outcome, error)
}
