// Package variables provides backends that store and list variables.
package variables

import (
	"context"

	"vardeck/internal/domain"
)

// Client defines the operations required to work with a variables backend.
type Client interface {
	Create(ctx context.Context, req domain.CreateRequest) (domain.Variable, error)
	List(ctx context.Context) ([]domain.Variable, error)
}
