package ports

import (
	"context"

	"sepulka/internal/core/domain/model/sepulka"
)

type FlowRepository interface {
	// Add appends the message and returns it with its assigned id.
	Add(ctx context.Context, flow *sepulka.Flow) (*sepulka.Flow, error)
}
