package ports

import (
	"context"

	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"
)

// SepulkaRepository persists the order aggregate. Every Update* method
// writes only the columns owned by the matching aggregate operation.
type SepulkaRepository interface {
	// Add inserts the order together with its process and delivery rows.
	Add(ctx context.Context, aggregate *sepulka.Sepulka) error

	// Get loads the order with both sub-records, including deleted orders.
	Get(ctx context.Context, code kernel.UUID) (*sepulka.Sepulka, error)

	// UpdateState persists State. Forward moves never overwrite a later
	// state written concurrently; Deleted always wins. The result reports
	// whether the stored state was changed.
	UpdateState(ctx context.Context, aggregate *sepulka.Sepulka) (bool, error)

	UpdateProcessResponsible(ctx context.Context, aggregate *sepulka.Sepulka) error

	UpdateProcessProperties(ctx context.Context, aggregate *sepulka.Sepulka) error

	UpdateDeliveryResponsible(ctx context.Context, aggregate *sepulka.Sepulka) error

	UpdateDeliveryMethod(ctx context.Context, aggregate *sepulka.Sepulka) error
}
