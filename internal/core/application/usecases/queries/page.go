package queries

import "sepulka/internal/core/domain/model/kernel"

// Page is one page of a listing together with the total row count.
type Page[T any] struct {
	Count int64
	Page  kernel.Page
	Items []T
}

// HasNext reports whether rows remain after this page.
func (p Page[T]) HasNext() bool {
	return int64(p.Page.Offset()+len(p.Items)) < p.Count
}
