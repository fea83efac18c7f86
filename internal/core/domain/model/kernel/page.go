package kernel

import (
	"errors"

	"sepulka/internal/pkg/errs"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

var ErrPageIsNotConstructed = errors.New("Page must be created via NewPage constructor")

// Page is a 1-based page number and page size pair used by list queries.
//
// Example:
//
//	page, err := kernel.NewPage(2, 20)
//	// page.Offset() == 20, page.Limit() == 20
type Page struct {
	number int
	size   int

	isConstructed bool
}

// NewPage validates number >= 1 and 1 <= size <= MaxPageSize.
func NewPage(number, size int) (Page, error) {
	if number < 1 {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, "unbounded")
	}
	if size < 1 || size > MaxPageSize {
		return Page{}, errs.NewValueIsOutOfRangeError("page_size", size, 1, MaxPageSize)
	}
	return Page{number: number, size: size, isConstructed: true}, nil
}

// FirstPage is page 1 with DefaultPageSize.
func FirstPage() Page {
	return Page{number: 1, size: DefaultPageSize, isConstructed: true}
}

func (p Page) Number() int {
	return p.number
}

func (p Page) Size() int {
	return p.size
}

func (p Page) Offset() int {
	return (p.number - 1) * p.size
}

func (p Page) Limit() int {
	return p.size
}

// Next returns the following page with the same size.
func (p Page) Next() Page {
	return Page{number: p.number + 1, size: p.size, isConstructed: true}
}

func (p Page) Validate() error {
	if !p.isConstructed {
		return ErrPageIsNotConstructed
	}
	return nil
}
