package sepulka

import (
	"fmt"
	"strings"

	"sepulka/internal/pkg/errs"
)

// Size is the textual size class of a sepulka.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

// DefaultSize is used when an order is created without a size.
const DefaultSize = SizeM

func getValidSizes() map[Size]struct{} {
	return map[Size]struct{}{
		SizeXS: {}, SizeS: {}, SizeM: {}, SizeL: {}, SizeXL: {}, SizeXXL: {},
	}
}

func (s Size) Validate() error {
	if _, ok := getValidSizes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a valid size", string(s)))
	}
	return nil
}

func (s Size) String() string {
	return string(s)
}

// ParseSize accepts "xl", "XL" and friends. An empty string yields DefaultSize.
func ParseSize(s string) (Size, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultSize, nil
	}
	size := Size(strings.ToUpper(strings.TrimSpace(s)))
	if err := size.Validate(); err != nil {
		return "", err
	}
	return size, nil
}
