package sepulka

import (
	"fmt"
	"strings"

	"sepulka/internal/pkg/errs"
)

// Method is the delivery method code stored on a Delivery.
type Method string

const (
	SelfDelivery Method = "SDEL"
	Roll         Method = "ROLL"
	AirBalloon   Method = "AIRB"
)

func getMethodLabels() map[Method]string {
	return map[Method]string{
		SelfDelivery: "self delivery",
		Roll:         "roll",
		AirBalloon:   "air balloon",
	}
}

func (m Method) Validate() error {
	if _, ok := getMethodLabels()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%q is not a valid delivery method", string(m)))
	}
	return nil
}

// String returns the four letter code.
func (m Method) String() string {
	return string(m)
}

// Label returns the human readable name, e.g. "air balloon".
func (m Method) Label() string {
	return getMethodLabels()[m]
}

// ParseMethod accepts a method code in any case.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}
