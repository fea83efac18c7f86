package http

import (
	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

func pathParam(c echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// codeParam reads the order code. A malformed code cannot name an order,
// so it is reported as not found.
func codeParam(c echo.Context) (kernel.UUID, error) {
	raw, err := pathParam(c, "code")
	if err != nil {
		return kernel.UUID{}, err
	}
	code, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause("sepulka", raw, err)
	}
	return code, nil
}

func queryParam[T any](c echo.Context, name string) (*T, error) {
	var value *T
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// pageParams reads page and page_size, falling back to page 1 and
// defaultSize.
func pageParams(c echo.Context, defaultSize int) (kernel.Page, error) {
	number, err := queryParam[int](c, "page")
	if err != nil {
		return kernel.Page{}, err
	}
	size, err := queryParam[int](c, "page_size")
	if err != nil {
		return kernel.Page{}, err
	}

	n, s := 1, defaultSize
	if number != nil {
		n = *number
	}
	if size != nil {
		s = *size
	}
	return kernel.NewPage(n, s)
}

func stateParam(c echo.Context) (*sepulka.State, error) {
	label, err := queryParam[string](c, "state")
	if err != nil || label == nil {
		return nil, err
	}
	state, err := sepulka.ParseState(*label)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func roleParam(c echo.Context) (*user.Role, error) {
	label, err := queryParam[string](c, "role")
	if err != nil || label == nil {
		return nil, err
	}
	role, err := user.ParseRole(*label)
	if err != nil {
		return nil, err
	}
	return &role, nil
}
