package http

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
	echoSwagger "github.com/swaggo/echo-swagger"
)

//go:embed openapi.yaml
var openapiYAML []byte

var registerSwagger sync.Once

// OpenAPI is the validated API description served at /openapi.json and
// behind the swagger UI.
type OpenAPI struct {
	doc  *openapi3.T
	json []byte
}

// LoadOpenAPI parses and validates the embedded document.
func LoadOpenAPI() (*OpenAPI, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}

	return &OpenAPI{doc: doc, json: raw}, nil
}

// Document returns the parsed description.
func (o *OpenAPI) Document() *openapi3.T {
	return o.doc
}

// ReadDoc implements swag.Swagger.
func (o *OpenAPI) ReadDoc() string {
	return string(o.json)
}

// Register serves the document and the swagger UI. The swag registry is
// process wide, so only the first document is registered there.
func (o *OpenAPI) Register(e *echo.Echo) {
	registerSwagger.Do(func() {
		swag.Register(swag.Name, o)
	})

	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, o.json)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
