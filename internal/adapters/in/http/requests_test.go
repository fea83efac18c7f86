package http_test

import (
	"encoding/json"
	"testing"

	http_adapter "sepulka/internal/adapters/in/http"
	"sepulka/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryRequest_TellsAbsentFromNull(t *testing.T) {
	var req http_adapter.DeliveryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"responsible": null, "method": "ROLL"}`), &req))

	responsible := req.Responsible.Patch()
	assert.True(t, responsible.IsPresent())
	assert.Nil(t, responsible.Value())

	method := req.Method.Patch()
	require.True(t, method.IsPresent())
	assert.Equal(t, "ROLL", *method.Value())

	var empty http_adapter.DeliveryRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.False(t, empty.Responsible.Patch().IsPresent())
	assert.False(t, empty.Method.Patch().IsPresent())
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := http_adapter.NewValidator()

	err := v.Validate(&http_adapter.CreateSepulkaRequest{Size: "XXXL"})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "size")
	assert.NotContains(t, err.Error(), "Name")
}

func TestValidator_AcceptsValidPayload(t *testing.T) {
	v := http_adapter.NewValidator()

	require.NoError(t, v.Validate(&http_adapter.CreateSepulkaRequest{Name: "box1", Size: "M"}))
	require.NoError(t, v.Validate(&http_adapter.SignupRequest{Username: "alice", Password: "password1"}))
	require.Error(t, v.Validate(&http_adapter.SignupRequest{Username: "alice", Email: "nope", Password: "password1"}))
}
