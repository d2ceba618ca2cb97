package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jdcruz/rbi-registry/internal/validation"
	"github.com/jdcruz/rbi-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResident_InvalidRecordStillAnswers200(t *testing.T) {
	residents := &mockResidentService{
		validateFn: func(_ context.Context, rec models.Record, mode string) (models.Result, error) {
			assert.Equal(t, "create", mode)
			return models.InvalidResult("first_name", validation.MsgRequired), nil
		},
	}

	h := newHandlerWithResidents(t, residents)
	rec := serveRoute(h, http.MethodPost, "/api/validate/resident", `{"record":{},"mode":"create"}`)

	// validation outcomes are payload, not status: the form UI polls this
	// endpoint and renders whatever result comes back
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Result.Valid)
	assert.Contains(t, resp.Result.Errors, "first_name")
}

func TestValidateResident_ValidRecord(t *testing.T) {
	residents := &mockResidentService{
		validateFn: func(_ context.Context, rec models.Record, _ string) (models.Result, error) {
			return models.ValidResult(rec), nil
		},
	}

	h := newHandlerWithResidents(t, residents)
	rec := serveRoute(h, http.MethodPost, "/api/validate/resident", `{"record":{"first_name":"Juan"}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Valid)
}

func TestValidateResident_InvalidJSON(t *testing.T) {
	h := newHandlerWithResidents(t, &mockResidentService{})
	rec := serveRoute(h, http.MethodPost, "/api/validate/resident", "[not json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateResident_SchemaFault(t *testing.T) {
	residents := &mockResidentService{
		validateFn: func(_ context.Context, _ models.Record, _ string) (models.Result, error) {
			return models.Result{}, errors.New("context cancelled mid-check")
		},
	}

	h := newHandlerWithResidents(t, residents)
	rec := serveRoute(h, http.MethodPost, "/api/validate/resident", `{"record":{}}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
