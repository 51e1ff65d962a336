package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "casebridge/pkg/domain-errors"
)

type plainRequest struct {
	Name string `json:"name"`
}

type checkedRequest struct {
	Name       string `json:"name"`
	normalized bool
}

func (r *checkedRequest) Normalize() {
	r.normalized = true
	r.Name = strings.TrimSpace(r.Name)
}

func (r *checkedRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type domainCheckedRequest struct {
	ID string `json:"id"`
}

func (r *domainCheckedRequest) Validate() error {
	if r.ID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "id is required")
	}
	return nil
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func post(body string) (*httptest.ResponseRecorder, *http.Request) {
	return httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestDecodeJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes", func(t *testing.T) {
		w, r := post(`{"name":"x"}`)
		got, ok := DecodeJSON[plainRequest](w, r, discard, ctx, "req")
		require.True(t, ok)
		assert.Equal(t, "x", got.Name)
	})

	for _, body := range []string{`{bad`, ``} {
		t.Run("rejects "+body, func(t *testing.T) {
			w, r := post(body)
			got, ok := DecodeJSON[plainRequest](w, r, discard, ctx, "req")
			assert.False(t, ok)
			assert.Nil(t, got)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "bad_request", decodeError(t, w).Error)
		})
	}
}

func TestDecodeAndPrepare(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes before validating", func(t *testing.T) {
		w, r := post(`{"name":"  x  "}`)
		got, ok := DecodeAndPrepare[checkedRequest](w, r, discard, ctx, "req")
		require.True(t, ok)
		assert.True(t, got.normalized)
		assert.Equal(t, "x", got.Name)
	})

	t.Run("plain validation error becomes validation_error", func(t *testing.T) {
		w, r := post(`{"name":"   "}`)
		_, ok := DecodeAndPrepare[checkedRequest](w, r, discard, ctx, "req")
		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "validation_error", resp.Error)
		assert.Equal(t, "name is required", resp.ErrorDescription)
	})

	t.Run("domain error code is preserved", func(t *testing.T) {
		w, r := post(`{}`)
		_, ok := DecodeAndPrepare[domainCheckedRequest](w, r, discard, ctx, "req")
		assert.False(t, ok)
		assert.Equal(t, "bad_request", decodeError(t, w).Error)
	})
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{dErrors.New(dErrors.CodeNotFound, "missing"), http.StatusNotFound, "not_found"},
		{dErrors.New(dErrors.CodeValidation, "bad"), http.StatusBadRequest, "validation_error"},
		{dErrors.New(dErrors.CodeInvariantViolation, "no billing"), http.StatusUnprocessableEntity, "unprocessable_order"},
		{dErrors.New(dErrors.CodeInvalidInput, "no id"), http.StatusBadRequest, "bad_request"},
		{dErrors.Wrap(errors.New("db"), dErrors.CodeInternal, "save failed"), http.StatusInternalServerError, "internal_error"},
		{errors.New("raw"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		WriteError(w, tt.err)
		assert.Equal(t, tt.wantStatus, w.Code, tt.err.Error())
		assert.Equal(t, tt.wantCode, decodeError(t, w).Error)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	}
}

func TestWriteErrorHidesRawMessages(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: password authentication failed"))
	assert.NotContains(t, w.Body.String(), "password")
}
