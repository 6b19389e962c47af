package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		codes      []int
		wantStatus int
	}{
		{name: "created", codes: []int{http.StatusCreated}, wantStatus: http.StatusCreated},
		{name: "bad request", codes: []int{http.StatusBadRequest}, wantStatus: http.StatusBadRequest},
		{name: "second call ignored", codes: []int{http.StatusForbidden, http.StatusOK}, wantStatus: http.StatusForbidden},
		{name: "no content then error ignored", codes: []int{http.StatusNoContent, http.StatusInternalServerError}, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			for _, code := range tt.codes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		header     int
		chunks     []string
		wantStatus int
		wantSize   int
		wantBody   string
	}{
		{name: "implicit 200", chunks: []string{"hello"}, wantStatus: http.StatusOK, wantSize: 5, wantBody: "hello"},
		{name: "accumulates size", chunks: []string{"first", "second"}, wantStatus: http.StatusOK, wantSize: 11, wantBody: "firstsecond"},
		{name: "keeps explicit status", header: http.StatusNotFound, chunks: []string{`{"message":"Not found."}`}, wantStatus: http.StatusNotFound, wantSize: 24, wantBody: `{"message":"Not found."}`},
		{name: "empty chunk", chunks: []string{""}, wantStatus: http.StatusOK, wantSize: 0, wantBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rec}

			if tt.header != 0 {
				w.WriteHeader(tt.header)
			}
			for _, chunk := range tt.chunks {
				n, err := w.Write([]byte(chunk))
				require.NoError(t, err)
				assert.Equal(t, len(chunk), n)
			}

			assert.Equal(t, tt.wantStatus, w.status)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.False(t, w.wroteHeader)
}

func TestResponseWriter_ProxiesHeadersAndUnwraps(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Header().Set("Content-Type", "application/json")

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Same(t, rec, w.Unwrap())
}
