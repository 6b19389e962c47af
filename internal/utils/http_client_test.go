package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_DefaultHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, clientUserAgent, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient()
	require.NotNil(t, client.Client)

	resp, err := client.R().Get(srv.URL + "/api/version")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}

func TestNewHTTPClient_IndependentInstances(t *testing.T) {
	c1 := NewHTTPClient()
	c2 := NewHTTPClient()

	c1.SetBaseURL("http://catalog-a.example")

	assert.NotSame(t, c1.Client, c2.Client)
	assert.NotEqual(t, c1.BaseURL, c2.BaseURL)
}
