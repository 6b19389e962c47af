package handler

import (
	"testing"

	"github.com/MKhiriev/go-library-catalog/internal/config"
	"github.com/MKhiriev/go-library-catalog/internal/logger"
	"github.com/MKhiriev/go-library-catalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantErr  error
		wantHTTP bool
	}{
		{
			name:     "http address configured",
			cfg:      config.Server{HTTPAddress: ":8080"},
			wantHTTP: true,
		},
		{
			name:     "with cors origins",
			cfg:      config.Server{HTTPAddress: "localhost:3000", CORSAllowedOrigins: []string{"http://frontend.example"}},
			wantHTTP: true,
		},
		{
			name:    "no address",
			cfg:     config.Server{},
			wantErr: errNoHTTPAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// NewHandler only stores the services pointer.
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, h)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
		})
	}
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h1, err1 := NewHandlers(&service.Services{}, cfg, logger.Nop())
	h2, err2 := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
