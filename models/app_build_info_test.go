package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	tests := []struct {
		name                          string
		version, date, commit         string
		wantVersion, wantDate, wantCm string
	}{
		{
			name:        "all values set",
			version:     "1.2.3",
			date:        "2026-10-19",
			commit:      "abc123",
			wantVersion: "1.2.3",
			wantDate:    "2026-10-19",
			wantCm:      "abc123",
		},
		{
			name:        "empty values become N/A",
			wantVersion: "N/A",
			wantDate:    "N/A",
			wantCm:      "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppBuildInfo(tt.version, tt.date, tt.commit)

			assert.Equal(t, tt.wantVersion, info.BuildVersion())
			assert.Equal(t, tt.wantDate, info.BuildDate())
			assert.Equal(t, tt.wantCm, info.BuildCommit())
			assert.Contains(t, info.String(), "Build version: "+tt.wantVersion)
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleUser.IsValid())
	assert.False(t, Role("root").IsValid())
	assert.False(t, Role("").IsValid())
}
