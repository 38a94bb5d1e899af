package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		input string
		want  Environment
	}{
		{"", EnvironmentProduction},
		{"Production", EnvironmentProduction},
		{"prod", EnvironmentProduction},
		{"Development", EnvironmentDevelopment},
		{"DEV", EnvironmentDevelopment},
		{"Testing", EnvironmentTesting},
		{"Test", EnvironmentTesting},
		{" testing ", EnvironmentTesting},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseEnvironment(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEnvironment_Unknown(t *testing.T) {
	_, err := ParseEnvironment("Staging")
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
	assert.Contains(t, err.Error(), "Staging")
}

func TestEnvironment_EagerInit(t *testing.T) {
	assert.False(t, EnvironmentProduction.EagerInit())
	assert.True(t, EnvironmentDevelopment.EagerInit())
	assert.True(t, EnvironmentTesting.EagerInit())
}

func TestEnvironment_IsTesting(t *testing.T) {
	assert.True(t, EnvironmentTesting.IsTesting())
	assert.False(t, EnvironmentDevelopment.IsTesting())
}

func TestEnvironment_UnmarshalText(t *testing.T) {
	var e Environment
	require.NoError(t, e.UnmarshalText([]byte("test")))
	assert.Equal(t, EnvironmentTesting, e)

	assert.ErrorIs(t, e.UnmarshalText([]byte("qa")), ErrUnknownEnvironment)
}
