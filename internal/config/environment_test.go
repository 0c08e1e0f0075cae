package config

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvironment(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "simple assignments with blank lines",
			input: "FOO=bar\n\nBAZ=qux\n",
			want:  map[string]string{"FOO": "bar", "BAZ": "qux"},
		},
		{
			name:    "missing equals halts parsing",
			input:   "FOO=bar\nNOTANASSIGNMENT\n",
			wantErr: true,
		},
		{
			name:    "empty name is an error",
			input:   "=value\n",
			wantErr: true,
		},
		{
			name:    "empty value is an error",
			input:   "FOO=\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvironment(bufio.NewScanner(strings.NewReader(tt.input)))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadEnvironmentFileMissingIsNotAnError(t *testing.T) {
	env, err := LoadEnvironmentFile("/nonexistent/path/to/environment")
	require.NoError(t, err)
	assert.Empty(t, env)
}
