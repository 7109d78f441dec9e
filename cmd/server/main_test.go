package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr string
	}{
		{name: "no flags", args: nil, want: options{}},
		{
			name: "config and migrate",
			args: []string{"-config", "/etc/studyplan.yaml", "-migrate", "up"},
			want: options{configPath: "/etc/studyplan.yaml", migrate: "up"},
		},
		{name: "status", args: []string{"-migrate=status"}, want: options{migrate: "status"}},
		{name: "unknown migrate command", args: []string{"-migrate", "sideways"}, wantErr: `unknown migration command "sideways"`},
		{name: "positional argument", args: []string{"serve"}, wantErr: "unexpected arguments"},
		{name: "unknown flag", args: []string{"-port", "80"}, wantErr: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			got, err := parseFlags(tt.args, &out)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer

	_, err := parseFlags([]string{"-h"}, &out)

	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-migrate")
}
