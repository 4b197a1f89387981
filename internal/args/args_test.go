package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Setenv("ADDEMUP_CONFIG", "")

	tests := []struct {
		name    string
		argv    []string
		in, out string
		wantErr bool
	}{
		{name: "in then out", argv: []string{"--in", "hands.txt", "--out", "result.txt"}, in: "hands.txt", out: "result.txt"},
		{name: "out then in", argv: []string{"--out", "/tmp/r.txt", "--in", "/tmp/h.txt"}, in: "/tmp/h.txt", out: "/tmp/r.txt"},
		{name: "no args", argv: nil, wantErr: true},
		{name: "missing out value", argv: []string{"--in", "a", "--out"}, wantErr: true},
		{name: "extra args", argv: []string{"--in", "a", "--out", "b", "c"}, wantErr: true},
		{name: "in twice", argv: []string{"--in", "a", "--in", "b"}, wantErr: true},
		{name: "unknown flag", argv: []string{"--in", "a", "--verbose", "b"}, wantErr: true},
		{name: "help is not special", argv: []string{"--help", "a", "--out", "b"}, wantErr: true},
		{name: "empty in", argv: []string{"--in", "", "--out", "b"}, wantErr: true},
		{name: "positional", argv: []string{"a", "b", "c", "d"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.in, got.In)
			assert.Equal(t, tt.out, got.Out)
		})
	}
}

func TestParseReadsConfigFromEnvironment(t *testing.T) {
	t.Setenv("ADDEMUP_CONFIG", "/etc/addemup.hcl")

	got, err := Parse([]string{"--in", "a", "--out", "b"})
	require.NoError(t, err)
	assert.Equal(t, "/etc/addemup.hcl", got.Config)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		path string
		ok   bool
	}{
		{"present", []string{"--in", "a", "--out", "b"}, "b", true},
		{"with extra args", []string{"--out", "b", "x"}, "b", true},
		{"dangling", []string{"--in", "a", "--out"}, "", false},
		{"followed by flag", []string{"--out", "--in", "a"}, "", false},
		{"absent", []string{"--in", "a"}, "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := OutputPath(tt.argv)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.path, path)
		})
	}
}
