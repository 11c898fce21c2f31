package makefile_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/svgmake/internal/adapters/makefile"
	"go.trai.ch/svgmake/internal/core/domain"
)

func TestWriter_WriteRule(t *testing.T) {
	tests := []struct {
		name string
		rule domain.Rule
		want string
	}{
		{
			name: "file rule",
			rule: domain.Rule{
				Target:        "build/a.png",
				Prerequisites: []string{"source/a.svg", "source/logo.png"},
				Commands:      []string{"rsvg-convert -f png -z 1 -o build/a.png source/a.svg"},
			},
			want: "build/a.png: source/a.svg source/logo.png\n" +
				"\trsvg-convert -f png -z 1 -o build/a.png source/a.svg\n\n",
		},
		{
			name: "phony without prerequisites",
			rule: domain.Rule{
				Target:   "clean",
				Phony:    true,
				Commands: []string{"rm -rf build/a.png"},
			},
			want: ".PHONY: clean\nclean:\n\trm -rf build/a.png\n\n",
		},
		{
			name: "spaces escaped",
			rule: domain.Rule{
				Target:        "build/my icon.png",
				Prerequisites: []string{"source/my icon.svg"},
			},
			want: "build/my\\ icon.png: source/my\\ icon.svg\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := makefile.NewWriter(&buf)

			require.NoError(t, w.WriteRule(tt.rule))
			require.NoError(t, w.Flush())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := makefile.NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.Flush())
	assert.Equal(t, makefile.Header+"\n\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_FlushError(t *testing.T) {
	w := makefile.NewWriter(failingWriter{})
	require.NoError(t, w.WriteRule(domain.Rule{Target: "all"}))

	err := w.Flush()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrRuleWriteFailed.Error())
}
