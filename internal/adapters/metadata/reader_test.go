package metadata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/svgmake/internal/adapters/metadata"
	"go.trai.ch/svgmake/internal/core/domain"
)

func writeIni(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skin.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
	return path
}

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Metadata
	}{
		{
			name:    "equals delimiter",
			content: "[General]\nName = Example 1.2.3\n",
			want:    domain.Metadata{Name: "Example", Version: "1.2.3"},
		},
		{
			name:    "colon delimiter with comments",
			content: "// skin settings\n[General]\nName: Kirei 0.4.0\nAuthor: someone\n",
			want:    domain.Metadata{Name: "Kirei", Version: "0.4.0"},
		},
		{
			name:    "trailing tokens ignored",
			content: "[General]\nName = Example 2.0.0-rc.1 (beta)\n",
			want:    domain.Metadata{Name: "Example", Version: "2.0.0-rc.1"},
		},
		{
			name:    "key matched case-insensitively",
			content: "[General]\nname: Example 1.2.3\n",
			want:    domain.Metadata{Name: "Example", Version: "1.2.3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeIni(t, tt.content)

			got, err := metadata.NewReader().Read(path, "General", "Name")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_Read_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing section",
			content: "[Colours]\nCombo1 = 255,0,0\n",
			wantErr: domain.ErrMetadataKeyMissing.Error(),
		},
		{
			name:    "missing key",
			content: "[General]\nAuthor = someone\n",
			wantErr: domain.ErrMetadataKeyMissing.Error(),
		},
		{
			name:    "value without version",
			content: "[General]\nName = Example\n",
			wantErr: "invalid version string",
		},
		{
			name:    "malformed version",
			content: "[General]\nName = Example v1\n",
			wantErr: "invalid version string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeIni(t, tt.content)

			_, err := metadata.NewReader().Read(path, "General", "Name")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestReader_Read_MissingFile(t *testing.T) {
	_, err := metadata.NewReader().Read(filepath.Join(t.TempDir(), "absent.ini"), "General", "Name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrMetadataReadFailed.Error())
}
