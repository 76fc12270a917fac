package receipt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want string
	}

	tests := []testCase{
		{name: "Clean", in: "rechnung.pdf", want: "rechnung.pdf"},
		{name: "Spaces", in: "scan 2025 06.pdf", want: "scan_2025_06.pdf"},
		{name: "PathStripped", in: "../../etc/passwd", want: "passwd"},
		{name: "Umlauts", in: "beleg-büro.pdf", want: "beleg-b_ro.pdf"},
		{name: "EmptyBase", in: "???.pdf", want: "beleg.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeFilename(tt.in))
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("a", 200) + ".pdf"

	got := sanitizeFilename(long)
	assert.LessOrEqual(t, len(got), 64+len(".pdf"))
	assert.True(t, strings.HasSuffix(got, ".pdf"))
}

func TestDiskStorage_Save(t *testing.T) {
	dir := t.TempDir()
	storage := NewDiskStorage(filepath.Join(dir, "uploads"))

	path, err := storage.Save("rechnung.pdf", []byte("content"))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))
	assert.True(t, strings.HasSuffix(path, "_rechnung.pdf"))
}

func TestDiskStorage_Save_UniquePaths(t *testing.T) {
	storage := NewDiskStorage(t.TempDir())

	first, err := storage.Save("a.pdf", []byte("1"))
	require.NoError(t, err)

	second, err := storage.Save("a.pdf", []byte("2"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
