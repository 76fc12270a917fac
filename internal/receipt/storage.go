package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DiskStorage writes uploaded documents to a local directory. Filenames are
// sanitized and prefixed with a timestamp so uploads never collide.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) *DiskStorage {
	return &DiskStorage{dir: dir}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename strips characters that are unsafe in paths and truncates
// overly long names from phone cameras and scan apps.
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)

	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "_")

	const maxLen = 64
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	if base == "" {
		base = "beleg"
	}

	return base + ext
}

func (s *DiskStorage) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), sanitizeFilename(filename))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload: %w", err)
	}

	return path, nil
}
