package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/creachadair/atomicfile"

	"github.com/sokinpui/guardpatch/model"
)

// ReadFile reads the whole target file into memory.
func ReadFile(path string) (model.FileContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FileContent{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return model.FileContent{Path: path, Text: string(data)}, nil
}

// WriteFileAtomic replaces the file at path with text via a temporary file
// in the same directory and a rename, keeping the existing file mode.
// Symlinks are followed so the link's target is rewritten, not the link.
// The target must exist; it is either fully old or fully new afterwards.
func WriteFileAtomic(path, text string) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", target, err)
	}

	f, err := atomicfile.New(target, st.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", target, err)
	}
	defer f.Cancel()

	if _, err := io.WriteString(f, text); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	return nil
}
