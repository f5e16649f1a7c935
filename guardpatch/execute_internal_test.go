package guardpatch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sokinpui/guardpatch/cli"
	"github.com/sokinpui/guardpatch/internal/fs"
	"github.com/sokinpui/guardpatch/internal/ui"
)

func TestExecuteWriteFailure(t *testing.T) {
	const input = "export function setupFacebookAuth(app: Express): void {\n  passport.use(new FacebookStrategy({}));\n}\n"
	path := filepath.Join(t.TempDir(), "auth-facebook.ts")
	if err := os.WriteFile(path, []byte(input), 0644); err != nil {
		t.Fatalf("Failed to write target file: %v", err)
	}

	errDiskFull := errors.New("no space left on device")
	writeFile = func(string, string) error { return errDiskFull }
	t.Cleanup(func() { writeFile = fs.WriteFileAtomic })

	var out, errOut bytes.Buffer
	ui.SetOutput(&out, &errOut)
	t.Cleanup(func() { ui.SetOutput(os.Stdout, os.Stderr) })

	app, err := New(&cli.Config{Args: []string{path}})
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	result, err := app.Execute()
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("Execute() error = %v, want %v", err, errDiskFull)
	}
	if result.Written {
		t.Error("failed write reported as written")
	}
	if out.Len() != 0 {
		t.Errorf("status printed after a failed write: %q", out.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read target file: %v", err)
	}
	if string(data) != input {
		t.Errorf("target changed after a failed write: %q", data)
	}
}
