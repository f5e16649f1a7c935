package guardpatch

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/sokinpui/guardpatch/cli"
	"github.com/sokinpui/guardpatch/internal/fs"
	"github.com/sokinpui/guardpatch/internal/patcher"
	"github.com/sokinpui/guardpatch/internal/ui"
	"github.com/sokinpui/guardpatch/model"
)

// writeFile persists patched content.
var writeFile = fs.WriteFileAtomic

// App orchestrates a single patch run.
type App struct {
	cfg *cli.Config
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

func (e *DetailedError) Unwrap() error {
	return e.Err
}

// New creates a new App instance.
func New(cfg *cli.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if cfg.DefaultPath == "" && len(cfg.Args) == 0 {
		return nil, errors.New("no target path: set a default path or pass one as an argument")
	}
	if cfg.NoColor {
		ui.DisableColor()
	}
	return &App{cfg: cfg}, nil
}

// Execute patches the target file and reports the outcome. A NoMatch
// outcome is not an error; callers map Result.Outcome to an exit status.
func (a *App) Execute() (result model.Result, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	path := patcher.ResolvePath(a.cfg.Args, a.cfg.DefaultPath)
	file, err := fs.ReadFile(path)
	if err != nil {
		return model.Result{Path: path}, err
	}

	outcome, patched := patcher.Apply(file.Text)
	result = model.Result{
		Outcome:  outcome,
		Path:     file.Path,
		Original: file.Text,
		Patched:  patched,
	}

	if outcome.Changed() {
		if a.cfg.DryRun {
			if err := ui.PrintDiff(file.Path, file.Text, patched); err != nil {
				return result, fmt.Errorf("failed to print diff: %w", err)
			}
		} else {
			if err := writeFile(file.Path, patched); err != nil {
				return result, err
			}
			result.Written = true
		}
	}

	a.report(result)
	return result, nil
}

func (a *App) report(result model.Result) {
	switch result.Outcome {
	case model.AlreadyPatched:
		ui.Info("%s", result.Outcome.Message())
	case model.AppliedPrimary, model.AppliedAlt:
		ui.Success("%s", result.Outcome.Message())
	default:
		ui.PrintRemediation(patcher.FuncName, patcher.Remediation())
		if a.cfg.Copy {
			if err := ui.CopySnippet(patcher.Remediation()); err != nil {
				ui.Warning("Could not copy the fix to the clipboard: %v", err)
			} else {
				ui.Info("The fix has been copied to the clipboard.")
			}
		}
	}
}
