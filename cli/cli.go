package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
)

// DefaultPath is the target file when no path argument is given.
const DefaultPath = "server/auth-facebook.ts"

// Config holds all the command-line flag values.
type Config struct {
	DryRun      bool
	Copy        bool
	NoColor     bool
	Args        []string
	DefaultPath string
}

// Parse defines and parses command-line flags using pflag.
func Parse(args []string) (*Config, error) {
	cfg := &Config{DefaultPath: DefaultPath}

	flags := pflag.NewFlagSet("guardpatch", pflag.ContinueOnError)
	flags.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print the change as a diff instead of writing the file.")
	flags.BoolVarP(&cfg.Copy, "copy", "c", false, "Copy the manual fix to the clipboard when no insertion point is found.")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")

	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: guardpatch [flags] [path]")
		fmt.Fprintln(os.Stderr, "\nAdd an early return to setupFacebookAuth when Facebook credentials are missing.")
		fmt.Fprintf(os.Stderr, "\nDefault path: %s\n", DefaultPath)
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	cfg.Args = flags.Args()

	// Validate the target path
	if len(cfg.Args) > 0 && cfg.Args[0] == "" {
		err := fmt.Errorf("error: path argument must not be empty")
		// Reported like pflag's own parse errors.
		fmt.Fprintln(os.Stderr, err)
		flags.Usage()
		return nil, err
	}

	// Normalize the target path
	if len(cfg.Args) > 0 {
		cfg.Args[0] = filepath.Clean(cfg.Args[0])
	}

	return cfg, nil
}
