package cli

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/spf13/pflag"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Config
	}{
		{
			name: "no arguments",
			args: nil,
			want: Config{DefaultPath: DefaultPath},
		},
		{
			name: "path only",
			args: []string{"src/auth.ts"},
			want: Config{Args: []string{"src/auth.ts"}, DefaultPath: DefaultPath},
		},
		{
			name: "path is cleaned",
			args: []string{"./server//auth-facebook.ts"},
			want: Config{Args: []string{"server/auth-facebook.ts"}, DefaultPath: DefaultPath},
		},
		{
			name: "short flags",
			args: []string{"-n", "-c", "src/auth.ts"},
			want: Config{DryRun: true, Copy: true, Args: []string{"src/auth.ts"}, DefaultPath: DefaultPath},
		},
		{
			name: "long flags after path",
			args: []string{"src/auth.ts", "--dry-run", "--no-color"},
			want: Config{DryRun: true, NoColor: true, Args: []string{"src/auth.ts"}, DefaultPath: DefaultPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, *got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]string{"--bogus"}); err == nil {
		t.Error("expected an error for an unknown flag")
	}
	if _, err := Parse([]string{""}); err == nil {
		t.Error("expected an error for an empty path argument")
	}
	if _, err := Parse([]string{"--help"}); !errors.Is(err, pflag.ErrHelp) {
		t.Errorf("Parse(--help) error = %v, want pflag.ErrHelp", err)
	}
}
