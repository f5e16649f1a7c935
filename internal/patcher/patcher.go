package patcher

import (
	"strings"

	"github.com/sokinpui/guardpatch/model"
)

// FuncName is the function the guard is inserted into.
const FuncName = "setupFacebookAuth"

const (
	signature = "export function " + FuncName + "(app: Express): void {"

	guardBlock = "  if (!FB_APP_ID || !FB_APP_SECRET) {\n" +
		"    return; // Skip Facebook auth when credentials not configured (e.g. local dev)\n" +
		"  }\n" +
		"\n"

	// Both must be present for a file to count as patched. The return alone
	// could be any other early exit.
	patchedSnippet = "if (!FB_APP_ID || !FB_APP_SECRET) {\n    return;"
	patchedMarker  = "Skip Facebook auth"

	remediation = "  if (!FB_APP_ID || !FB_APP_SECRET) {\n" +
		"    return;\n" +
		"  }"
)

// Pattern is an exact insertion point and the text that replaces it.
type Pattern struct {
	Name    string
	Old     string
	New     string
	Outcome model.Outcome
}

// Patterns are tried in order; the first match wins.
var Patterns = []Pattern{
	newPattern("comment", "  // Configure Facebook Passport Strategy", model.AppliedPrimary),
	newPattern("passport", "  passport.use(", model.AppliedAlt),
}

// newPattern builds a pattern for the signature followed by firstLine.
func newPattern(name, firstLine string, outcome model.Outcome) Pattern {
	return Pattern{
		Name:    name,
		Old:     signature + "\n" + firstLine,
		New:     signature + "\n" + guardBlock + firstLine,
		Outcome: outcome,
	}
}

// ResolvePath returns the first argument, or defaultPath when there is none.
func ResolvePath(args []string, defaultPath string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultPath
}

// IsAlreadyPatched reports whether content already carries the guard.
func IsAlreadyPatched(content string) bool {
	return strings.Contains(content, patchedSnippet) && strings.Contains(content, patchedMarker)
}

// TryApply replaces the first occurrence of p.Old with p.New.
func TryApply(content string, p Pattern) (bool, string) {
	if !strings.Contains(content, p.Old) {
		return false, content
	}
	return true, strings.Replace(content, p.Old, p.New, 1)
}

// Apply runs the already-patched check and then each pattern in order.
// The returned content equals the input unless the outcome is Changed.
func Apply(content string) (model.Outcome, string) {
	if IsAlreadyPatched(content) {
		return model.AlreadyPatched, content
	}
	for _, p := range Patterns {
		if ok, patched := TryApply(content, p); ok {
			return p.Outcome, patched
		}
	}
	return model.NoMatch, content
}

// Remediation is the snippet users paste by hand when no pattern matches.
func Remediation() string {
	return remediation
}
