package model

// FileContent is the full text of the target file as read from disk.
type FileContent struct {
	Path string
	Text string
}

// Outcome is the categorical result of a single run.
type Outcome int

const (
	NoMatch Outcome = iota
	AlreadyPatched
	AppliedPrimary
	AppliedAlt
)

func (o Outcome) String() string {
	switch o {
	case AlreadyPatched:
		return "already-patched"
	case AppliedPrimary:
		return "applied"
	case AppliedAlt:
		return "applied-alt"
	default:
		return "no-match"
	}
}

// Message is the status line printed for the outcome. NoMatch has none;
// its report is the remediation text.
func (o Outcome) Message() string {
	switch o {
	case AlreadyPatched:
		return "Already has early return"
	case AppliedPrimary:
		return "Added early return"
	case AppliedAlt:
		return "Added early return (alt pattern)"
	default:
		return ""
	}
}

// ExitCode maps the outcome to a process exit status.
func (o Outcome) ExitCode() int {
	if o == NoMatch {
		return 1
	}
	return 0
}

// Changed reports whether the outcome carries new content to persist.
func (o Outcome) Changed() bool {
	return o == AppliedPrimary || o == AppliedAlt
}

// Result holds everything a run produced, for display and inspection.
type Result struct {
	Outcome  Outcome
	Path     string
	Original string
	Patched  string
	Written  bool // false for dry runs and unchanged outcomes
}
