package contextdump

import "fmt"

// ErrorKind is the taxonomy of fatal outcomes from ReadContext. A per-file
// read error is recoverable and never surfaces as a returned error; the
// file is skipped and the error is only logged at debug level, so it has no
// corresponding DumpError constructor.
type ErrorKind int

const (
	KindInvalidRoot ErrorKind = iota
	KindTargetOutsideRoot
	KindRuleReadError
	KindOversize
	KindCancelled
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRoot:
		return "InvalidRoot"
	case KindTargetOutsideRoot:
		return "TargetOutsideRoot"
	case KindRuleReadError:
		return "RuleReadError"
	case KindOversize:
		return "DetailedContextSizeError"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// LargestFile names one entry in an OversizeDetail's top-10 list.
type LargestFile struct {
	RelPath string
	Size    int64
}

// OversizeDetail is the diagnostic payload carried by a KindOversize
// DumpError: the configured limit, the aggregate observed when the budget
// was exceeded, and the top-10 largest contributing files.
type OversizeDetail struct {
	LimitBytes    int64
	ObservedBytes int64
	LargestFiles  []LargestFile
}

// DumpError is the structured error type returned by ReadContext: a typed
// Kind plus an optional wrapped cause, so front-ends can recover the kind
// with errors.As and render it in their own vocabulary instead of
// pattern-matching strings.
type DumpError struct {
	Kind    ErrorKind
	Message string
	Err     error
	Detail  *OversizeDetail
}

func (e *DumpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause to errors.Is / errors.As chains.
func (e *DumpError) Unwrap() error {
	return e.Err
}

// Is reports equality by Kind alone, so callers can write
// errors.Is(err, contextdump.ErrInvalidRoot) against any DumpError of that
// kind regardless of its message or wrapped cause.
func (e *DumpError) Is(target error) bool {
	t, ok := target.(*DumpError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel kind values for errors.Is comparisons.
var (
	ErrInvalidRoot       = &DumpError{Kind: KindInvalidRoot}
	ErrTargetOutsideRoot = &DumpError{Kind: KindTargetOutsideRoot}
	ErrRuleReadError     = &DumpError{Kind: KindRuleReadError}
	ErrOversize          = &DumpError{Kind: KindOversize}
	ErrCancelled         = &DumpError{Kind: KindCancelled}
)

func newInvalidRoot(root string, err error) *DumpError {
	return &DumpError{Kind: KindInvalidRoot, Message: fmt.Sprintf("project root %q", root), Err: err}
}

func newTargetOutsideRoot(target string) *DumpError {
	return &DumpError{Kind: KindTargetOutsideRoot, Message: fmt.Sprintf("target %q resolves outside project root", target)}
}

func newRuleReadError(err error) *DumpError {
	return &DumpError{Kind: KindRuleReadError, Message: "reading override rule file", Err: err}
}

func newOversize(detail *OversizeDetail) *DumpError {
	return &DumpError{
		Kind:    KindOversize,
		Message: fmt.Sprintf("aggregate size %d exceeds limit %d", detail.ObservedBytes, detail.LimitBytes),
		Detail:  detail,
	}
}

func newCancelled() *DumpError {
	return &DumpError{Kind: KindCancelled, Message: "cancelled at directory boundary"}
}
