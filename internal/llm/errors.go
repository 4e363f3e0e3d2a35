package llm

import "errors"

// ErrorKind classifies every way a completion attempt can fail.
// Backends translate their SDK errors into one of these kinds; no
// SDK-specific error type crosses the Backend boundary.
type ErrorKind int

const (
	// KindCompletion is the catch-all for unexpected failures.
	KindCompletion ErrorKind = iota
	// KindConfiguration means required configuration is missing or invalid.
	KindConfiguration
	// KindAuthentication means the backend rejected the credentials.
	KindAuthentication
	// KindRateLimit means the backend signaled throttling.
	KindRateLimit
	// KindModelUnavailable means the requested model is missing or overloaded.
	KindModelUnavailable
	// KindInvalidRequest means the request itself is malformed.
	KindInvalidRequest
	// KindTimeout means the call exceeded its deadline or was canceled.
	KindTimeout
	// KindParsing means the response could not be parsed or validated
	// as the requested structured output.
	KindParsing
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindAuthentication:
		return "authentication"
	case KindRateLimit:
		return "rate_limit"
	case KindModelUnavailable:
		return "model_unavailable"
	case KindInvalidRequest:
		return "invalid_request"
	case KindTimeout:
		return "timeout"
	case KindParsing:
		return "parsing"
	default:
		return "completion"
	}
}

// Error is the single error type surfaced by this package.
type Error struct {
	Kind     ErrorKind
	Provider string // backend that produced the failure, empty if none
	Message  string
	Attempts int // total backend calls consumed when the error surfaced
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Kind.String() + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the classification from any error. Errors that did not
// originate here count as KindCompletion.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindCompletion
}

// asError normalizes any failure into *Error, attributing it to provider
// when the error carries no attribution of its own.
func asError(err error, provider string) *Error {
	var e *Error
	if errors.As(err, &e) {
		if e.Provider == "" {
			e.Provider = provider
		}
		return e
	}
	return &Error{Kind: KindCompletion, Provider: provider, Message: err.Error(), Err: err}
}

// decision is what the orchestration layer does with a failed attempt.
type decision int

const (
	// retrySame: retry on the same backend until its budget is exhausted,
	// then fail over.
	retrySame decision = iota
	// failover: switch to the fallback backend immediately.
	failover
	// propagate: surface to the caller; the defect is in the request, so
	// the fallback would fail the same way.
	propagate
)

// decisionTable is the single source of truth for retry/failover/propagate
// handling. The adapter retries kinds marked retrySame; the orchestrator
// fails over for retrySame (budget already spent) and failover kinds.
var decisionTable = map[ErrorKind]decision{
	KindConfiguration:    propagate,
	KindInvalidRequest:   propagate,
	KindParsing:          propagate,
	KindAuthentication:   failover,
	KindModelUnavailable: failover,
	KindCompletion:       failover,
	KindRateLimit:        retrySame,
	KindTimeout:          retrySame,
}

func decisionFor(kind ErrorKind) decision {
	if d, ok := decisionTable[kind]; ok {
		return d
	}
	return failover
}
