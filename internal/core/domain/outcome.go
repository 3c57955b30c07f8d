package domain

import (
	"errors"
	"fmt"
)

// MessageNoMatch is the failure message when every planned query came back empty.
const MessageNoMatch = "no matching recipes"

// FailureKind classifies a failed resolution.
type FailureKind string

const (
	FailureNotFound FailureKind = "not_found"
	FailureNetwork  FailureKind = "network_failure"
)

// Failure describes why no recipe was produced. Status is the upstream HTTP
// status for network failures, or zero when the transport itself failed.
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Status  int         `json:"status,omitempty"`
	Message string      `json:"message"`
}

// Outcome is the single result of a resolution: exactly one of Recipe or
// Failure is set.
type Outcome struct {
	Recipe  *Recipe  `json:"recipe,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// Success wraps a resolved recipe.
func Success(r Recipe) Outcome {
	return Outcome{Recipe: &r}
}

// Fail builds a failed outcome.
func Fail(kind FailureKind, status int, message string) Outcome {
	return Outcome{Failure: &Failure{Kind: kind, Status: status, Message: message}}
}

// OK reports whether the outcome carries a recipe.
func (o Outcome) OK() bool {
	return o.Recipe != nil
}

// ErrNotFound is returned by a detail lookup when the upstream no longer
// knows the recipe.
var ErrNotFound = errors.New("domain: recipe not found")

// ErrUpstream matches any UpstreamError via errors.Is.
var ErrUpstream = errors.New("upstream failure")

// ErrUnsupportedQuery is returned by sources asked for a query kind they
// cannot serve.
var ErrUnsupportedQuery = errors.New("unsupported query kind")

// UpstreamError is a non-2xx status, malformed body or transport failure
// reported by the recipe API.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream unavailable: %s", e.Message)
	}
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
