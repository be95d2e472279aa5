// Package diagnostics holds the recoverable conditions that the
// projection engine reports instead of failing.
package diagnostics

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Kind classifies a diagnostic.
type Kind string

const (
	MissingCostWarning   Kind = "MissingCostWarning"
	MissingSavingsPolicy Kind = "MissingSavingsPolicy"
	BudgetOverspent      Kind = "BudgetOverspent"
	ProfessionNotFound   Kind = "ProfessionNotFound"
	MalformedProfile     Kind = "MalformedProfile"
	MissingTwin          Kind = "MissingTwin"
	IneligibleChoice     Kind = "IneligibleChoice"
)

// Diagnostic is a recoverable condition, reported to the caller
// alongside the (defaulted) result.
type Diagnostic struct {
	Kind    Kind   `json:"kind" example:"ProfessionNotFound"`
	Subject string `json:"subject" example:"Alex"`           // What the diagnostic is about, e.g. a participant or a category
	Message string `json:"message" example:"no profile for"` // Human readable explanation
}

// New creates a diagnostic with a formatted message.
func New(kind Kind, subject, format string, args ...any) Diagnostic {
	return Diagnostic{
		Kind:    kind,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s]: %s", d.Kind, d.Subject, d.Message)
}

// Log writes all diagnostics as warnings.
func Log(l zerolog.Logger, diags []Diagnostic) {
	for _, d := range diags {
		l.Warn().
			Str("kind", string(d.Kind)).
			Str("subject", d.Subject).
			Msg(d.Message)
	}
}

// Count returns how many diagnostics of a kind are in the list.
func Count(diags []Diagnostic, kind Kind) int {
	n := 0
	for _, d := range diags {
		if d.Kind == kind {
			n++
		}
	}
	return n
}
