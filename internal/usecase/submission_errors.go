package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"contact-relay-backend/pkg/sheets"
)

// Category groups submission failures by what the user can do about them.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryConfig
	CategoryNetwork
	CategoryServer
	CategoryRejected
)

func (c Category) String() string {
	switch c {
	case CategoryConfig:
		return "config"
	case CategoryNetwork:
		return "network"
	case CategoryServer:
		return "server"
	case CategoryRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

var ErrEndpointNotConfigured = errors.New("submission: spreadsheet endpoint URL is not configured")

// SubmissionError is the terminal error of a submission.
type SubmissionError struct {
	Category Category
	Detail   string // collaborator message for CategoryRejected
	Err      error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("submission failed (%s): %v", e.Category, e.Err)
	}
	return fmt.Sprintf("submission failed (%s): %s", e.Category, e.Detail)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// UserMessage is the text rendered under the form.
func (e *SubmissionError) UserMessage() string {
	switch e.Category {
	case CategoryConfig:
		return "The contact form is not configured yet. Please reach us by email or phone instead."
	case CategoryNetwork:
		return "Network error: we could not reach the form service. Please check your connection and try again."
	case CategoryServer:
		return "Server error: our form service is temporarily unavailable. Please try again in a few minutes."
	case CategoryRejected:
		if e.Detail == "" {
			return "Your submission was rejected. Please check your details and try again."
		}
		return "Your submission was rejected: " + e.Detail
	default:
		return UnknownErrorMessage
	}
}

const UnknownErrorMessage = "An unknown error occurred while sending your message. Please try again."

// Classify maps any error from a delivery attempt onto a SubmissionError.
func Classify(err error) *SubmissionError {
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return subErr
	}

	var tErr *sheets.TransportError
	if !errors.As(err, &tErr) {
		return &SubmissionError{Category: CategoryUnknown, Err: err}
	}

	switch {
	case tErr.Kind == sheets.KindNetwork:
		return &SubmissionError{Category: CategoryNetwork, Err: err}
	case tErr.Kind == sheets.KindHTTP && tErr.Status >= http.StatusInternalServerError:
		return &SubmissionError{Category: CategoryServer, Err: err}
	case tErr.Kind == sheets.KindHTTP && tErr.Status >= http.StatusBadRequest:
		return &SubmissionError{Category: CategoryRejected, Detail: http.StatusText(tErr.Status), Err: err}
	default:
		return &SubmissionError{Category: CategoryUnknown, Err: err}
	}
}

// UserMessage returns the form text for any error; nil yields "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return Classify(err).UserMessage()
}
