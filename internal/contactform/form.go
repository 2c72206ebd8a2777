// Package contactform holds the state of one contact form interaction: the
// field values, whether a submission is in flight and the status line shown
// under the form. A Form has a single owner and is not safe for concurrent use.
package contactform

import (
	"context"
	"errors"
	"strings"

	"contact-relay-backend/internal/domain"
	"contact-relay-backend/internal/usecase"
	"contact-relay-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

var (
	ErrSubmitInProgress = errors.New("contactform: a submission is already in progress")
	ErrInvalid          = errors.New("contactform: form has invalid fields")
	errUnsuccessful     = errors.New("contactform: submission returned an unsuccessful result")
)

const SuccessMessage = "Thank you! Your message has been sent. We'll get back to you within 24 hours."

type StatusKind int

const (
	StatusIdle StatusKind = iota
	StatusSuccess
	StatusFailure
)

// Status is the terminal state of the last submission.
type Status struct {
	Kind    StatusKind
	Message string
}

type Form struct {
	Values      domain.SubmissionPayload
	FieldErrors []string
	Submitting  bool
	Status      Status

	validate *validator.Validate
}

func New() *Form {
	return &Form{validate: validation.New()}
}

// Reset restores every field to its default, including the consultation checkbox.
func (f *Form) Reset() {
	f.Values = domain.SubmissionPayload{}
	f.FieldErrors = nil
}

// Validate trims the text fields and returns the messages for invalid ones.
func (f *Form) Validate() []string {
	v := &f.Values
	for _, field := range []*string{&v.Name, &v.Email, &v.Phone, &v.BusinessType, &v.ProjectType, &v.Message} {
		*field = strings.TrimSpace(*field)
	}

	f.FieldErrors = nil
	if err := f.validate.Struct(v); err != nil {
		f.FieldErrors = validation.FormatValidationErrors(err)
	}
	return f.FieldErrors
}

// Submit validates and delivers the form. On success the fields are reset;
// on failure they are kept so the user can retry, and Status carries one
// classified message.
func (f *Form) Submit(ctx context.Context, uc domain.SubmissionUsecase) error {
	if f.Submitting {
		return ErrSubmitInProgress
	}
	if len(f.Validate()) > 0 {
		return ErrInvalid
	}

	f.Submitting = true
	defer func() { f.Submitting = false }()

	payload := f.Values
	result, err := uc.Submit(ctx, &payload)
	if err != nil {
		f.Status = Status{Kind: StatusFailure, Message: usecase.UserMessage(err)}
		return err
	}

	if result == nil || !result.Success {
		f.Status = Status{Kind: StatusFailure, Message: usecase.UnknownErrorMessage}
		return errUnsuccessful
	}

	f.Status = Status{Kind: StatusSuccess, Message: SuccessMessage}
	f.Reset()
	return nil
}
