package domain

import (
	"context"
	"strconv"
)

// SubmissionPayload is a contact form submission as the user filled it in.
type SubmissionPayload struct {
	Name                  string `json:"name" validate:"required"`
	Email                 string `json:"email" validate:"required,contains=@"`
	Phone                 string `json:"phone" validate:"required,valid_phone"`
	BusinessType          string `json:"businessType" validate:"required,business_type"`
	ProjectType           string `json:"projectType" validate:"required,project_type"`
	Message               string `json:"message" validate:"required"`
	ConsultationRequested bool   `json:"consultation"`
}

// WirePayload is the body posted to the spreadsheet script and the relay.
// Consultation travels as the string "true" or "false".
type WirePayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	BusinessType string `json:"businessType"`
	ProjectType  string `json:"projectType"`
	Message      string `json:"message"`
	Consultation string `json:"consultation"`
}

// Wire converts the payload to its outgoing shape.
func (p *SubmissionPayload) Wire() WirePayload {
	return WirePayload{
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		BusinessType: p.BusinessType,
		ProjectType:  p.ProjectType,
		Message:      p.Message,
		Consultation: strconv.FormatBool(p.ConsultationRequested),
	}
}

// Payload parses a wire body back. Unrecognised consultation values read as false.
func (w WirePayload) Payload() SubmissionPayload {
	consultation, _ := strconv.ParseBool(w.Consultation)
	return SubmissionPayload{
		Name:                  w.Name,
		Email:                 w.Email,
		Phone:                 w.Phone,
		BusinessType:          w.BusinessType,
		ProjectType:           w.ProjectType,
		Message:               w.Message,
		ConsultationRequested: consultation,
	}
}

// SubmissionResult is what the caller sees after a delivered submission.
// An empty Message stands for "no message".
type SubmissionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ForwardResult is an upstream response mirrored back by the relay.
type ForwardResult struct {
	Status int
	Body   []byte
	JSON   bool
}

// SubmissionUsecase delivers submissions to the spreadsheet.
type SubmissionUsecase interface {
	// Submit tries the direct endpoint, then the relay, and returns the first
	// delivered result. Failures are *usecase.SubmissionError values.
	Submit(ctx context.Context, payload *SubmissionPayload) (*SubmissionResult, error)
}

// ForwardUsecase posts a raw body to the spreadsheet and returns whatever it answered.
type ForwardUsecase interface {
	Forward(ctx context.Context, body []byte) (*ForwardResult, error)
}
