package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/sheets"
)

// Sender posts a body and returns the response whatever its status.
type Sender interface {
	Send(ctx context.Context, target string, body []byte) (*sheets.Reply, error)
}

type forwardUsecase struct {
	target string
	sender Sender
}

// NewForwardUsecase creates the usecase behind the direct test endpoint
func NewForwardUsecase(target string, sender Sender) domain.ForwardUsecase {
	return &forwardUsecase{
		target: target,
		sender: sender,
	}
}

// Forward posts body to the spreadsheet as is and mirrors its answer.
func (uc *forwardUsecase) Forward(ctx context.Context, body []byte) (*domain.ForwardResult, error) {
	reply, err := uc.sender.Send(ctx, uc.target, body)
	if err != nil {
		return nil, fmt.Errorf("forward to spreadsheet: %w", err)
	}

	return &domain.ForwardResult{
		Status: reply.Status,
		Body:   reply.Body,
		JSON:   json.Valid(reply.Body),
	}, nil
}
