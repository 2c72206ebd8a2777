package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"contact-relay-backend/internal/domain"
	"contact-relay-backend/pkg/logger"
	"contact-relay-backend/pkg/security"
	"contact-relay-backend/pkg/sheets"
)

// Poster posts a JSON body and fails on anything but a 2xx response.
type Poster interface {
	Post(ctx context.Context, target string, body []byte) (*sheets.Reply, error)
}

// SubmissionConfig holds the two delivery targets, tried in order.
type SubmissionConfig struct {
	DirectURL string // spreadsheet web app URL
	RelayURL  string // same-origin relay, e.g. http://localhost:3000/api/sheets
}

type submissionUsecase struct {
	cfg    SubmissionConfig
	poster Poster
}

// NewSubmissionUsecase creates the submission client
func NewSubmissionUsecase(cfg SubmissionConfig, poster Poster) domain.SubmissionUsecase {
	return &submissionUsecase{
		cfg:    cfg,
		poster: poster,
	}
}

// Submit delivers the payload directly, falling back to the relay once when
// the direct attempt fails. Attempts run strictly one after the other.
func (uc *submissionUsecase) Submit(ctx context.Context, payload *domain.SubmissionPayload) (*domain.SubmissionResult, error) {
	if uc.cfg.DirectURL == "" {
		return nil, &SubmissionError{Category: CategoryConfig, Err: ErrEndpointNotConfigured}
	}

	body, err := json.Marshal(payload.Wire())
	if err != nil {
		return nil, &SubmissionError{Category: CategoryUnknown, Err: fmt.Errorf("encode payload: %w", err)}
	}

	outcome, err := uc.attempt(ctx, "direct", uc.cfg.DirectURL, body)
	if err != nil {
		logger.Log.Warn("Direct submission failed, trying relay", "error", err)

		if uc.cfg.RelayURL == "" {
			return nil, Classify(err)
		}
		outcome, err = uc.attempt(ctx, "relay", uc.cfg.RelayURL, body)
		if err != nil {
			logger.Log.Error("Relay submission failed", "error", err)
			return nil, Classify(err)
		}
	}

	email := security.MaskEmail(payload.Email)
	if outcome.IsLogicalFailure() {
		logger.Log.Warn("Spreadsheet rejected submission", "email", email, "message", outcome.Message)
		return nil, &SubmissionError{Category: CategoryRejected, Detail: outcome.Message}
	}

	logger.Log.Info("Submission recorded", "email", email)
	return &domain.SubmissionResult{
		Success: true,
		Message: outcome.Message,
	}, nil
}

func (uc *submissionUsecase) attempt(ctx context.Context, strategy, target string, body []byte) (*sheets.Outcome, error) {
	reply, err := uc.poster.Post(ctx, target, body)
	if err != nil {
		return nil, err
	}

	outcome, err := sheets.Interpret(reply.Body)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Submission delivered", "strategy", strategy, "status", reply.Status, "result", outcome.Result)
	return outcome, nil
}
