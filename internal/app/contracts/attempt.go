package contracts

import (
	"context"
	"time"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/dto/responses"
)

type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *models.Attempt) (string, error)
	FindAttemptByID(ctx context.Context, attemptID string) (*models.Attempt, error)
	FindAttemptsByPatient(ctx context.Context, patientID string) ([]models.Attempt, error)
	// StartAttempt moves a pending attempt to in_progress. Calling it on an
	// attempt already in_progress is a no-op; on a completed one it reports
	// started=false so the caller can redirect.
	StartAttempt(ctx context.Context, attemptID string, startedAt time.Time) (started bool, err error)
	SaveAnswers(ctx context.Context, attemptID string, answers []models.Answer) error
	// CompleteAttempt persists the result and flips the status to completed
	// in one document update guarded by a status precondition, so a second
	// submit can never overwrite the first. completed=false means the
	// precondition failed (the attempt was already completed).
	CompleteAttempt(ctx context.Context, attemptID string, result *models.Result, completedAt time.Time) (completed bool, err error)
}

// AttemptUsecase is the submission coordinator plus the surrounding attempt
// lifecycle operations.
type AttemptUsecase interface {
	AllocateAttempt(ctx context.Context, request *requests.AllocateAttempt) (*models.Attempt, error)
	FindAttemptsByPatient(ctx context.Context, patientID string) ([]models.Attempt, error)
	FindAttempt(ctx context.Context, attemptID, patientID string) (*models.Attempt, error)
	StartAttempt(ctx context.Context, attemptID, patientID string) (*responses.AttemptStep, error)
	SaveAnswer(ctx context.Context, attemptID, patientID string, request *requests.SaveAnswer) (*responses.AttemptStep, error)
	SubmitAttempt(ctx context.Context, attemptID, patientID string, request *requests.SubmitAttempt) (*responses.AttemptResult, error)
	FindResult(ctx context.Context, attemptID, patientID string) (*responses.AttemptResult, error)
}
