package attempts

import (
	"context"
	"fmt"
	"time"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/dto/responses"
	"nutrivida-service/internal/pkg/exceptions"
	"nutrivida-service/internal/pkg/flow"

	"go.uber.org/zap"
)

type attemptUsecase struct {
	Log                     *zap.Logger
	AttemptRepository       contracts.AttemptRepository
	QuestionnaireRepository contracts.QuestionnaireRepository
	UserRepository          contracts.UserRepository
	MailerService           contracts.MailerService
}

func NewAttemptUsecase(
	logger *zap.Logger,
	attemptRepository contracts.AttemptRepository,
	questionnaireRepository contracts.QuestionnaireRepository,
	userRepository contracts.UserRepository,
	mailerService contracts.MailerService,
) contracts.AttemptUsecase {
	return &attemptUsecase{
		Log:                     logger,
		AttemptRepository:       attemptRepository,
		QuestionnaireRepository: questionnaireRepository,
		UserRepository:          userRepository,
		MailerService:           mailerService,
	}
}

func (uc *attemptUsecase) AllocateAttempt(ctx context.Context, request *requests.AllocateAttempt) (*models.Attempt, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, request.QuestionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil || !questionnaire.Active {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	patient, err := uc.UserRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrAttemptNotOwned(nil)
	}

	now := time.Now()
	attempt := &models.Attempt{
		QuestionnaireID: request.QuestionnaireID,
		PatientID:       request.PatientID,
		Status:          constvars.AttemptStatusPending,
		Answers:         []models.Answer{},
		StaffNotes:      request.StaffNotes,
		DueDate:         request.DueDate,
		AssignedAt:      now,
	}
	attempt.CreatedAt = now
	attempt.UpdatedAt = now

	attemptID, err := uc.AttemptRepository.CreateAttempt(ctx, attempt)
	if err != nil {
		return nil, err
	}
	attempt.ID = attemptID

	// The notification is best effort: an unreachable broker must never fail
	// the allocation itself.
	uc.notifyAllocation(patient, questionnaire)

	return attempt, nil
}

func (uc *attemptUsecase) notifyAllocation(patient *models.User, questionnaire *models.Questionnaire) {
	payload := &requests.EmailPayload{
		ReceiverEmail: patient.Email,
		Subject:       fmt.Sprintf("New questionnaire: %s", questionnaire.Name),
		Body: fmt.Sprintf(
			"Hello %s,\n\nYour nutritionist assigned you the questionnaire %q. Please sign in to the patient portal to fill it in.\n\nNutriVida",
			patient.FullName, questionnaire.Name,
		),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := uc.MailerService.SendEmail(ctx, payload); err != nil {
		uc.Log.Warn("allocation email not queued",
			zap.String("patient_id", patient.ID),
			zap.Error(err),
		)
	}
}

func (uc *attemptUsecase) FindAttemptsByPatient(ctx context.Context, patientID string) ([]models.Attempt, error) {
	return uc.AttemptRepository.FindAttemptsByPatient(ctx, patientID)
}

func (uc *attemptUsecase) FindAttempt(ctx context.Context, attemptID, patientID string) (*models.Attempt, error) {
	attempt, _, err := uc.loadOwnedAttempt(ctx, attemptID, patientID)
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

func (uc *attemptUsecase) StartAttempt(ctx context.Context, attemptID, patientID string) (*responses.AttemptStep, error) {
	attempt, questionnaire, err := uc.loadOwnedAttempt(ctx, attemptID, patientID)
	if err != nil {
		return nil, err
	}
	if attempt.Status == constvars.AttemptStatusCompleted {
		return nil, exceptions.ErrAttemptAlreadyCompleted(attemptID)
	}

	started, err := uc.AttemptRepository.StartAttempt(ctx, attemptID, time.Now())
	if err != nil {
		return nil, err
	}
	if !started {
		return nil, exceptions.ErrAttemptAlreadyCompleted(attemptID)
	}
	attempt.Status = constvars.AttemptStatusInProgress

	return buildAttemptStep(attempt, questionnaire), nil
}

func (uc *attemptUsecase) SaveAnswer(ctx context.Context, attemptID, patientID string, request *requests.SaveAnswer) (*responses.AttemptStep, error) {
	attempt, questionnaire, err := uc.loadOwnedAttempt(ctx, attemptID, patientID)
	if err != nil {
		return nil, err
	}
	if attempt.Status == constvars.AttemptStatusCompleted {
		return nil, exceptions.ErrAttemptAlreadyCompleted(attemptID)
	}

	question := questionnaire.QuestionByID(request.QuestionID)
	if question == nil {
		return nil, exceptions.ErrQuestionNotVisible(request.QuestionID)
	}

	responseSet := flow.NewResponseSet(attempt.Answers)
	if !questionVisible(questionnaire.Questions, responseSet, request.QuestionID) {
		return nil, exceptions.ErrQuestionNotVisible(request.QuestionID)
	}

	responseSet.SetAnswer(question, request.Values, request.FreeText)
	attempt.Answers = responseSet.Answers(questionnaire.Questions)

	if err := uc.AttemptRepository.SaveAnswers(ctx, attemptID, attempt.Answers); err != nil {
		return nil, err
	}

	return buildAttemptStep(attempt, questionnaire), nil
}

// SubmitAttempt runs the full completion pipeline: fold in any replayed
// answers, recompute the final visible set, refuse when a required visible
// question is unanswered, score over the visible set only, and persist the
// result through the guarded status transition.
func (uc *attemptUsecase) SubmitAttempt(ctx context.Context, attemptID, patientID string, request *requests.SubmitAttempt) (*responses.AttemptResult, error) {
	attempt, questionnaire, err := uc.loadOwnedAttempt(ctx, attemptID, patientID)
	if err != nil {
		return nil, err
	}
	if attempt.Status == constvars.AttemptStatusCompleted {
		return nil, exceptions.ErrAttemptAlreadyCompleted(attemptID)
	}

	responseSet := flow.NewResponseSet(attempt.Answers)
	for _, answer := range request.Answers {
		question := questionnaire.QuestionByID(answer.QuestionID)
		if question == nil {
			return nil, exceptions.ErrQuestionNotVisible(answer.QuestionID)
		}
		responseSet.SetAnswer(question, answer.Values, answer.FreeText)
	}

	visible := flow.VisibleQuestions(questionnaire.Questions, responseSet)
	if missing := flow.FirstUnansweredRequired(visible, responseSet); missing != nil {
		return nil, exceptions.ErrRequiredQuestionUnanswered(missing.ID)
	}

	score, classification := flow.Score(questionnaire.Questions, responseSet, questionnaire.Scoring)
	result := &models.Result{Score: score, Classification: classification}

	if len(request.Answers) > 0 {
		if err := uc.AttemptRepository.SaveAnswers(ctx, attemptID, responseSet.Answers(questionnaire.Questions)); err != nil {
			return nil, err
		}
	}

	completedAt := time.Now()
	completed, err := uc.AttemptRepository.CompleteAttempt(ctx, attemptID, result, completedAt)
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, exceptions.ErrAttemptAlreadyCompleted(attemptID)
	}

	return &responses.AttemptResult{
		AttemptID:      attemptID,
		Score:          score,
		Classification: classification,
		CompletedAt:    &completedAt,
	}, nil
}

func (uc *attemptUsecase) FindResult(ctx context.Context, attemptID, patientID string) (*responses.AttemptResult, error) {
	attempt, err := uc.AttemptRepository.FindAttemptByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		return nil, exceptions.ErrAttemptNotFound(nil)
	}
	if patientID != "" && attempt.PatientID != patientID {
		return nil, exceptions.ErrAttemptNotOwned(nil)
	}
	if attempt.Status != constvars.AttemptStatusCompleted || attempt.Result == nil {
		return nil, exceptions.ErrResultNotFound(nil)
	}

	return &responses.AttemptResult{
		AttemptID:      attemptID,
		Score:          attempt.Result.Score,
		Classification: attempt.Result.Classification,
		CompletedAt:    attempt.CompletedAt,
	}, nil
}

func (uc *attemptUsecase) loadOwnedAttempt(ctx context.Context, attemptID, patientID string) (*models.Attempt, *models.Questionnaire, error) {
	attempt, err := uc.AttemptRepository.FindAttemptByID(ctx, attemptID)
	if err != nil {
		return nil, nil, err
	}
	if attempt == nil {
		return nil, nil, exceptions.ErrAttemptNotFound(nil)
	}
	if attempt.PatientID != patientID {
		return nil, nil, exceptions.ErrAttemptNotOwned(nil)
	}

	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, attempt.QuestionnaireID)
	if err != nil {
		return nil, nil, err
	}
	if questionnaire == nil {
		return nil, nil, exceptions.ErrQuestionnaireNotFound(nil)
	}
	return attempt, questionnaire, nil
}

func questionVisible(questions []models.Question, responseSet flow.ResponseSet, questionID string) bool {
	for _, question := range flow.VisibleQuestions(questions, responseSet) {
		if question.ID == questionID {
			return true
		}
	}
	return false
}

// buildAttemptStep renders the answering state: the visible questions under
// the current answers, the resume position, and submit readiness. The resume
// index points at the first unanswered visible question, or the last step when
// everything is answered.
func buildAttemptStep(attempt *models.Attempt, questionnaire *models.Questionnaire) *responses.AttemptStep {
	responseSet := flow.NewResponseSet(attempt.Answers)
	visible := flow.VisibleQuestions(questionnaire.Questions, responseSet)

	index := 0
	if len(visible) > 0 {
		index = len(visible) - 1
		for i := range visible {
			if !responseSet.Has(visible[i].ID) {
				index = i
				break
			}
		}
	}

	state := flow.ClampIndex(flow.NavState{Index: index}, len(visible))
	return &responses.AttemptStep{
		AttemptID:     attempt.ID,
		Status:        attempt.Status,
		Questions:     visible,
		Answers:       responseSet.Answers(visible),
		CurrentIndex:  state.Index,
		ReadyToSubmit: flow.ReadyToSubmit(state, visible, responseSet),
	}
}
