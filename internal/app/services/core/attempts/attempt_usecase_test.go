package attempts

import (
	"context"
	"testing"
	"time"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAttemptRepository struct {
	mock.Mock
}

func (m *mockAttemptRepository) CreateAttempt(ctx context.Context, attempt *models.Attempt) (string, error) {
	args := m.Called(ctx, attempt)
	return args.String(0), args.Error(1)
}

func (m *mockAttemptRepository) FindAttemptByID(ctx context.Context, attemptID string) (*models.Attempt, error) {
	args := m.Called(ctx, attemptID)
	if attempt, ok := args.Get(0).(*models.Attempt); ok {
		return attempt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAttemptRepository) FindAttemptsByPatient(ctx context.Context, patientID string) ([]models.Attempt, error) {
	args := m.Called(ctx, patientID)
	if attempts, ok := args.Get(0).([]models.Attempt); ok {
		return attempts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAttemptRepository) StartAttempt(ctx context.Context, attemptID string, startedAt time.Time) (bool, error) {
	args := m.Called(ctx, attemptID, startedAt)
	return args.Bool(0), args.Error(1)
}

func (m *mockAttemptRepository) SaveAnswers(ctx context.Context, attemptID string, answers []models.Answer) error {
	args := m.Called(ctx, attemptID, answers)
	return args.Error(0)
}

func (m *mockAttemptRepository) CompleteAttempt(ctx context.Context, attemptID string, result *models.Result, completedAt time.Time) (bool, error) {
	args := m.Called(ctx, attemptID, result, completedAt)
	return args.Bool(0), args.Error(1)
}

type mockQuestionnaireRepository struct {
	mock.Mock
}

func (m *mockQuestionnaireRepository) CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error) {
	args := m.Called(ctx, questionnaire)
	return args.String(0), args.Error(1)
}

func (m *mockQuestionnaireRepository) UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error {
	args := m.Called(ctx, questionnaire)
	return args.Error(0)
}

func (m *mockQuestionnaireRepository) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID)
	if questionnaire, ok := args.Get(0).(*models.Questionnaire); ok {
		return questionnaire, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuestionnaireRepository) FindQuestionnaires(ctx context.Context, category string, activeOnly bool) ([]models.Questionnaire, error) {
	args := m.Called(ctx, category, activeOnly)
	if questionnaires, ok := args.Get(0).([]models.Questionnaire); ok {
		return questionnaires, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuestionnaireRepository) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	args := m.Called(ctx, questionnaireID)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMailerService struct {
	mock.Mock
}

func (m *mockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func points(p int) *int { return &p }

// screenerQuestionnaire is the shared fixture: q2 only shows after answering
// q1 with "yes", q3 is an always-visible scale.
func screenerQuestionnaire() *models.Questionnaire {
	return &models.Questionnaire{
		ID:       "qn-1",
		Name:     "Gut Symptom Screener",
		Category: "digestive",
		Active:   true,
		Questions: []models.Question{
			{
				ID: "q1", Order: 1, Type: constvars.QuestionTypeYesNo, Required: true,
				Prompt: "Do you experience bloating after meals?",
				Options: []models.Option{
					{Value: "yes", Label: "Yes", Points: points(2)},
					{Value: "no", Label: "No", Points: points(1)},
				},
			},
			{
				ID: "q2", Order: 2, Type: constvars.QuestionTypeSingleChoice, Required: true,
				Prompt:      "How severe is the bloating?",
				Conditional: &models.Conditional{QuestionID: "q1", Values: []string{"yes"}},
				Options: []models.Option{
					{Value: "mild", Label: "Mild", Points: points(1)},
					{Value: "severe", Label: "Severe", Points: points(3)},
				},
			},
			{
				ID: "q3", Order: 3, Type: constvars.QuestionTypeScale, Required: true,
				Prompt: "How many symptomatic days last week?",
				Options: []models.Option{
					{Value: "0", Label: "0", Points: points(0)},
					{Value: "2", Label: "2", Points: points(2)},
					{Value: "4", Label: "4 or more", Points: points(4)},
				},
			},
		},
		Scoring: models.ScoringRule{
			Mode: constvars.ScoringModeSum,
			Bands: []models.ScoreBand{
				{Min: 0, Max: 3, Label: "low", Title: "Low symptom load"},
				{Min: 4, Max: 7, Label: "moderate", Title: "Moderate symptom load"},
				{Min: 8, Max: 99, Label: "high", Title: "High symptom load"},
			},
		},
	}
}

func inProgressAttempt(answers []models.Answer) *models.Attempt {
	return &models.Attempt{
		ID:              "att-1",
		QuestionnaireID: "qn-1",
		PatientID:       "patient-1",
		Status:          constvars.AttemptStatusInProgress,
		Answers:         answers,
	}
}

func newTestUsecase(attemptRepo *mockAttemptRepository, questionnaireRepo *mockQuestionnaireRepository) (*mockUserRepository, *mockMailerService, *attemptUsecase) {
	userRepo := new(mockUserRepository)
	mailer := new(mockMailerService)
	uc := NewAttemptUsecase(zap.NewNop(), attemptRepo, questionnaireRepo, userRepo, mailer).(*attemptUsecase)
	return userRepo, mailer, uc
}

func TestSubmitAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("Hidden conditional question does not block or count", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		// q1=no hides q2, so only q1 (1) and q3 (4) score.
		attempt := inProgressAttempt([]models.Answer{
			{QuestionID: "q1", Values: []string{"no"}, Points: 1},
			{QuestionID: "q3", Values: []string{"4"}, Points: 4},
		})
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)
		attemptRepo.On("CompleteAttempt", ctx, "att-1", mock.AnythingOfType("*models.Result"), mock.AnythingOfType("time.Time")).Return(true, nil)

		result, err := uc.SubmitAttempt(ctx, "att-1", "patient-1", &requests.SubmitAttempt{})

		assert.NoError(t, err)
		assert.Equal(t, 5, result.Score, "hidden q2 must not contribute to the score")
		assert.NotNil(t, result.Classification)
		assert.Equal(t, "moderate", result.Classification.Label)
		attemptRepo.AssertNotCalled(t, "SaveAnswers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Visible required question unanswered rejects submission", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		// q1=yes reveals q2, which stays unanswered.
		attempt := inProgressAttempt([]models.Answer{
			{QuestionID: "q1", Values: []string{"yes"}, Points: 2},
			{QuestionID: "q3", Values: []string{"2"}, Points: 2},
		})
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)

		result, err := uc.SubmitAttempt(ctx, "att-1", "patient-1", &requests.SubmitAttempt{})

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
		assert.Contains(t, customErr.ClientMessage, "q2", "the error must name the offending question")
		attemptRepo.AssertNotCalled(t, "CompleteAttempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Completed attempt rejects resubmission without writes", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attempt := inProgressAttempt(nil)
		attempt.Status = constvars.AttemptStatusCompleted
		attempt.Result = &models.Result{Score: 5}
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)

		result, err := uc.SubmitAttempt(ctx, "att-1", "patient-1", &requests.SubmitAttempt{
			Answers: []requests.SaveAnswer{{QuestionID: "q1", Values: []string{"yes"}}},
		})

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.KindAlreadyCompleted, customErr.Kind)
		assert.Equal(t, "/attempts/att-1/result", customErr.RedirectTo)
		attemptRepo.AssertNotCalled(t, "SaveAnswers", mock.Anything, mock.Anything, mock.Anything)
		attemptRepo.AssertNotCalled(t, "CompleteAttempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Lost race on the status precondition maps to already completed", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attempt := inProgressAttempt([]models.Answer{
			{QuestionID: "q1", Values: []string{"no"}, Points: 1},
			{QuestionID: "q3", Values: []string{"0"}, Points: 0},
		})
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)
		attemptRepo.On("CompleteAttempt", ctx, "att-1", mock.AnythingOfType("*models.Result"), mock.AnythingOfType("time.Time")).Return(false, nil)

		result, err := uc.SubmitAttempt(ctx, "att-1", "patient-1", &requests.SubmitAttempt{})

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.KindAlreadyCompleted, customErr.Kind)
	})

	t.Run("Replayed answers are folded in and persisted before completion", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attempt := inProgressAttempt(nil)
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)
		attemptRepo.On("SaveAnswers", ctx, "att-1", mock.AnythingOfType("[]models.Answer")).Return(nil)
		attemptRepo.On("CompleteAttempt", ctx, "att-1", mock.AnythingOfType("*models.Result"), mock.AnythingOfType("time.Time")).Return(true, nil)

		result, err := uc.SubmitAttempt(ctx, "att-1", "patient-1", &requests.SubmitAttempt{
			Answers: []requests.SaveAnswer{
				{QuestionID: "q1", Values: []string{"yes"}},
				{QuestionID: "q2", Values: []string{"severe"}},
				{QuestionID: "q3", Values: []string{"4"}},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 9, result.Score)
		assert.Equal(t, "high", result.Classification.Label)
		attemptRepo.AssertCalled(t, "SaveAnswers", ctx, "att-1", mock.AnythingOfType("[]models.Answer"))
	})

	t.Run("Attempt of another patient is refused", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(inProgressAttempt(nil), nil)

		result, err := uc.SubmitAttempt(ctx, "att-1", "someone-else", &requests.SubmitAttempt{})

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestSaveAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("Answer to a hidden question is rejected", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		// q1=no keeps q2 hidden.
		attempt := inProgressAttempt([]models.Answer{
			{QuestionID: "q1", Values: []string{"no"}, Points: 1},
		})
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)

		step, err := uc.SaveAnswer(ctx, "att-1", "patient-1", &requests.SaveAnswer{
			QuestionID: "q2", Values: []string{"mild"},
		})

		assert.Nil(t, step)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.KindValidation, customErr.Kind)
		attemptRepo.AssertNotCalled(t, "SaveAnswers", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Changing the trigger answer reveals the dependent question", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attempt := inProgressAttempt([]models.Answer{
			{QuestionID: "q1", Values: []string{"no"}, Points: 1},
		})
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)
		attemptRepo.On("SaveAnswers", ctx, "att-1", mock.AnythingOfType("[]models.Answer")).Return(nil)

		step, err := uc.SaveAnswer(ctx, "att-1", "patient-1", &requests.SaveAnswer{
			QuestionID: "q1", Values: []string{"yes"},
		})

		assert.NoError(t, err)
		visibleIDs := make([]string, 0, len(step.Questions))
		for _, question := range step.Questions {
			visibleIDs = append(visibleIDs, question.ID)
		}
		assert.Equal(t, []string{"q1", "q2", "q3"}, visibleIDs)
		assert.False(t, step.ReadyToSubmit)
	})

	t.Run("Completed attempt refuses new answers", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attempt := inProgressAttempt(nil)
		attempt.Status = constvars.AttemptStatusCompleted
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)

		step, err := uc.SaveAnswer(ctx, "att-1", "patient-1", &requests.SaveAnswer{
			QuestionID: "q1", Values: []string{"yes"},
		})

		assert.Nil(t, step)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, exceptions.KindAlreadyCompleted, customErr.Kind)
	})
}

func TestStartAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending attempt starts and renders the first step", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attempt := inProgressAttempt(nil)
		attempt.Status = constvars.AttemptStatusPending
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)
		attemptRepo.On("StartAttempt", ctx, "att-1", mock.AnythingOfType("time.Time")).Return(true, nil)

		step, err := uc.StartAttempt(ctx, "att-1", "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.AttemptStatusInProgress, step.Status)
		assert.Equal(t, 0, step.CurrentIndex)
		// q2 is hidden while q1 is unanswered.
		assert.Len(t, step.Questions, 2)
	})

	t.Run("Completed attempt redirects to the result", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attempt := inProgressAttempt(nil)
		attempt.Status = constvars.AttemptStatusCompleted
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)

		step, err := uc.StartAttempt(ctx, "att-1", "patient-1")

		assert.Nil(t, step)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, "/attempts/att-1/result", customErr.RedirectTo)
		attemptRepo.AssertNotCalled(t, "StartAttempt", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAllocateAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("Allocation creates a pending attempt and queues the email", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		userRepo, mailer, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)
		userRepo.On("FindByID", ctx, "patient-1").Return(&models.User{ID: "patient-1", Email: "ana@example.pt", FullName: "Ana"}, nil)
		attemptRepo.On("CreateAttempt", ctx, mock.AnythingOfType("*models.Attempt")).Return("att-9", nil)
		mailer.On("SendEmail", mock.Anything, mock.AnythingOfType("*requests.EmailPayload")).Return(nil)

		attempt, err := uc.AllocateAttempt(ctx, &requests.AllocateAttempt{
			QuestionnaireID: "qn-1",
			PatientID:       "patient-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "att-9", attempt.ID)
		assert.Equal(t, constvars.AttemptStatusPending, attempt.Status)
		mailer.AssertCalled(t, "SendEmail", mock.Anything, mock.AnythingOfType("*requests.EmailPayload"))
	})

	t.Run("Email failure does not fail the allocation", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		userRepo, mailer, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)
		userRepo.On("FindByID", ctx, "patient-1").Return(&models.User{ID: "patient-1", Email: "ana@example.pt"}, nil)
		attemptRepo.On("CreateAttempt", ctx, mock.AnythingOfType("*models.Attempt")).Return("att-9", nil)
		mailer.On("SendEmail", mock.Anything, mock.Anything).Return(exceptions.ErrMailerPublish(nil))

		attempt, err := uc.AllocateAttempt(ctx, &requests.AllocateAttempt{
			QuestionnaireID: "qn-1",
			PatientID:       "patient-1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, attempt)
	})

	t.Run("Inactive questionnaire cannot be allocated", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		inactive := screenerQuestionnaire()
		inactive.Active = false
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(inactive, nil)

		attempt, err := uc.AllocateAttempt(ctx, &requests.AllocateAttempt{
			QuestionnaireID: "qn-1",
			PatientID:       "patient-1",
		})

		assert.Nil(t, attempt)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		attemptRepo.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
	})
}

func TestFindResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed attempt returns its persisted result", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		completedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		attempt := inProgressAttempt(nil)
		attempt.Status = constvars.AttemptStatusCompleted
		attempt.CompletedAt = &completedAt
		attempt.Result = &models.Result{Score: 5, Classification: &models.ScoreBand{Label: "moderate"}}
		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(attempt, nil)

		result, err := uc.FindResult(ctx, "att-1", "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, 5, result.Score)
		assert.Equal(t, "moderate", result.Classification.Label)
		assert.Equal(t, &completedAt, result.CompletedAt)
	})

	t.Run("Attempt without a result reports not found", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(inProgressAttempt(nil), nil)

		result, err := uc.FindResult(ctx, "att-1", "patient-1")

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestFindAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner retrieves the attempt", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(inProgressAttempt(nil), nil)
		questionnaireRepo.On("FindQuestionnaireByID", ctx, "qn-1").Return(screenerQuestionnaire(), nil)

		attempt, err := uc.FindAttempt(ctx, "att-1", "patient-1")

		assert.NoError(t, err)
		assert.Equal(t, "att-1", attempt.ID)
		assert.Equal(t, constvars.AttemptStatusInProgress, attempt.Status)
	})

	t.Run("Another patient is refused", func(t *testing.T) {
		attemptRepo := new(mockAttemptRepository)
		questionnaireRepo := new(mockQuestionnaireRepository)
		_, _, uc := newTestUsecase(attemptRepo, questionnaireRepo)

		attemptRepo.On("FindAttemptByID", ctx, "att-1").Return(inProgressAttempt(nil), nil)

		attempt, err := uc.FindAttempt(ctx, "att-1", "patient-2")

		assert.Nil(t, attempt)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}
