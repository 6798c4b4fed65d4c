package questionnaires

import (
	"context"
	"testing"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

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
	if questionnaire := args.Get(0); questionnaire != nil {
		return questionnaire.(*models.Questionnaire), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuestionnaireRepository) FindQuestionnaires(ctx context.Context, category string, activeOnly bool) ([]models.Questionnaire, error) {
	args := m.Called(ctx, category, activeOnly)
	if questionnaires := args.Get(0); questionnaires != nil {
		return questionnaires.([]models.Questionnaire), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockQuestionnaireRepository) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	args := m.Called(ctx, questionnaireID)
	return args.Error(0)
}

func validCreateRequest() *requests.CreateQuestionnaire {
	return &requests.CreateQuestionnaire{
		Name:     "Gut Symptom Screener",
		Category: "digestive",
		Active:   true,
		Questions: []models.Question{
			{ID: "q1", Order: 1, Type: constvars.QuestionTypeYesNo, Prompt: "Bloating after meals?"},
			{ID: "q2", Order: 2, Type: constvars.QuestionTypeText, Prompt: "Anything else?"},
		},
		Scoring: models.ScoringRule{Mode: constvars.ScoringModeSum},
	}
}

func TestCreateQuestionnaire(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid definition is persisted", func(t *testing.T) {
		repo := new(mockQuestionnaireRepository)
		uc := NewQuestionnaireUsecase(repo)

		repo.On("CreateQuestionnaire", ctx, mock.AnythingOfType("*models.Questionnaire")).Return("qn-1", nil)

		questionnaire, err := uc.CreateQuestionnaire(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "qn-1", questionnaire.ID)
		assert.False(t, questionnaire.CreatedAt.IsZero())
	})

	t.Run("Duplicate question id is rejected", func(t *testing.T) {
		repo := new(mockQuestionnaireRepository)
		uc := NewQuestionnaireUsecase(repo)

		request := validCreateRequest()
		request.Questions[1].ID = "q1"

		questionnaire, err := uc.CreateQuestionnaire(ctx, request)

		assert.Nil(t, questionnaire)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		repo.AssertNotCalled(t, "CreateQuestionnaire", mock.Anything, mock.Anything)
	})

	t.Run("Unknown question type is rejected", func(t *testing.T) {
		repo := new(mockQuestionnaireRepository)
		uc := NewQuestionnaireUsecase(repo)

		request := validCreateRequest()
		request.Questions[0].Type = "matrix"

		_, err := uc.CreateQuestionnaire(ctx, request)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Self-referencing conditional is rejected", func(t *testing.T) {
		repo := new(mockQuestionnaireRepository)
		uc := NewQuestionnaireUsecase(repo)

		request := validCreateRequest()
		request.Questions[1].Conditional = &models.Conditional{QuestionID: "q2", Values: []string{"yes"}}

		_, err := uc.CreateQuestionnaire(ctx, request)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestUpdateQuestionnaire(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown questionnaire reports not found", func(t *testing.T) {
		repo := new(mockQuestionnaireRepository)
		uc := NewQuestionnaireUsecase(repo)

		repo.On("FindQuestionnaireByID", ctx, "missing").Return(nil, nil)

		request := &requests.UpdateQuestionnaire{CreateQuestionnaire: *validCreateRequest(), ID: "missing"}
		questionnaire, err := uc.UpdateQuestionnaire(ctx, request)

		assert.Nil(t, questionnaire)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		repo.AssertNotCalled(t, "UpdateQuestionnaire", mock.Anything, mock.Anything)
	})
}
