package contracts

import (
	"context"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/dto/requests"
)

type QuestionnaireRepository interface {
	CreateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) (string, error)
	UpdateQuestionnaire(ctx context.Context, questionnaire *models.Questionnaire) error
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	FindQuestionnaires(ctx context.Context, category string, activeOnly bool) ([]models.Questionnaire, error)
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
}

type QuestionnaireUsecase interface {
	CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*models.Questionnaire, error)
	UpdateQuestionnaire(ctx context.Context, request *requests.UpdateQuestionnaire) (*models.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error)
	FindQuestionnaires(ctx context.Context, category string, activeOnly bool) ([]models.Questionnaire, error)
	DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error
}
