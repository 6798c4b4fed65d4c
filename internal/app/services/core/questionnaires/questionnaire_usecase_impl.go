package questionnaires

import (
	"context"
	"fmt"
	"time"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/exceptions"
)

type questionnaireUsecase struct {
	QuestionnaireRepository contracts.QuestionnaireRepository
}

func NewQuestionnaireUsecase(questionnaireRepository contracts.QuestionnaireRepository) contracts.QuestionnaireUsecase {
	return &questionnaireUsecase{
		QuestionnaireRepository: questionnaireRepository,
	}
}

func (uc *questionnaireUsecase) CreateQuestionnaire(ctx context.Context, request *requests.CreateQuestionnaire) (*models.Questionnaire, error) {
	questionnaire := buildQuestionnaire(request)
	if err := validateQuestionSet(questionnaire.Questions); err != nil {
		return nil, err
	}

	now := time.Now()
	questionnaire.CreatedAt = now
	questionnaire.UpdatedAt = now

	questionnaireID, err := uc.QuestionnaireRepository.CreateQuestionnaire(ctx, questionnaire)
	if err != nil {
		return nil, err
	}
	questionnaire.ID = questionnaireID
	return questionnaire, nil
}

func (uc *questionnaireUsecase) UpdateQuestionnaire(ctx context.Context, request *requests.UpdateQuestionnaire) (*models.Questionnaire, error) {
	existing, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, request.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}

	questionnaire := buildQuestionnaire(&request.CreateQuestionnaire)
	if err := validateQuestionSet(questionnaire.Questions); err != nil {
		return nil, err
	}

	questionnaire.ID = request.ID
	questionnaire.CreatedAt = existing.CreatedAt
	questionnaire.UpdatedAt = time.Now()

	if err := uc.QuestionnaireRepository.UpdateQuestionnaire(ctx, questionnaire); err != nil {
		return nil, err
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return nil, err
	}
	if questionnaire == nil {
		return nil, exceptions.ErrQuestionnaireNotFound(nil)
	}
	return questionnaire, nil
}

func (uc *questionnaireUsecase) FindQuestionnaires(ctx context.Context, category string, activeOnly bool) ([]models.Questionnaire, error) {
	return uc.QuestionnaireRepository.FindQuestionnaires(ctx, category, activeOnly)
}

func (uc *questionnaireUsecase) DeleteQuestionnaireByID(ctx context.Context, questionnaireID string) error {
	questionnaire, err := uc.QuestionnaireRepository.FindQuestionnaireByID(ctx, questionnaireID)
	if err != nil {
		return err
	}
	if questionnaire == nil {
		return exceptions.ErrQuestionnaireNotFound(nil)
	}
	return uc.QuestionnaireRepository.DeleteQuestionnaireByID(ctx, questionnaireID)
}

func buildQuestionnaire(request *requests.CreateQuestionnaire) *models.Questionnaire {
	return &models.Questionnaire{
		Name:        request.Name,
		Category:    request.Category,
		Description: request.Description,
		Active:      request.Active,
		Questions:   request.Questions,
		Scoring:     request.Scoring,
	}
}

// validateQuestionSet rejects definitions the engine cannot run: duplicate
// question IDs, unknown question types, and conditionals referencing the
// question itself.
func validateQuestionSet(questions []models.Question) error {
	seen := make(map[string]struct{}, len(questions))
	for _, question := range questions {
		if question.ID == "" {
			return exceptions.ErrQuestionnaireDefinitionInvalid(fmt.Errorf("question with empty id"))
		}
		if _, duplicated := seen[question.ID]; duplicated {
			return exceptions.ErrQuestionnaireDefinitionInvalid(fmt.Errorf("duplicate question id %q", question.ID))
		}
		seen[question.ID] = struct{}{}

		switch question.Type {
		case constvars.QuestionTypeSingleChoice,
			constvars.QuestionTypeMultipleChoice,
			constvars.QuestionTypeYesNo,
			constvars.QuestionTypeScale,
			constvars.QuestionTypeText:
		default:
			return exceptions.ErrQuestionnaireDefinitionInvalid(fmt.Errorf("question %q has unknown type %q", question.ID, question.Type))
		}

		if question.Conditional != nil && question.Conditional.QuestionID == question.ID {
			return exceptions.ErrQuestionnaireDefinitionInvalid(fmt.Errorf("question %q depends on itself", question.ID))
		}
	}
	return nil
}
