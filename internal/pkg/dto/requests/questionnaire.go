package requests

import "nutrivida-service/internal/app/models"

type CreateQuestionnaire struct {
	Name        string             `json:"name" validate:"required,min=2,max=200"`
	Category    string             `json:"category" validate:"required"`
	Description string             `json:"description,omitempty"`
	Active      bool               `json:"active"`
	Questions   []models.Question  `json:"questions" validate:"required,min=1"`
	Scoring     models.ScoringRule `json:"scoring" validate:"required"`
}

type UpdateQuestionnaire struct {
	CreateQuestionnaire
	ID string `json:"-"`
}
