package responses

import (
	"time"

	"nutrivida-service/internal/app/models"
)

type Auth struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// AttemptStep is the renderable answering state for one attempt: the visible
// questions, the clamped current index, and submit readiness. The client only
// shows it and dispatches events back.
type AttemptStep struct {
	AttemptID     string            `json:"attempt_id"`
	Status        string            `json:"status"`
	Questions     []models.Question `json:"questions"`
	Answers       []models.Answer   `json:"answers"`
	CurrentIndex  int               `json:"current_index"`
	ReadyToSubmit bool              `json:"ready_to_submit"`
}

type AttemptResult struct {
	AttemptID      string            `json:"attempt_id"`
	Score          int               `json:"score"`
	Classification *models.ScoreBand `json:"classification,omitempty"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
}

type DocumentLink struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

type MbwayPayment struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}
