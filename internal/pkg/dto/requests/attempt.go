package requests

import "time"

type AllocateAttempt struct {
	QuestionnaireID string     `json:"questionnaire_id" validate:"required"`
	PatientID       string     `json:"patient_id" validate:"required"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	StaffNotes      string     `json:"staff_notes,omitempty" validate:"max=2000"`
}

type SaveAnswer struct {
	QuestionID string   `json:"question_id" validate:"required"`
	Values     []string `json:"values"`
	FreeText   string   `json:"free_text,omitempty" validate:"max=2000"`
}

type SubmitAttempt struct {
	// Answers may accompany the submit call so a respondent who lost
	// connectivity mid-flow can replay their full state in one request.
	Answers []SaveAnswer `json:"answers,omitempty" validate:"dive"`
}
