package constvars

const (
	URLParamQuestionnaireID = "questionnaire_id"
	URLParamAttemptID       = "attempt_id"
	URLParamAppointmentID   = "appointment_id"
	URLParamDocumentName    = "document_name"
)

const (
	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamCategory = "category"
	URLQueryParamActive   = "active"
)
