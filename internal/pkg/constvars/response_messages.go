package constvars

const (
	ResponseUnknown = "unknown"

	// Auth
	RegisterSuccessMessage = "account created successfully"
	LoginSuccessMessage    = "successfully signed in"
	LogoutSuccessMessage   = "successfully signed out"

	// Questionnaires
	CreateQuestionnaireSuccessMessage = "questionnaire created successfully"
	UpdateQuestionnaireSuccessMessage = "questionnaire updated successfully"
	FindQuestionnaireSuccessMessage   = "questionnaire retrieved successfully"
	ListQuestionnairesSuccessMessage  = "questionnaires retrieved successfully"
	DeleteQuestionnaireSuccessMessage = "questionnaire deleted successfully"

	// Attempts
	AllocateAttemptSuccessMessage = "questionnaire allocated successfully"
	ListAttemptsSuccessMessage    = "questionnaire attempts retrieved successfully"
	GetAttemptSuccessMessage      = "questionnaire attempt retrieved successfully"
	StartAttemptSuccessMessage    = "questionnaire attempt started"
	SaveAnswerSuccessMessage      = "answer saved"
	SubmitAttemptSuccessMessage   = "questionnaire submitted successfully"
	GetResultSuccessMessage       = "result retrieved successfully"

	// FODMAP checklist
	GetFodmapChecklistSuccessMessage  = "food tolerance checklist retrieved successfully"
	SaveFodmapToleranceSuccessMessage = "food tolerance saved"

	// Appointments
	ListAppointmentsSuccessMessage = "appointments retrieved successfully"

	// Documents
	UploadDocumentSuccessMessage  = "document uploaded successfully"
	ListDocumentsSuccessMessage   = "documents retrieved successfully"
	GetDocumentLinkSuccessMessage = "document link generated successfully"

	// Payments
	InitiatePaymentSuccessMessage = "payment request sent to your phone"

	// Chat
	ChatCompletionSuccessMessage = "assistant replied"
)
