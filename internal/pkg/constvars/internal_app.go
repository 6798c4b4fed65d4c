package constvars

type ContextKey string

const (
	ContextSessionID   ContextKey = "sessionID"
	ContextSessionData ContextKey = "sessionData"
)

const (
	MongoCollectionUsers          = "users"
	MongoCollectionQuestionnaires = "questionnaires"
	MongoCollectionAttempts       = "patient_questionnaires"
	MongoCollectionAppointments   = "appointments"
	MongoCollectionFodmapEntries  = "fodmap_entries"
	MongoCollectionPayments       = "payment_requests"
)

const (
	RoleTypePatient = "patient"
	RoleTypeStaff   = "staff"
)

const (
	AttemptStatusPending    = "pending"
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"
)

const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeYesNo          = "yes_no"
	QuestionTypeScale          = "scale"
	QuestionTypeText           = "text"
)

const (
	ScoringModeSum       = "sum"
	ScoringModeThreshold = "threshold"

	// Default token counted in threshold-mode questionnaires.
	ThresholdDefaultCountedValue = "yes"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)
