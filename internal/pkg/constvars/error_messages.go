package constvars

// Client-facing messages. Kept generic on purpose so internal detail never
// leaks outside development builds.
const (
	ErrClientSomethingWrongWithApplication  = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest           = "cannot process the request, please check your input"
	ErrClientNotAuthorized                  = "you are not authorized to perform this action"
	ErrClientNotLoggedIn                    = "you need to sign in to perform this action"
	ErrClientInvalidEmailOrPassword         = "invalid email or password"
	ErrClientEmailAlreadyExists             = "email is already registered"
	ErrClientServerLongRespond              = "server takes too long to respond, please try again"
	ErrClientStorageUnavailable             = "we could not save your data right now, please try again"
	ErrClientQuestionnaireNotFound          = "questionnaire could not be found"
	ErrClientQuestionnaireDefinitionInvalid = "questionnaire definition is invalid"
	ErrClientAttemptNotFound                = "questionnaire attempt could not be found"
	ErrClientAttemptAlreadyCompleted        = "this questionnaire was already submitted, see your results instead"
	ErrClientAttemptNotOwned                = "this questionnaire was not assigned to you"
	ErrClientRequiredQuestionUnanswered     = "please answer question %q before submitting"
	ErrClientQuestionNotVisible             = "this question is not part of your current questionnaire"
	ErrClientPaymentRejected                = "the payment could not be initiated, please try again"
	ErrClientChatUnavailable                = "the assistant is unavailable right now, please try again later"
	ErrClientDocumentNotFound               = "document could not be found"
)

// Developer-facing messages, logged but hidden from clients in production.
const (
	ErrDevValidationFailed               = "request validation failed"
	ErrDevCannotParseJSON                = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON              = "failed to marshal value to JSON"
	ErrDevBuildRequest                   = "failed to build outgoing request"
	ErrDevSendRequest                    = "failed to send outgoing request"
	ErrDevDecodeResponse                 = "failed to decode response from %s"
	ErrDevServerDeadlineExceeded         = "request deadline exceeded"
	ErrDevAuthTokenMissing               = "authorization token missing from request"
	ErrDevAuthTokenInvalid               = "authorization token invalid or expired"
	ErrDevAuthSigningMethod              = "unexpected JWT signing method"
	ErrDevAuthGenerateToken              = "failed to sign JWT"
	ErrDevAuthInvalidSession             = "session not found or expired in redis"
	ErrDevAuthInvalidCredentials         = "credentials do not match any user"
	ErrDevAuthNotStaff                   = "authenticated user lacks staff capability"
	ErrDevEmailAlreadyExists             = "email already present in users collection"
	ErrDevFailedToHashPassword           = "bcrypt hash generation failed"
	ErrDevDBFailedToFindDocument         = "mongodb: failed to find document"
	ErrDevDBFailedToInsertDocument       = "mongodb: failed to insert document"
	ErrDevDBFailedToUpdateDocument       = "mongodb: failed to update document"
	ErrDevDBFailedToDeleteDocument       = "mongodb: failed to delete document"
	ErrDevDBFailedToIterateDocuments     = "mongodb: failed to iterate documents"
	ErrDevDBStringNotObjectID            = "mongodb: identifier is not a valid ObjectID"
	ErrDevRedisSet                       = "redis: failed to set key"
	ErrDevRedisGet                       = "redis: failed to get key %s"
	ErrDevRedisDelete                    = "redis: failed to delete key"
	ErrDevMinioPutObject                 = "minio: failed to store object in bucket %s"
	ErrDevMinioPresignObject             = "minio: failed to presign object in bucket %s"
	ErrDevMinioListObjects               = "minio: failed to list objects in bucket %s"
	ErrDevMailerPublish                  = "rabbitmq: failed to publish mail payload"
	ErrDevSMTPSendEmail                  = "smtp: failed to send email via %s"
	ErrDevAttemptNotFound                = "attempt document does not exist"
	ErrDevAttemptWrongStatus             = "attempt status precondition failed"
	ErrDevQuestionnaireNotFound          = "questionnaire document does not exist"
	ErrDevQuestionnaireDefinitionInvalid = "questionnaire definition failed structural checks"
	ErrDevQuestionnaireInactive          = "questionnaire is flagged inactive"
	ErrDevRequiredUnanswered             = "required visible question %s has no answer"
	ErrDevQuestionNotVisible             = "answer targets question %s outside the visible set"
	ErrDevPaymentGatewayStatus           = "mbway gateway responded with status %d"
	ErrDevChatCompletionStatus           = "chat completion endpoint responded with status %d"
	ErrDevChatRateLimited                = "chat client rate limiter rejected request"
	ErrDevResultNotFound                 = "no result persisted for attempt"
)
