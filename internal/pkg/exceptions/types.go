package exceptions

import (
	"fmt"
	"nutrivida-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed).WithKind(KindValidation)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON).WithKind(KindValidation)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded).WithKind(KindPersistence).AsRetryable()
	}

	// Outgoing HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendRequest)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing).WithKind(KindUnauthenticated)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid).WithKind(KindUnauthenticated)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrSessionInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession).WithKind(KindUnauthenticated)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevAuthInvalidCredentials).WithKind(KindUnauthenticated)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists).WithKind(KindValidation)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrNotStaff = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthNotStaff)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, constvars.ErrDevDBFailedToFindDocument).WithKind(KindPersistence).AsRetryable()
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, constvars.ErrDevDBFailedToInsertDocument).WithKind(KindPersistence).AsRetryable()
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, constvars.ErrDevDBFailedToUpdateDocument).WithKind(KindPersistence).AsRetryable()
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, constvars.ErrDevDBFailedToDeleteDocument).WithKind(KindPersistence).AsRetryable()
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, constvars.ErrDevDBFailedToIterateDocuments).WithKind(KindPersistence).AsRetryable()
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID).WithKind(KindValidation)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet).WithKind(KindPersistence).AsRetryable()
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key)).WithKind(KindPersistence).AsRetryable()
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete).WithKind(KindPersistence).AsRetryable()
	}

	// Minio
	ErrMinioPutObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, fmt.Sprintf(constvars.ErrDevMinioPutObject, bucketName)).WithKind(KindPersistence).AsRetryable()
	}
	ErrMinioPresignObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, fmt.Sprintf(constvars.ErrDevMinioPresignObject, bucketName)).WithKind(KindPersistence).AsRetryable()
	}
	ErrMinioListObjects = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientStorageUnavailable, fmt.Sprintf(constvars.ErrDevMinioListObjects, bucketName)).WithKind(KindPersistence).AsRetryable()
	}

	// Mailer
	ErrMailerPublish = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMailerPublish).WithKind(KindPersistence).AsRetryable()
	}
	ErrSMTPSendEmail = func(err error, host string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, host)).WithKind(KindPersistence).AsRetryable()
	}

	// Questionnaires and attempts
	ErrQuestionnaireDefinitionInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientQuestionnaireDefinitionInvalid, constvars.ErrDevQuestionnaireDefinitionInvalid).WithKind(KindValidation)
	}
	ErrQuestionnaireNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientQuestionnaireNotFound, constvars.ErrDevQuestionnaireNotFound).WithKind(KindNotFound)
	}
	ErrAttemptNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAttemptNotFound, constvars.ErrDevAttemptNotFound).WithKind(KindNotFound)
	}
	ErrResultNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAttemptNotFound, constvars.ErrDevResultNotFound).WithKind(KindNotFound)
	}
	ErrAttemptNotOwned = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientAttemptNotOwned, constvars.ErrDevAttemptWrongStatus)
	}
	ErrAttemptAlreadyCompleted = func(attemptID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientAttemptAlreadyCompleted, constvars.ErrDevAttemptWrongStatus).
			WithKind(KindAlreadyCompleted).
			WithRedirect(fmt.Sprintf("/attempts/%s/result", attemptID))
	}
	ErrRequiredQuestionUnanswered = func(questionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientRequiredQuestionUnanswered, questionID), fmt.Sprintf(constvars.ErrDevRequiredUnanswered, questionID)).WithKind(KindValidation)
	}
	ErrQuestionNotVisible = func(questionID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientQuestionNotVisible, fmt.Sprintf(constvars.ErrDevQuestionNotVisible, questionID)).WithKind(KindValidation)
	}

	// Payment gateway
	ErrPaymentGatewayStatus = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientPaymentRejected, fmt.Sprintf(constvars.ErrDevPaymentGatewayStatus, statusCode)).AsRetryable()
	}

	// Chat completion
	ErrChatCompletionStatus = func(statusCode int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientChatUnavailable, fmt.Sprintf(constvars.ErrDevChatCompletionStatus, statusCode)).AsRetryable()
	}
	ErrChatRateLimited = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientChatUnavailable, constvars.ErrDevChatRateLimited).AsRetryable()
	}
)
