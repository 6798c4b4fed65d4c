package contracts

import (
	"context"
	"io"

	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	FindAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
}

type AppointmentUsecase interface {
	FindAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
}

type FodmapRepository interface {
	FindEntriesByPatient(ctx context.Context, patientID string) ([]models.FodmapEntry, error)
	UpsertEntry(ctx context.Context, entry *models.FodmapEntry) error
}

type FodmapUsecase interface {
	GetChecklist(ctx context.Context, patientID string) ([]models.FodmapEntry, error)
	SaveTolerance(ctx context.Context, patientID string, request *requests.SaveFodmapTolerance) (*models.FodmapEntry, error)
}

type DocumentStorage interface {
	PutDocument(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error
	ListDocuments(ctx context.Context) ([]string, error)
	PresignDocument(ctx context.Context, name string) (*responses.DocumentLink, error)
}

type DocumentUsecase interface {
	UploadDocument(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error
	ListDocuments(ctx context.Context) ([]string, error)
	GetDocumentLink(ctx context.Context, name string) (*responses.DocumentLink, error)
}

type PaymentGatewayService interface {
	InitiateMbwayPayment(ctx context.Context, phone string, amountCents int, description string) (*responses.MbwayPayment, error)
}

type PaymentRepository interface {
	CreatePaymentRequest(ctx context.Context, payment *models.PaymentRequest) (string, error)
}

type PaymentUsecase interface {
	InitiateMbwayPayment(ctx context.Context, patientID string, request *requests.InitiateMbwayPayment) (*responses.MbwayPayment, error)
}

type ChatCompletionClient interface {
	Complete(ctx context.Context, messages []models.ChatTurn) (string, error)
}

type ChatUsecase interface {
	SendMessage(ctx context.Context, sessionID string, request *requests.ChatMessage) (*responses.ChatReply, error)
}

type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}

type SessionService interface {
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
}
