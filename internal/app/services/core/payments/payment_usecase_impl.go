package payments

import (
	"context"
	"time"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/dto/requests"
	"nutrivida-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	Log                   *zap.Logger
	PaymentGatewayService contracts.PaymentGatewayService
	PaymentRepository     contracts.PaymentRepository
}

func NewPaymentUsecase(
	logger *zap.Logger,
	paymentGatewayService contracts.PaymentGatewayService,
	paymentRepository contracts.PaymentRepository,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		Log:                   logger,
		PaymentGatewayService: paymentGatewayService,
		PaymentRepository:     paymentRepository,
	}
}

func (uc *paymentUsecase) InitiateMbwayPayment(ctx context.Context, patientID string, request *requests.InitiateMbwayPayment) (*responses.MbwayPayment, error) {
	gatewayResponse, err := uc.PaymentGatewayService.InitiateMbwayPayment(ctx, request.Phone, request.AmountCents, request.Description)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := &models.PaymentRequest{
		PatientID:   patientID,
		Reference:   gatewayResponse.Reference,
		Phone:       request.Phone,
		AmountCents: request.AmountCents,
		Description: request.Description,
		Status:      gatewayResponse.Status,
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now

	// The gateway already accepted the push; losing the local log entry is
	// recoverable from the provider dashboard, so it only warns.
	if _, err := uc.PaymentRepository.CreatePaymentRequest(ctx, payment); err != nil {
		uc.Log.Warn("payment request not logged",
			zap.String("reference", gatewayResponse.Reference),
			zap.Error(err),
		)
	}

	return gatewayResponse, nil
}
