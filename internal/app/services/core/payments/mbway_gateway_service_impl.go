package payments

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"nutrivida-service/internal/app/config"
	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/pkg/constvars"
	"nutrivida-service/internal/pkg/dto/responses"
	"nutrivida-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type mbwayGatewayService struct {
	BaseUrl    string
	ApiKey     string
	Channel    string
	HTTPClient *http.Client
}

func NewMbwayGatewayService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &mbwayGatewayService{
		BaseUrl: internalConfig.Payment.BaseUrl,
		ApiKey:  internalConfig.Payment.ApiKey,
		Channel: internalConfig.Payment.MbwayChannel,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Payment.RequestTimeoutInSeconds) * time.Second,
		},
	}
}

type mbwayInitiateRequest struct {
	MbWayKey    string `json:"mbWayKey"`
	Channel     string `json:"canal"`
	ReferenceID string `json:"referencia"`
	Amount      string `json:"valor"`
	Phone       string `json:"nrtlm"`
	Description string `json:"descricao,omitempty"`
}

type mbwayInitiateResponse struct {
	Reference string `json:"IdPedido"`
	Status    string `json:"Estado"`
	Message   string `json:"MsgDescricao"`
}

// InitiateMbwayPayment asks the provider to push a payment confirmation to
// the patient's phone. Amounts travel as decimal euro strings on the wire.
func (s *mbwayGatewayService) InitiateMbwayPayment(ctx context.Context, phone string, amountCents int, description string) (*responses.MbwayPayment, error) {
	payload := mbwayInitiateRequest{
		MbWayKey:    s.ApiKey,
		Channel:     s.Channel,
		Amount:      fmt.Sprintf("%d.%02d", amountCents/100, amountCents%100),
		Phone:       phone,
		Description: description,
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/spg/payment/mbway", s.BaseUrl), bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrPaymentGatewayStatus(resp.StatusCode)
	}

	gatewayResponse := new(mbwayInitiateResponse)
	if err := json.NewDecoder(resp.Body).Decode(gatewayResponse); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "mbway gateway")
	}

	return &responses.MbwayPayment{
		Reference: gatewayResponse.Reference,
		Status:    gatewayResponse.Status,
	}, nil
}
