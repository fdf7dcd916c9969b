package paymentgateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/JhonMohamed/Ravvisant/config"
	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/JhonMohamed/Ravvisant/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

const (
	sandboxBaseURL    = "https://api-m.sandbox.paypal.com"
	productionBaseURL = "https://api-m.paypal.com"

	oauthTokenEndpoint   = "/v1/oauth2/token"
	createOrderEndpoint  = "/v2/checkout/orders"
	captureOrderEndpoint = "/v2/checkout/orders/%s/capture"
)

type PayPalClient struct {
	config  *config.Config
	cb      *gobreaker.CircuitBreaker[[]byte]
	baseURL string
}

func CreatePayPalClient(config *config.Config, cb *gobreaker.CircuitBreaker[[]byte]) *PayPalClient {
	baseURL := sandboxBaseURL
	if config.PayPalConfig.Environment == "PRODUCTION" {
		baseURL = productionBaseURL
	}

	return &PayPalClient{
		config:  config,
		cb:      cb,
		baseURL: baseURL,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	Amount      orderAmount `json:"amount"`
	Description string      `json:"description,omitempty"`
	CustomID    string      `json:"custom_id,omitempty"`
	InvoiceID   string      `json:"invoice_id,omitempty"`
}

type applicationContext struct {
	ReturnURL          string `json:"return_url"`
	CancelURL          string `json:"cancel_url"`
	BrandName          string `json:"brand_name"`
	ShippingPreference string `json:"shipping_preference"`
	UserAction         string `json:"user_action"`
}

type createOrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
	ApplicationContext applicationContext `json:"application_context"`
}

type orderLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type createOrderResponse struct {
	ID    string      `json:"id"`
	Links []orderLink `json:"links"`
}

type captureOrderResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

type providerError struct {
	Message string `json:"message"`
}

// CreateOrder creates a hosted PayPal checkout order and returns its approval
// URL. Amount and description validation happens caller-side.
func (c *PayPalClient) CreateOrder(ctx context.Context, paymentRequest dto.PaymentRequest) (response dto.PaymentResponse, err error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return response, err
	}

	orderPayload := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{
			{
				Amount: orderAmount{
					CurrencyCode: c.config.PayPalConfig.Currency,
					Value:        fmt.Sprintf("%.2f", paymentRequest.Amount),
				},
				Description: paymentRequest.Description,
				CustomID:    paymentRequest.OrderID,
				InvoiceID:   paymentRequest.OrderID,
			},
		},
		ApplicationContext: applicationContext{
			ReturnURL:          c.config.PayPalConfig.ReturnURL,
			CancelURL:          c.config.PayPalConfig.CancelURL,
			BrandName:          c.config.MerchantName,
			ShippingPreference: "NO_SHIPPING",
			UserAction:         "PAY_NOW",
		},
	}

	requestBody, err := json.Marshal(orderPayload)
	if err != nil {
		return response, err
	}

	statusCode, responseBody, err := c.sendRequest(ctx, httpclient.HttpRequest{
		URL:    c.baseURL + createOrderEndpoint,
		Method: "POST",
		Body:   requestBody,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + token,
		},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateOrder").Msg("")
		return response, err
	}

	if statusCode < 200 || statusCode >= 300 {
		return response, fmt.Errorf("Error al crear orden de PayPal: %s", extractProviderMessage(statusCode, responseBody))
	}

	var orderResponse createOrderResponse
	if err := json.Unmarshal(responseBody, &orderResponse); err != nil {
		return response, err
	}

	approvalURL := ""
	for _, link := range orderResponse.Links {
		if link.Rel == "approve" {
			approvalURL = link.Href
			break
		}
	}

	if approvalURL == "" {
		return response, errs.ErrNoApprovalURL
	}

	return dto.PaymentResponse{
		Success:       true,
		TransactionID: orderResponse.ID,
		PaymentURL:    approvalURL,
		Message:       "Orden de PayPal creada exitosamente",
		Status:        domain.PaymentStatusPending,
	}, nil
}

// CaptureOrder finalizes fund collection for an approved order. Anything but
// a literal COMPLETED status from the provider is a failure.
func (c *PayPalClient) CaptureOrder(ctx context.Context, orderID string) (response dto.PaymentResponse, err error) {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return response, err
	}

	statusCode, responseBody, err := c.sendRequest(ctx, httpclient.HttpRequest{
		URL:    c.baseURL + fmt.Sprintf(captureOrderEndpoint, orderID),
		Method: "POST",
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": "Bearer " + token,
		},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CaptureOrder").Msg("")
		return response, err
	}

	if statusCode < 200 || statusCode >= 300 {
		return response, fmt.Errorf("Error al capturar orden de PayPal: %s", extractProviderMessage(statusCode, responseBody))
	}

	var captureResponse captureOrderResponse
	if err := json.Unmarshal(responseBody, &captureResponse); err != nil {
		return response, err
	}

	if captureResponse.Status != "COMPLETED" {
		return response, fmt.Errorf("Estado de captura inesperado: %s", captureResponse.Status)
	}

	captureID := captureResponse.ID
	if len(captureResponse.PurchaseUnits) > 0 && len(captureResponse.PurchaseUnits[0].Payments.Captures) > 0 {
		captureID = captureResponse.PurchaseUnits[0].Payments.Captures[0].ID
	}

	return dto.PaymentResponse{
		Success:       true,
		TransactionID: captureID,
		Message:       "Pago capturado exitosamente",
		Status:        domain.PaymentStatusCompleted,
	}, nil
}

func (c *PayPalClient) getAccessToken(ctx context.Context) (string, error) {
	credentials := c.config.PayPalConfig.ClientID + ":" + c.config.PayPalConfig.ClientSecret
	encodedCredentials := base64.StdEncoding.EncodeToString([]byte(credentials))

	statusCode, responseBody, err := c.sendRequest(ctx, httpclient.HttpRequest{
		URL:    c.baseURL + oauthTokenEndpoint,
		Method: "POST",
		Body:   []byte("grant_type=client_credentials"),
		Headers: map[string]string{
			"Content-Type":  "application/x-www-form-urlencoded",
			"Authorization": "Basic " + encodedCredentials,
		},
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "getAccessToken").Msg("")
		return "", err
	}

	if statusCode < 200 || statusCode >= 300 {
		return "", fmt.Errorf("Error obteniendo token de acceso: %s", extractProviderMessage(statusCode, responseBody))
	}

	var token tokenResponse
	if err := json.Unmarshal(responseBody, &token); err != nil {
		return "", err
	}

	return token.AccessToken, nil
}

func (c *PayPalClient) sendRequest(ctx context.Context, req httpclient.HttpRequest) (int, []byte, error) {
	var statusCode int
	body, err := c.cb.Execute(func() ([]byte, error) {
		var innerErr error
		var b []byte
		statusCode, b, innerErr = httpclient.SendRequest(ctx, req)
		return b, innerErr
	})

	return statusCode, body, err
}

func extractProviderMessage(statusCode int, body []byte) string {
	var provider providerError
	if err := json.Unmarshal(body, &provider); err == nil && provider.Message != "" {
		return provider.Message
	}

	return fmt.Sprintf("HTTP %d", statusCode)
}
