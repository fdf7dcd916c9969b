package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/JhonMohamed/Ravvisant/config"
	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	paymentgateway "github.com/JhonMohamed/Ravvisant/internal/infrastructure/payment-gateway"
	"github.com/JhonMohamed/Ravvisant/internal/repository"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/JhonMohamed/Ravvisant/pkg/utils"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"gopkg.in/gomail.v2"
)

const qrCodeURLFormat = "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=%s"

// payPalGateway is the slice of the PayPal client the payment flow needs.
type payPalGateway interface {
	CreateOrder(ctx context.Context, paymentRequest dto.PaymentRequest) (dto.PaymentResponse, error)
	CaptureOrder(ctx context.Context, orderID string) (dto.PaymentResponse, error)
}

// messageWriter matches kafka.Conn's producer surface.
type messageWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}

type PaymentServiceImpl struct {
	transactionRepository repository.TransactionRepository
	paypalClient          payPalGateway
	kafkaReader           *kafka.Reader
	kafkaProducer         messageWriter
	config                *config.Config
}

func CreatePaymentService(transactionRepository repository.TransactionRepository, paypalClient *paymentgateway.PayPalClient, kafkaReader *kafka.Reader, kafkaProducer *kafka.Conn, config *config.Config) PaymentService {
	return &PaymentServiceImpl{
		transactionRepository: transactionRepository,
		paypalClient:          paypalClient,
		kafkaReader:           kafkaReader,
		kafkaProducer:         kafkaProducer,
		config:                config,
	}
}

// ConsumeEvent applies provider-side confirmations published to the payment
// topic. Runs in its own goroutine for the lifetime of the process.
func (s *PaymentServiceImpl) ConsumeEvent() {
	for {
		msg, err := s.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		var receivedMsg dto.KafkaMessage
		if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		switch receivedMsg.EventType {
		case "payment_confirmed", "payment_rejected":
			var event dto.PaymentEvent
			dataBytes, err := json.Marshal(receivedMsg.Data)
			if err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}
			if err := json.Unmarshal(dataBytes, &event); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}

			status := domain.PaymentStatusCompleted
			if receivedMsg.EventType == "payment_rejected" {
				status = domain.PaymentStatusFailed
			}

			if err := s.transactionRepository.UpdateStatus(context.Background(), event.TransactionID, status); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			}
		}
	}
}

// ProcessPayment validates the request, persists a PENDING transaction, then
// runs the method-specific branch. Rejected requests persist nothing.
func (s *PaymentServiceImpl) ProcessPayment(ctx context.Context, req dto.PaymentRequest) (response dto.PaymentResponse, err error) {
	if req.Amount <= 0 {
		return response, errs.ErrInvalidAmount
	}

	if req.PaymentMethod == domain.PaymentMethodCreditCard {
		return response, errs.ErrCreditCardNotSupported
	}

	switch req.PaymentMethod {
	case domain.PaymentMethodYape, domain.PaymentMethodPlin, domain.PaymentMethodPayPal:
	default:
		return response, errs.ErrClient
	}

	currency := req.Currency
	if currency == "" {
		currency = s.config.PayPalConfig.Currency
	}

	now := time.Now()
	transaction := domain.PaymentTransaction{
		ID:            generateTransactionID(now),
		OrderID:       req.OrderID,
		Amount:        req.Amount,
		Currency:      currency,
		PaymentMethod: req.PaymentMethod,
		Status:        domain.PaymentStatusPending,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Description:   req.Description,
		CreatedAt:     now.UnixMilli(),
		UpdatedAt:     now.UnixMilli(),
	}

	transactionID, err := s.transactionRepository.AddTransaction(ctx, transaction)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ProcessPayment").Msg("")
		return
	}

	switch req.PaymentMethod {
	case domain.PaymentMethodYape:
		response, err = s.processYapePayment(ctx, req, transactionID)
	case domain.PaymentMethodPlin:
		response, err = s.processPlinPayment(ctx, req, transactionID)
	case domain.PaymentMethodPayPal:
		response, err = s.processPayPalPayment(ctx, req, transactionID)
	}
	if err != nil {
		if updateErr := s.transactionRepository.UpdateStatus(ctx, transactionID, domain.PaymentStatusFailed); updateErr != nil {
			log.Ctx(ctx).Error().Err(updateErr).Str("component", "ProcessPayment").Msg("")
		}
		return
	}

	s.publishPaymentEvent(ctx, "payment_initiated", transaction, response.Status)

	return
}

func (s *PaymentServiceImpl) processYapePayment(ctx context.Context, req dto.PaymentRequest, transactionID string) (response dto.PaymentResponse, err error) {
	data := fmt.Sprintf("yape://pay?phone=%s&amount=%v", s.config.YapeConfig.MerchantPhone, req.Amount)
	qrCodeURL := fmt.Sprintf(qrCodeURLFormat, data)
	paymentURL := fmt.Sprintf("yape://pay?id=%s", transactionID)

	if err = s.transactionRepository.UpdatePaymentInfo(ctx, transactionID, qrCodeURL, paymentURL); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "processYapePayment").Msg("")
		return
	}

	return dto.PaymentResponse{
		Success:       true,
		TransactionID: transactionID,
		QRCodeURL:     qrCodeURL,
		PaymentURL:    paymentURL,
		Message:       "Pago Yape generado exitosamente",
		Status:        domain.PaymentStatusPending,
	}, nil
}

func (s *PaymentServiceImpl) processPlinPayment(ctx context.Context, req dto.PaymentRequest, transactionID string) (response dto.PaymentResponse, err error) {
	data := fmt.Sprintf("plin://pay?amount=%v&id=%s", req.Amount, transactionID)
	qrCodeURL := fmt.Sprintf(qrCodeURLFormat, data)
	paymentURL := fmt.Sprintf("plin://pay?id=%s", transactionID)

	if err = s.transactionRepository.UpdatePaymentInfo(ctx, transactionID, qrCodeURL, paymentURL); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "processPlinPayment").Msg("")
		return
	}

	return dto.PaymentResponse{
		Success:       true,
		TransactionID: transactionID,
		QRCodeURL:     qrCodeURL,
		PaymentURL:    paymentURL,
		Message:       "Pago Plin generado exitosamente",
		Status:        domain.PaymentStatusPending,
	}, nil
}

func (s *PaymentServiceImpl) processPayPalPayment(ctx context.Context, req dto.PaymentRequest, transactionID string) (response dto.PaymentResponse, err error) {
	orderResponse, err := s.paypalClient.CreateOrder(ctx, req)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "processPayPalPayment").Msg("")
		return
	}

	if err = s.transactionRepository.UpdatePaymentInfo(ctx, transactionID, "", orderResponse.PaymentURL); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "processPayPalPayment").Msg("")
		return
	}

	// The provider's order id rides along in the message so the capture step
	// can correlate both identifiers. The local transaction id stays the
	// caller-facing one.
	return dto.PaymentResponse{
		Success:       true,
		TransactionID: transactionID,
		PaymentURL:    orderResponse.PaymentURL,
		Message:       fmt.Sprintf("Orden de PayPal creada exitosamente: %s", orderResponse.TransactionID),
		Status:        domain.PaymentStatusPending,
	}, nil
}

// CheckPaymentStatus reports the stored state of a transaction. Success in
// the response means the payment completed, not that the lookup worked.
func (s *PaymentServiceImpl) CheckPaymentStatus(ctx context.Context, transactionID string) (response dto.PaymentResponse, err error) {
	transaction, err := s.transactionRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CheckPaymentStatus").Msg("")
		return response, errs.ErrTransactionNotFound
	}

	return dto.PaymentResponse{
		Success:       transaction.Status == domain.PaymentStatusCompleted,
		TransactionID: transaction.ID,
		QRCodeURL:     transaction.QRCodeURL,
		PaymentURL:    transaction.PaymentURL,
		Message:       "Estado verificado",
		Status:        transaction.Status,
	}, nil
}

// CapturePayPalOrder collects the funds for an approved order and marks the
// linked transaction COMPLETED.
func (s *PaymentServiceImpl) CapturePayPalOrder(ctx context.Context, req dto.CapturePayPalOrderRequest) (response dto.PaymentResponse, err error) {
	transactionID := req.TransactionID
	if transactionID == "" {
		// The PayPal return deep link only carries the provider order token.
		transactionID = s.resolveTransactionIDByOrderID(ctx, req.OrderID)
	}

	response, err = s.paypalClient.CaptureOrder(ctx, req.OrderID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CapturePayPalOrder").Msg("")
		if transactionID != "" {
			if updateErr := s.transactionRepository.UpdateStatus(ctx, transactionID, domain.PaymentStatusFailed); updateErr != nil {
				log.Ctx(ctx).Error().Err(updateErr).Str("component", "CapturePayPalOrder").Msg("")
			}
		}
		return
	}

	if transactionID == "" {
		return
	}

	if err = s.transactionRepository.UpdateStatus(ctx, transactionID, domain.PaymentStatusCompleted); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CapturePayPalOrder").Msg("")
		return
	}

	transaction, err := s.transactionRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CapturePayPalOrder").Msg("")
		return response, nil
	}

	s.publishPaymentEvent(ctx, "payment_completed", transaction, domain.PaymentStatusCompleted)
	s.sendSaleNotification(ctx, transaction)

	return
}

func (s *PaymentServiceImpl) resolveTransactionIDByOrderID(ctx context.Context, orderID string) string {
	transactions, err := s.transactionRepository.GetTransactionsByOrderID(ctx, orderID)
	if err != nil || len(transactions) == 0 {
		return ""
	}

	return transactions[0].ID
}

func (s *PaymentServiceImpl) UpdateTransactionStatus(ctx context.Context, transactionID string, status string) (err error) {
	parsed, ok := parsePaymentStatus(status)
	if !ok {
		return errs.ErrClient
	}

	transaction, err := s.transactionRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateTransactionStatus").Msg("")
		return errs.ErrTransactionNotFound
	}

	if err = s.transactionRepository.UpdateStatus(ctx, transactionID, parsed); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateTransactionStatus").Msg("")
		return
	}

	s.publishPaymentEvent(ctx, "payment_status_changed", transaction, parsed)

	return
}

func (s *PaymentServiceImpl) GetTransaction(ctx context.Context, transactionID string) (data dto.TransactionResponse, err error) {
	transaction, err := s.transactionRepository.GetTransactionByID(ctx, transactionID)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransaction").Msg("")
		return data, errs.ErrTransactionNotFound
	}

	return convertTransactionToResponse(transaction), nil
}

func (s *PaymentServiceImpl) GetTransactions(ctx context.Context, filter pkgdto.Filter) (data []dto.TransactionResponse, err error) {
	transactions, err := s.transactionRepository.GetTransactions(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetTransactions").Msg("")
		return
	}

	data = make([]dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, convertTransactionToResponse(transaction))
	}

	return
}

// CancelStaleTransactions expires PENDING transactions whose hold window has
// passed. Runs on a schedule; a partial sweep is fine since the next run
// picks up the rest.
func (s *PaymentServiceImpl) CancelStaleTransactions(ctx context.Context) (cancelled int, err error) {
	olderThan := time.Now().UnixMilli() - s.config.PendingPaymentTTL*1000

	stale, err := s.transactionRepository.GetStalePendingTransactions(ctx, olderThan)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CancelStaleTransactions").Msg("")
		return
	}

	for _, transaction := range stale {
		if err := s.transactionRepository.UpdateStatus(ctx, transaction.ID, domain.PaymentStatusCancelled); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "CancelStaleTransactions").Msg("")
			continue
		}

		s.publishPaymentEvent(ctx, "payment_expired", transaction, domain.PaymentStatusCancelled)
		cancelled++
	}

	if cancelled > 0 {
		log.Ctx(ctx).Info().Int("cancelled", cancelled).Msg("expired stale pending transactions")
	}

	return
}

func (s *PaymentServiceImpl) publishPaymentEvent(ctx context.Context, eventType string, transaction domain.PaymentTransaction, status domain.PaymentStatus) {
	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data: dto.PaymentEvent{
			TransactionID: transaction.ID,
			OrderID:       transaction.OrderID,
			Amount:        transaction.Amount,
			PaymentMethod: string(transaction.PaymentMethod),
			Status:        string(status),
		},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishPaymentEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessageWithKey(jsonMsg, transaction.ID)
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishPaymentEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}

	// The transaction record is durable either way; the event stream catches
	// up on the next status change.
	log.Ctx(ctx).Error().Err(err).Str("component", "publishPaymentEvent").Msgf("failed to write Kafka message after %d attempts", maxRetries)
}

func (s *PaymentServiceImpl) writeKafkaMessageWithKey(msg []byte, key string) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Key:   []byte(key),
			Value: msg,
		},
	)
	return err
}

func (s *PaymentServiceImpl) sendSaleNotification(ctx context.Context, transaction domain.PaymentTransaction) {
	if s.config.SMTPConfig.Sender == "" {
		return
	}

	completedAt, err := utils.ConvertDateTimeToHumanReadableFormat(time.Now().UnixMilli())
	if err != nil {
		completedAt = ""
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", s.config.SMTPConfig.Sender)
	message.SetHeader("Subject", fmt.Sprintf("Pago confirmado %s", transaction.ID))
	message.SetBody("text/plain", fmt.Sprintf(
		"Pago confirmado.\n\nTransacción: %s\nPedido: %s\nMonto: %.2f %s\nMétodo: %s\nCliente: %s\nFecha: %s\n",
		transaction.ID, transaction.OrderID, transaction.Amount, transaction.Currency,
		transaction.PaymentMethod, transaction.CustomerName, completedAt,
	))

	if err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Server, s.config.SMTPConfig.Port); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "sendSaleNotification").Msg("")
	}
}

func generateTransactionID(now time.Time) string {
	return fmt.Sprintf("TXN_%d_%d", now.UnixMilli(), rand.Intn(1000))
}

func parsePaymentStatus(status string) (domain.PaymentStatus, bool) {
	switch domain.PaymentStatus(status) {
	case domain.PaymentStatusPending, domain.PaymentStatusProcessing, domain.PaymentStatusCompleted,
		domain.PaymentStatusFailed, domain.PaymentStatusCancelled:
		return domain.PaymentStatus(status), true
	}

	return "", false
}

func convertTransactionToResponse(transaction domain.PaymentTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            transaction.ID,
		OrderID:       transaction.OrderID,
		Amount:        transaction.Amount,
		Currency:      transaction.Currency,
		PaymentMethod: transaction.PaymentMethod,
		Status:        transaction.Status,
		Description:   transaction.Description,
		QRCodeURL:     transaction.QRCodeURL,
		PaymentURL:    transaction.PaymentURL,
		CreatedAt:     transaction.CreatedAt,
	}
}
