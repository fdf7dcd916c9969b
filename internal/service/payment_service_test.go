package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/JhonMohamed/Ravvisant/config"
	"github.com/JhonMohamed/Ravvisant/internal/domain"
	"github.com/JhonMohamed/Ravvisant/internal/dto"
	pkgdto "github.com/JhonMohamed/Ravvisant/pkg/dto"
	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentServiceForTest(transactionRepo *fakeTransactionRepo, gateway *fakePayPalGateway, writer *fakeMessageWriter) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		transactionRepository: transactionRepo,
		paypalClient:          gateway,
		kafkaProducer:         writer,
		config: &config.Config{
			PayPalConfig: config.PayPalConfig{
				Currency: "USD",
			},
			YapeConfig: config.YapeConfig{
				MerchantPhone: "978318805",
			},
			MerchantName:      "Ravvisant",
			PendingPaymentTTL: 3600,
		},
	}
}

func TestProcessPaymentRejectsNonPositiveAmount(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	svc := newPaymentServiceForTest(transactionRepo, &fakePayPalGateway{}, &fakeMessageWriter{})

	for _, amount := range []float64{0, -5.0} {
		_, err := svc.ProcessPayment(context.Background(), dto.PaymentRequest{
			Amount:        amount,
			PaymentMethod: domain.PaymentMethodYape,
		})
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	}

	assert.Empty(t, transactionRepo.transactions)
}

func TestProcessPaymentRejectsCreditCard(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	svc := newPaymentServiceForTest(transactionRepo, &fakePayPalGateway{}, &fakeMessageWriter{})

	_, err := svc.ProcessPayment(context.Background(), dto.PaymentRequest{
		Amount:        50,
		PaymentMethod: domain.PaymentMethodCreditCard,
	})

	assert.ErrorIs(t, err, errs.ErrCreditCardNotSupported)
	assert.Empty(t, transactionRepo.transactions)
}

func TestProcessPaymentRejectsUnknownMethod(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	svc := newPaymentServiceForTest(transactionRepo, &fakePayPalGateway{}, &fakeMessageWriter{})

	_, err := svc.ProcessPayment(context.Background(), dto.PaymentRequest{
		Amount:        10,
		PaymentMethod: domain.PaymentMethod("FOO"),
	})

	assert.ErrorIs(t, err, errs.ErrClient)
	assert.Empty(t, transactionRepo.transactions)
}

func TestProcessYapePayment(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	writer := &fakeMessageWriter{}
	svc := newPaymentServiceForTest(transactionRepo, &fakePayPalGateway{}, writer)

	response, err := svc.ProcessPayment(context.Background(), dto.PaymentRequest{
		Amount:        150.50,
		OrderID:       "ORD-1",
		CustomerName:  "Jhon",
		PaymentMethod: domain.PaymentMethodYape,
	})

	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.True(t, strings.HasPrefix(response.TransactionID, "TXN_"))
	assert.Contains(t, response.QRCodeURL, "https://api.qrserver.com/v1/create-qr-code/")
	assert.Contains(t, response.QRCodeURL, "yape://pay?phone=978318805")
	assert.Equal(t, "yape://pay?id="+response.TransactionID, response.PaymentURL)
	assert.Equal(t, "Pago Yape generado exitosamente", response.Message)
	assert.Equal(t, domain.PaymentStatusPending, response.Status)

	stored, err := transactionRepo.GetTransactionByID(context.Background(), response.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, stored.Status)
	assert.Equal(t, response.QRCodeURL, stored.QRCodeURL)
	assert.Equal(t, "USD", stored.Currency)

	require.Equal(t, 1, writer.count())
	var msg dto.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &msg))
	assert.Equal(t, "payment_initiated", msg.EventType)
}

func TestProcessPlinPayment(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	svc := newPaymentServiceForTest(transactionRepo, &fakePayPalGateway{}, &fakeMessageWriter{})

	response, err := svc.ProcessPayment(context.Background(), dto.PaymentRequest{
		Amount:        80,
		PaymentMethod: domain.PaymentMethodPlin,
	})

	require.NoError(t, err)
	assert.Contains(t, response.QRCodeURL, "plin://pay?amount=80&id="+response.TransactionID)
	assert.Equal(t, "plin://pay?id="+response.TransactionID, response.PaymentURL)
	assert.Equal(t, "Pago Plin generado exitosamente", response.Message)
}

func TestProcessPayPalPayment(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	gateway := &fakePayPalGateway{
		createResponse: dto.PaymentResponse{
			Success:       true,
			TransactionID: "PAYPAL-ORDER-1",
			PaymentURL:    "https://www.sandbox.paypal.com/checkoutnow?token=PAYPAL-ORDER-1",
			Status:        domain.PaymentStatusPending,
		},
	}
	svc := newPaymentServiceForTest(transactionRepo, gateway, &fakeMessageWriter{})

	response, err := svc.ProcessPayment(context.Background(), dto.PaymentRequest{
		Amount:        25,
		PaymentMethod: domain.PaymentMethodPayPal,
	})

	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Empty(t, response.QRCodeURL)
	assert.Equal(t, gateway.createResponse.PaymentURL, response.PaymentURL)
	assert.Contains(t, response.Message, "PAYPAL-ORDER-1")

	stored, err := transactionRepo.GetTransactionByID(context.Background(), response.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, gateway.createResponse.PaymentURL, stored.PaymentURL)
}

func TestProcessPayPalPaymentGatewayFailureMarksTransactionFailed(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	gateway := &fakePayPalGateway{createErr: errs.ErrNoApprovalURL}
	svc := newPaymentServiceForTest(transactionRepo, gateway, &fakeMessageWriter{})

	_, err := svc.ProcessPayment(context.Background(), dto.PaymentRequest{
		Amount:        25,
		PaymentMethod: domain.PaymentMethodPayPal,
	})
	assert.ErrorIs(t, err, errs.ErrNoApprovalURL)

	transactions, err := transactionRepo.GetTransactions(context.Background(), pkgdto.Filter{})
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, domain.PaymentStatusFailed, transactions[0].Status)
}

func TestCheckPaymentStatus(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	_, err := transactionRepo.AddTransaction(context.Background(), domain.PaymentTransaction{
		ID:     "TXN_1",
		Status: domain.PaymentStatusCompleted,
	})
	require.NoError(t, err)

	svc := newPaymentServiceForTest(transactionRepo, &fakePayPalGateway{}, &fakeMessageWriter{})

	response, err := svc.CheckPaymentStatus(context.Background(), "TXN_1")
	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "Estado verificado", response.Message)

	_, err = svc.CheckPaymentStatus(context.Background(), "missing")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestCapturePayPalOrderCompletesTransaction(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	_, err := transactionRepo.AddTransaction(context.Background(), domain.PaymentTransaction{
		ID:            "TXN_1",
		PaymentMethod: domain.PaymentMethodPayPal,
		Status:        domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	gateway := &fakePayPalGateway{
		captureResponse: dto.PaymentResponse{
			Success:       true,
			TransactionID: "CAPTURE-1",
			Status:        domain.PaymentStatusCompleted,
		},
	}
	writer := &fakeMessageWriter{}
	svc := newPaymentServiceForTest(transactionRepo, gateway, writer)

	response, err := svc.CapturePayPalOrder(context.Background(), dto.CapturePayPalOrderRequest{
		OrderID:       "PAYPAL-ORDER-1",
		TransactionID: "TXN_1",
	})

	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Equal(t, "PAYPAL-ORDER-1", gateway.capturedOrderID)

	stored, err := transactionRepo.GetTransactionByID(context.Background(), "TXN_1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, stored.Status)

	require.Equal(t, 1, writer.count())
	var msg dto.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &msg))
	assert.Equal(t, "payment_completed", msg.EventType)
}

func TestCapturePayPalOrderResolvesTransactionByOrderID(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	_, err := transactionRepo.AddTransaction(context.Background(), domain.PaymentTransaction{
		ID:            "TXN_1",
		OrderID:       "PAYPAL-ORDER-1",
		PaymentMethod: domain.PaymentMethodPayPal,
		Status:        domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	gateway := &fakePayPalGateway{
		captureResponse: dto.PaymentResponse{
			Success: true,
			Status:  domain.PaymentStatusCompleted,
		},
	}
	svc := newPaymentServiceForTest(transactionRepo, gateway, &fakeMessageWriter{})

	response, err := svc.CapturePayPalOrder(context.Background(), dto.CapturePayPalOrderRequest{
		OrderID: "PAYPAL-ORDER-1",
	})

	require.NoError(t, err)
	assert.True(t, response.Success)

	stored, err := transactionRepo.GetTransactionByID(context.Background(), "TXN_1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, stored.Status)
}

func TestCapturePayPalOrderFailureMarksTransactionFailed(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	_, err := transactionRepo.AddTransaction(context.Background(), domain.PaymentTransaction{
		ID:     "TXN_1",
		Status: domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	gateway := &fakePayPalGateway{captureErr: assert.AnError}
	svc := newPaymentServiceForTest(transactionRepo, gateway, &fakeMessageWriter{})

	_, err = svc.CapturePayPalOrder(context.Background(), dto.CapturePayPalOrderRequest{
		OrderID:       "PAYPAL-ORDER-1",
		TransactionID: "TXN_1",
	})
	assert.Error(t, err)

	stored, err := transactionRepo.GetTransactionByID(context.Background(), "TXN_1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, stored.Status)
}

func TestUpdateTransactionStatusValidatesInput(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	_, err := transactionRepo.AddTransaction(context.Background(), domain.PaymentTransaction{
		ID:     "TXN_1",
		Status: domain.PaymentStatusPending,
	})
	require.NoError(t, err)

	svc := newPaymentServiceForTest(transactionRepo, &fakePayPalGateway{}, &fakeMessageWriter{})

	assert.ErrorIs(t, svc.UpdateTransactionStatus(context.Background(), "TXN_1", "NOT_A_STATUS"), errs.ErrClient)
	assert.ErrorIs(t, svc.UpdateTransactionStatus(context.Background(), "missing", "COMPLETED"), errs.ErrTransactionNotFound)

	require.NoError(t, svc.UpdateTransactionStatus(context.Background(), "TXN_1", "COMPLETED"))
	stored, err := transactionRepo.GetTransactionByID(context.Background(), "TXN_1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, stored.Status)
}

func TestCancelStaleTransactions(t *testing.T) {
	transactionRepo := newFakeTransactionRepo()
	now := time.Now().UnixMilli()

	_, err := transactionRepo.AddTransaction(context.Background(), domain.PaymentTransaction{
		ID:        "TXN_stale",
		Status:    domain.PaymentStatusPending,
		CreatedAt: now - 2*3600*1000,
	})
	require.NoError(t, err)
	_, err = transactionRepo.AddTransaction(context.Background(), domain.PaymentTransaction{
		ID:        "TXN_fresh",
		Status:    domain.PaymentStatusPending,
		CreatedAt: now,
	})
	require.NoError(t, err)
	_, err = transactionRepo.AddTransaction(context.Background(), domain.PaymentTransaction{
		ID:        "TXN_done",
		Status:    domain.PaymentStatusCompleted,
		CreatedAt: now - 2*3600*1000,
	})
	require.NoError(t, err)

	svc := newPaymentServiceForTest(transactionRepo, &fakePayPalGateway{}, &fakeMessageWriter{})

	cancelled, err := svc.CancelStaleTransactions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	stale, err := transactionRepo.GetTransactionByID(context.Background(), "TXN_stale")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCancelled, stale.Status)

	fresh, err := transactionRepo.GetTransactionByID(context.Background(), "TXN_fresh")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, fresh.Status)

	done, err := transactionRepo.GetTransactionByID(context.Background(), "TXN_done")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, done.Status)
}
