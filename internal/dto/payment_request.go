package dto

import "github.com/JhonMohamed/Ravvisant/internal/domain"

type PaymentRequest struct {
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Description   string               `json:"description"`
	OrderID       string               `json:"orderId"`
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

type CapturePayPalOrderRequest struct {
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId"`
}

type UpdateTransactionStatusRequest struct {
	Status string `json:"status"`
}
