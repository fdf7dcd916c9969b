package dto

import "github.com/JhonMohamed/Ravvisant/internal/domain"

// PaymentResponse is the unified shape returned by every payment branch.
type PaymentResponse struct {
	Success       bool                 `json:"success"`
	TransactionID string               `json:"transactionId,omitempty"`
	QRCodeURL     string               `json:"qrCodeUrl,omitempty"`
	PaymentURL    string               `json:"paymentUrl,omitempty"`
	Message       string               `json:"message,omitempty"`
	Status        domain.PaymentStatus `json:"status"`
}

type TransactionResponse struct {
	ID            string               `json:"id"`
	OrderID       string               `json:"orderId"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Status        domain.PaymentStatus `json:"status"`
	Description   string               `json:"description"`
	QRCodeURL     string               `json:"qrCodeUrl,omitempty"`
	PaymentURL    string               `json:"paymentUrl,omitempty"`
	CreatedAt     int64                `json:"createdAt"`
}
