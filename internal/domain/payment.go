package domain

type PaymentMethod string

const (
	PaymentMethodYape       PaymentMethod = "YAPE"
	PaymentMethodPlin       PaymentMethod = "PLIN"
	PaymentMethodPayPal     PaymentMethod = "PAYPAL"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

// PaymentTransaction records one checkout attempt. Transactions are never
// deleted; status is overwritten in place.
type PaymentTransaction struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	OrderID       string        `bson:"order_id" json:"orderId"`
	Amount        float64       `bson:"amount" json:"amount"`
	Currency      string        `bson:"currency" json:"currency"`
	PaymentMethod PaymentMethod `bson:"payment_method" json:"paymentMethod"`
	Status        PaymentStatus `bson:"status" json:"status"`
	CustomerName  string        `bson:"customer_name" json:"customerName"`
	CustomerPhone string        `bson:"customer_phone" json:"customerPhone"`
	Description   string        `bson:"description" json:"description"`
	CreatedAt     int64         `bson:"created_at" json:"createdAt"`
	UpdatedAt     int64         `bson:"updated_at" json:"updatedAt"`
	QRCodeURL     string        `bson:"qr_code_url,omitempty" json:"qrCodeUrl,omitempty"`
	PaymentURL    string        `bson:"payment_url,omitempty" json:"paymentUrl,omitempty"`
}
