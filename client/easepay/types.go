package easepay

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses
type Status string

const (
	STATUS_PENDING   Status = "pending"
	STATUS_COMPLETED Status = "completed"
	STATUS_FAILED    Status = "failed"
	STATUS_CANCELED  Status = "canceled"
	STATUS_REFUNDED  Status = "refunded"
)

// Health [/health]
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// Payment [/payment, /payment/{id}]
type Payment struct {
	Id          string          `json:"id"`
	Status      Status          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
	CheckoutUrl string          `json:"checkoutUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Payment status [/payment/{id}/status]
type PaymentStatus struct {
	Id     string `json:"id"`
	Status Status `json:"status"`
}

// Payment history [/payment/history]
type PaymentHistory struct {
	Payments []Payment `json:"payments"`
}

// Store [/store]
type StoreInfo struct {
	Id          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	CallbackUrl string `json:"callbackUrl,omitempty"`
	Currency    string `json:"currency,omitempty"`
}

// Store transactions [/store/transactions]
type Transaction struct {
	Id        string          `json:"id"`
	PaymentId string          `json:"paymentId"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Fee       decimal.Decimal `json:"fee"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}

type StoreTransactions struct {
	Transactions []Transaction `json:"transactions"`
}

// Wallet [/wallet/balance]
type WalletBalance struct {
	Available decimal.Decimal `json:"available"`
	Pending   decimal.Decimal `json:"pending"`
	Currency  string          `json:"currency"`
}

// Users [/users]
type User struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type UsersList struct {
	Users []User `json:"users"`
}
