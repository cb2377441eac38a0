package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Month fields are "YYYY-MM" strings validated at the boundary.
type CreateTransactionRequest struct {
	EntryDate       time.Time                `json:"entryDate" binding:"required"`
	CategoryID      string                   `json:"categoryID" binding:"required"`
	Amount          decimal.Decimal          `json:"amount" binding:"required"`
	PretaxAmount    *decimal.Decimal         `json:"pretaxAmount"`
	TransactionType domain.TransactionType   `json:"transactionType" binding:"required,oneof=RECEIVABLE PAYABLE"`
	Status          domain.TransactionStatus `json:"status" binding:"required,oneof=PENDING PAID RECEIVED"`
	MonthDue        string                   `json:"monthDue" binding:"omitempty,yearmonth"`
	MonthPaid       string                   `json:"monthPaid" binding:"omitempty,yearmonth"`
	DateProcessed   *time.Time               `json:"dateProcessed"`
	PaymentForMonth string                   `json:"paymentForMonth" binding:"omitempty,yearmonth"`
	Notes           string                   `json:"notes"`
}

// UpdateTransactionRequest defines the fields allowed when editing a
// transaction. Pointers distinguish "not provided" from zero values.
type UpdateTransactionRequest struct {
	EntryDate       *time.Time                `json:"entryDate"`
	CategoryID      *string                   `json:"categoryID"`
	Amount          *decimal.Decimal          `json:"amount"`
	PretaxAmount    *decimal.Decimal          `json:"pretaxAmount"`
	TransactionType *domain.TransactionType   `json:"transactionType" binding:"omitempty,oneof=RECEIVABLE PAYABLE"`
	Status          *domain.TransactionStatus `json:"status" binding:"omitempty,oneof=PENDING PAID RECEIVED"`
	MonthDue        *string                   `json:"monthDue" binding:"omitempty,yearmonth"`
	MonthPaid       *string                   `json:"monthPaid" binding:"omitempty,yearmonth"`
	DateProcessed   *time.Time                `json:"dateProcessed"`
	PaymentForMonth *string                   `json:"paymentForMonth" binding:"omitempty,yearmonth"`
	Notes           *string                   `json:"notes"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                   `json:"transactionID"`
	EntryDate       time.Time                `json:"entryDate"`
	CategoryID      string                   `json:"categoryID"`
	Amount          decimal.Decimal          `json:"amount"`
	PretaxAmount    *decimal.Decimal         `json:"pretaxAmount,omitempty"`
	TransactionType domain.TransactionType   `json:"transactionType"`
	Status          domain.TransactionStatus `json:"status"`
	MonthDue        string                   `json:"monthDue,omitempty"`
	MonthPaid       string                   `json:"monthPaid,omitempty"`
	DateProcessed   *time.Time               `json:"dateProcessed,omitempty"`
	PaymentForMonth string                   `json:"paymentForMonth,omitempty"`
	Notes           string                   `json:"notes,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	LastUpdatedAt   time.Time                `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		EntryDate:       txn.EntryDate,
		CategoryID:      txn.CategoryID,
		Amount:          txn.Amount,
		PretaxAmount:    txn.PretaxAmount,
		TransactionType: txn.TransactionType,
		Status:          txn.Status,
		MonthDue:        monthString(txn.MonthDue),
		MonthPaid:       monthString(txn.MonthPaid),
		DateProcessed:   txn.DateProcessed,
		PaymentForMonth: monthString(txn.PaymentForMonth),
		Notes:           txn.Notes,
		CreatedAt:       txn.CreatedAt,
		LastUpdatedAt:   txn.LastUpdatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, ToTransactionResponse(&txns[i]))
	}
	return out
}
