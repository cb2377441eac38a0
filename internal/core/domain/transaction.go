package domain

import (
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money is owed to us or by us.
type TransactionType string

const (
	Receivable TransactionType = "RECEIVABLE"
	Payable    TransactionType = "PAYABLE"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusPaid     TransactionStatus = "PAID"     // valid for payables only
	StatusReceived TransactionStatus = "RECEIVED" // valid for receivables only
)

// Transaction is a single dated receivable or payable ledger entry.
// The engine treats transactions as an immutable snapshot; nothing here
// is mutated during a computation pass.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	EntryDate       time.Time         `json:"entryDate"`
	CategoryID      string            `json:"categoryID"`
	Amount          decimal.Decimal   `json:"amount"`
	PretaxAmount    *decimal.Decimal  `json:"pretaxAmount,omitempty"`
	TransactionType TransactionType   `json:"transactionType"`
	Status          TransactionStatus `json:"status"`
	MonthDue        Month             `json:"monthDue"`  // zero when absent
	MonthPaid       Month             `json:"monthPaid"` // zero when absent
	DateProcessed   *time.Time        `json:"dateProcessed,omitempty"`
	PaymentForMonth Month             `json:"paymentForMonth"` // used for monthly categories
	Notes           string            `json:"notes"`
	AuditFields
}

// Validate enforces the construction-time field constraints:
// the status must agree with the transaction type, and any settled
// transaction must carry the month it settled in.
func (t Transaction) Validate() error {
	switch t.TransactionType {
	case Receivable, Payable:
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.TransactionType)
	}
	switch t.Status {
	case StatusPending:
	case StatusPaid:
		if t.TransactionType != Payable {
			return fmt.Errorf("%w: status PAID is only valid for payables", apperrors.ErrValidation)
		}
	case StatusReceived:
		if t.TransactionType != Receivable {
			return fmt.Errorf("%w: status RECEIVED is only valid for receivables", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, t.Status)
	}
	if t.Status != StatusPending && t.MonthPaid.IsZero() {
		return fmt.Errorf("%w: settled transaction requires month paid", apperrors.ErrValidation)
	}
	if t.CategoryID == "" {
		return fmt.Errorf("%w: transaction requires a category", apperrors.ErrValidation)
	}
	return nil
}

// EffectiveExpenseAmount returns the amount accrual aggregation uses for
// expense categories: the pre-tax amount when recorded, the gross amount
// otherwise.
func (t Transaction) EffectiveExpenseAmount() decimal.Decimal {
	if t.PretaxAmount != nil {
		return *t.PretaxAmount
	}
	return t.Amount
}

// IsSettled reports whether the transaction has been paid or received.
func (t Transaction) IsSettled() bool {
	return t.Status != StatusPending
}
