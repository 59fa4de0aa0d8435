// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of financial event a transaction records.
type TransactionType string

const (
	TransactionTypeSale    TransactionType = "sale"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeRefund  TransactionType = "refund"
	TransactionTypeDebt    TransactionType = "debt"
	TransactionTypeCash    TransactionType = "cash"
)

// TransactionStatus represents the lifecycle state of a transaction.
// For debts, pending means outstanding and completed means settled.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// DateLayout is the calendar-day format used throughout the ledger.
// Date is authoritative for all time bucketing; Time is display-only.
const DateLayout = "2006-01-02"

// Transaction represents one financial event in the ledger.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	Client      string // counterparty name; doubles as category label for expenses
	ClientPhone string
	ItemID      *uuid.UUID // weak reference to an InventoryItem, may dangle
	Date        string     // YYYY-MM-DD
	Time        string     // free-form display string
	Amount      decimal.Decimal
	Currency    Currency
	Status      TransactionStatus
	Method      string // origin tag, e.g. "Manual" or "Import"
	RawText     string // original source text, kept for search and audit
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity with a fresh ID.
func NewTransaction(
	txType TransactionType,
	client string,
	amount decimal.Decimal,
	currency Currency,
	date string,
	status TransactionStatus,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:        uuid.New(),
		Type:      txType,
		Client:    client,
		Date:      date,
		Amount:    amount,
		Currency:  currency,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidTransactionType reports whether t is one of the known types.
func IsValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeSale, TransactionTypeExpense, TransactionTypeRefund,
		TransactionTypeDebt, TransactionTypeCash:
		return true
	}
	return false
}

// IsValidTransactionStatus reports whether s is one of the known statuses.
func IsValidTransactionStatus(s TransactionStatus) bool {
	switch s {
	case TransactionStatusCompleted, TransactionStatusPending, TransactionStatusFailed:
		return true
	}
	return false
}
