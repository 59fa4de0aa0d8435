// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dukan-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Client      string          `gorm:"type:varchar(255);not null;index"`
	ClientPhone string          `gorm:"type:varchar(32)"`
	ItemID      *uuid.UUID      `gorm:"type:uuid;index"`
	Date        string          `gorm:"type:varchar(10);not null;index"`
	Time        string          `gorm:"type:varchar(16)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency    string          `gorm:"type:varchar(3);not null"`
	Status      string          `gorm:"type:varchar(10);not null;index"`
	Method      string          `gorm:"type:varchar(16);not null"`
	RawText     string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Type:        entity.TransactionType(m.Type),
		Client:      m.Client,
		ClientPhone: m.ClientPhone,
		ItemID:      m.ItemID,
		Date:        m.Date,
		Time:        m.Time,
		Amount:      m.Amount,
		Currency:    entity.Currency(m.Currency),
		Status:      entity.TransactionStatus(m.Status),
		Method:      m.Method,
		RawText:     m.RawText,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		Type:        string(transaction.Type),
		Client:      transaction.Client,
		ClientPhone: transaction.ClientPhone,
		ItemID:      transaction.ItemID,
		Date:        transaction.Date,
		Time:        transaction.Time,
		Amount:      transaction.Amount,
		Currency:    string(transaction.Currency),
		Status:      string(transaction.Status),
		Method:      transaction.Method,
		RawText:     transaction.RawText,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
