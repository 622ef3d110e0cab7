package domain

import (
	"time"
)

// TransactionType classifies the direction of a transaction.
type TransactionType string

const (
	TypeIncome   TransactionType = "income"
	TypeExpense  TransactionType = "expense"
	TypeTransfer TransactionType = "transfer"
)

// TransactionStatus is the settlement state reported by the source.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// Source tags the origin of a transaction. SourceCombined is never set on a
// transaction itself; it identifies the composite view built from several
// sources.
type Source string

const (
	SourceManual   Source = "manual"
	SourcePlatform Source = "platform"
	SourceCombined Source = "combined"
)

// Transaction is one normalized financial record as supplied by the external
// transaction store. This core reads it and never mutates it; callers are
// responsible for mapping persisted rows into this shape.
type Transaction struct {
	ID          string            `json:"id"`
	Date        time.Time         `json:"date"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Type        TransactionType   `json:"type"`
	Source      Source            `json:"source"`
	Status      TransactionStatus `json:"status"`
}

// LineItem is one product line on a platform order.
type LineItem struct {
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a structured order record from a connected commerce platform,
// supplied alongside platform-tagged transactions. Customer identifiers on
// orders are exact, unlike the names extracted from manual descriptions.
type Order struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	CreatedAt  time.Time  `json:"created_at"`
	TotalPrice float64    `json:"total_price"`
	LineItems  []LineItem `json:"line_items"`
}
