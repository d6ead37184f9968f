package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a financial record attached to a client and a project.
// Unlike comments, the client and project are existence-checked
// independently and never cross-validated against each other. DueDate is
// server-assigned at creation but caller-controlled on update.
type Transaction struct {
	ID                int64           `json:"id"`
	ClientID          int64           `json:"client_id"`
	ProjectID         int64           `json:"project_id"`
	Amount            decimal.Decimal `json:"amount"`
	DueAmount         decimal.Decimal `json:"due_amount"`
	DueDate           time.Time       `json:"due_date"`
	TransactionStatus string          `json:"transaction_status"`
	Currency          string          `json:"currency"`
}
