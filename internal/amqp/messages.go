package amqp

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

const (
	EventExpenseRecorded    = "expense.recorded"
	EventAccountReplenished = "account.replenished"
)

// LedgerEventMessage is published after every successful spend or replenish.
// Amounts travel as decimal strings so consumers never see float rounding.
type LedgerEventMessage struct {
	Type         string    `json:"type"`
	AccountIndex int       `json:"account_index"`
	Account      string    `json:"account"`
	Amount       string    `json:"amount"`
	Category     string    `json:"category,omitempty"`
	Balance      string    `json:"balance"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewExpenseRecordedMessage builds the message for a spend
func NewExpenseRecordedMessage(ev core.SpendEvent) *LedgerEventMessage {
	return &LedgerEventMessage{
		Type:         EventExpenseRecorded,
		AccountIndex: ev.AccountIndex,
		Account:      ev.AccountName,
		Amount:       ev.Expense.Amount().Exact(),
		Category:     ev.Expense.Category().String(),
		Balance:      ev.Balance.Exact(),
		Timestamp:    time.Now().UTC(),
	}
}

// NewAccountReplenishedMessage builds the message for a deposit
func NewAccountReplenishedMessage(ev core.DepositEvent) *LedgerEventMessage {
	return &LedgerEventMessage{
		Type:         EventAccountReplenished,
		AccountIndex: ev.AccountIndex,
		Account:      ev.AccountName,
		Amount:       ev.Amount.Exact(),
		Balance:      ev.Balance.Exact(),
		Timestamp:    time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerEventMessageFromJSON creates a message from JSON bytes
func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
