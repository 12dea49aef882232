package creditcard

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

const (
	MinBillingDay = 1
	MaxBillingDay = 31
)

type CreditCard struct {
	Id         ulid.ULID       `json:"id"`
	UserId     uuid.UUID       `json:"user_id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand,omitempty"`
	CardLimit  decimal.Decimal `json:"card_limit"`
	ClosingDay int             `json:"closing_day"`
	DueDay     int             `json:"due_day"`
	IsDefault  bool            `json:"is_default"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type CardStats struct {
	TotalCards       int             `json:"total_cards"`
	TotalLimit       decimal.Decimal `json:"total_limit"`
	HasDefaultCard   bool            `json:"has_default_card"`
	DefaultCardLimit decimal.Decimal `json:"default_card_limit"`
}

func validBillingDay(day int) bool {
	return day >= MinBillingDay && day <= MaxBillingDay
}
