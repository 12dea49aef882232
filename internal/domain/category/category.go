package category

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindExpense, KindIncome:
		return true
	}
	return false
}

type Category struct {
	Id        ulid.ULID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"type"`
	Color     string    `json:"color,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
