package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type BankAccount struct {
	Id        ulid.ULID `json:"id"`
	UserId    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	IsDefault bool      `json:"is_default"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
