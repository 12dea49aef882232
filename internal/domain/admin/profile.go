package admin

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application side record of a user provisioned by an admin.
type Profile struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"whatsapp"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
	CreatedBy       uuid.UUID `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
}

func (p *Profile) HasAccess(now time.Time) bool {
	return now.Before(p.AccessExpiresAt)
}

type CreateUserRequest struct {
	Name             string
	Email            string
	Phone            string
	Password         string
	AccessPeriodDays int
}
