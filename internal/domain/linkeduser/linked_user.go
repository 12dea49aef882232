package linkeduser

import (
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type UserInfo struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// LinkedUser grants LinkedUserId delegated access to the data of MainUserId.
type LinkedUser struct {
	Id             ulid.ULID          `json:"id"`
	MainUserId     uuid.UUID          `json:"main_user_id"`
	LinkedUserId   uuid.UUID          `json:"linked_user_id"`
	PermissionType shared.AccessLevel `json:"permission_type"`
	IsActive       bool               `json:"is_active"`
	UserInfo       UserInfo           `json:"user_info"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

type CreateLinkedUserRequest struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	PermissionType shared.AccessLevel
}

type UpdateLinkedUserRequest struct {
	PermissionType *shared.AccessLevel
	IsActive       *bool
	Name           *string
	Email          *string
	Phone          *string
}

func (r *UpdateLinkedUserRequest) IsEmpty() bool {
	return r.PermissionType == nil && r.IsActive == nil && r.Name == nil && r.Email == nil && r.Phone == nil
}
