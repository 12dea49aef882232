package contracts

import "github.com/dmogiovanni/teugestor-backend/internal/domain/linkeduser"

type LinkedUserCreateRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	Phone          string `json:"phone" binding:"omitempty,max=20"`
	PermissionType string `json:"permission_type" binding:"required,oneof=view_only full_access"`
}

type LinkedUserUpdateRequest struct {
	PermissionType *string `json:"permission_type" binding:"omitempty,oneof=view_only full_access"`
	IsActive       *bool   `json:"is_active"`
	Name           *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone" binding:"omitempty,max=20"`
}

type LinkedUserResponse struct {
	Message    string                 `json:"message,omitempty"`
	LinkedUser *linkeduser.LinkedUser `json:"linked_user"`
}

type LinkedUserListResponse struct {
	LinkedUsers []*linkeduser.LinkedUser `json:"linked_users"`
	Total       int                      `json:"total"`
}
