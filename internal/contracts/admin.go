package contracts

import "github.com/dmogiovanni/teugestor-backend/internal/domain/admin"

type AdminCreateUserRequest struct {
	Name             string `json:"name" binding:"required,max=100"`
	Email            string `json:"email" binding:"required,email"`
	Whatsapp         string `json:"whatsapp" binding:"omitempty,max=20"`
	Password         string `json:"password" binding:"required,min=6"`
	AccessPeriodDays int    `json:"access_period_days" binding:"required,min=1,max=3650"`
}

type AdminUserResponse struct {
	Message string         `json:"message"`
	User    *admin.Profile `json:"user"`
}
