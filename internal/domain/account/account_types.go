package account

type CreateAccountRequest struct {
	Name      string
	IsDefault bool
}

type UpdateAccountRequest struct {
	Name      *string
	IsDefault *bool
}
