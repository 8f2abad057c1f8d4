package requests

type CreateUser struct {
	UserName       *string `json:"user_name"       validate:"required"`
	Email          *string `json:"email"           validate:"required"`
	Password       *string `json:"password"        validate:"required"`
	Role           *string `json:"role"            validate:"required"`
	IsActive       *bool   `json:"is_active"       validate:"required"`
	ConfirmedAdmin *bool   `json:"confirmed_admin" validate:"required"`
}

// UpdateUser takes a new plaintext password; a stored hash is never accepted.
type UpdateUser struct {
	UserName       Optional[string] `json:"user_name"`
	Email          Optional[string] `json:"email"`
	Password       Optional[string] `json:"password"`
	Role           Optional[string] `json:"role"`
	IsActive       Optional[bool]   `json:"is_active"`
	ConfirmedAdmin Optional[bool]   `json:"confirmed_admin"`
}
