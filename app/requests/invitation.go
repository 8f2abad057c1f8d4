package requests

// CreateInvitation has no token field: tokens are generated by the server.
type CreateInvitation struct {
	Email      *string    `json:"email"       validate:"required"`
	ExpiryDate *Timestamp `json:"expiry_date" validate:"required"`
	IsUsed     *bool      `json:"is_used"`
	UserID     *uint      `json:"user_id"`
}

type UpdateInvitation struct {
	Email      Optional[string]    `json:"email"`
	ExpiryDate Optional[Timestamp] `json:"expiry_date"`
	IsUsed     Optional[bool]      `json:"is_used"`
	UserID     Optional[uint]      `json:"user_id"`
}
