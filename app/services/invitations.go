package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/app/repositories"
	"github.com/josys/shop/app/requests"
)

type InvitationService = CRUD[models.Invitation, requests.CreateInvitation, requests.UpdateInvitation]

func NewInvitationService(db *gorm.DB) *InvitationService {
	return NewCRUD(repositories.New[models.Invitation](db), buildInvitation, applyInvitation)
}

// buildInvitation issues a fresh random token. Tokens cannot be chosen by
// clients and are never changed afterwards.
func buildInvitation(in requests.CreateInvitation) (models.Invitation, error) {
	inv := models.Invitation{
		Token:      uuid.NewString(),
		Email:      *in.Email,
		ExpiryDate: in.ExpiryDate.Time,
		UserID:     in.UserID,
	}
	if in.IsUsed != nil {
		inv.IsUsed = *in.IsUsed
	}
	return inv, nil
}

func applyInvitation(inv *models.Invitation, in requests.UpdateInvitation) error {
	if err := firstErr(
		set("email", in.Email, &inv.Email),
		setTime("expiry_date", in.ExpiryDate, &inv.ExpiryDate),
		set("is_used", in.IsUsed, &inv.IsUsed),
	); err != nil {
		return err
	}
	setNullable(in.UserID, &inv.UserID)
	return nil
}
