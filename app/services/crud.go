// Package services holds the CRUD rules of every shop entity.
//
// Each entity is a CRUD[T, C, P] built from two functions: build turns a
// create body C into a new model T, and apply merges a patch P into an
// existing one.
package services

import (
	"context"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/app/repositories"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(productWidths, models.Product{})
	v.RegisterStructValidation(paymentWidths, models.Payment{})
	return v
}

// checkColumns rejects model values that do not fit their columns.
func checkColumns(ctx context.Context, item any) error {
	if err := validate.StructCtx(ctx, item); err != nil {
		return firstInvalid(err)
	}
	return nil
}

type CRUD[T, C, P any] struct {
	repo  *repositories.Repository[T]
	build func(C) (T, error)
	apply func(*T, P) error
}

func NewCRUD[T, C, P any](repo *repositories.Repository[T], build func(C) (T, error), apply func(*T, P) error) *CRUD[T, C, P] {
	return &CRUD[T, C, P]{repo: repo, build: build, apply: apply}
}

func (s *CRUD[T, C, P]) List(ctx context.Context) ([]T, error) {
	return s.repo.All(ctx)
}

func (s *CRUD[T, C, P]) Get(ctx context.Context, id uint) (T, error) {
	return s.repo.Find(ctx, id)
}

// Create checks that every required field is present, builds the model and
// inserts it. Nothing is written when validation fails.
func (s *CRUD[T, C, P]) Create(ctx context.Context, in C) (T, error) {
	var zero T
	if err := validate.StructCtx(ctx, in); err != nil {
		return zero, firstInvalid(err)
	}

	item, err := s.build(in)
	if err != nil {
		return zero, err
	}
	if err := checkColumns(ctx, &item); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, &item); err != nil {
		return zero, err
	}
	return item, nil
}

// Update changes only the fields present in patch.
func (s *CRUD[T, C, P]) Update(ctx context.Context, id uint, patch P) (T, error) {
	var zero T
	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := s.apply(&item, patch); err != nil {
		return zero, err
	}
	if err := checkColumns(ctx, &item); err != nil {
		return zero, err
	}
	if err := s.repo.Save(ctx, &item); err != nil {
		return zero, err
	}
	return item, nil
}

func (s *CRUD[T, C, P]) Delete(ctx context.Context, id uint) error {
	item, err := s.repo.Find(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, &item)
}

// Set holds one service per entity, sharing a database handle.
type Set struct {
	Users          *UserService
	Invitations    *InvitationService
	Stores         *StoreService
	Products       *ProductService
	Inventory      *InventoryService
	SupplyRequests *SupplyRequestService
	Payments       *PaymentService
}

func NewSet(db *gorm.DB) *Set {
	return &Set{
		Users:          NewUserService(db),
		Invitations:    NewInvitationService(db),
		Stores:         NewStoreService(db),
		Products:       NewProductService(db),
		Inventory:      NewInventoryService(db),
		SupplyRequests: NewSupplyRequestService(db),
		Payments:       NewPaymentService(db),
	}
}
