// Package models declares the gorm entities of the shop database.
package models

// All lists every model in the order their tables must be created.
func All() []any {
	return []any{
		&User{},
		&Store{},
		&Product{},
		&Invitation{},
		&Inventory{},
		&SupplyRequest{},
		&Payment{},
	}
}
