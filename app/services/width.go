package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/josys/shop/app/models"
)

// decimalWidth bounds the length of d.String() without rendering it. An
// exponent of 1e9 would otherwise expand to a billion digits.
func decimalWidth(d decimal.Decimal) int {
	digits := d.NumDigits()
	exp := int(d.Exponent())

	var w int
	switch {
	case exp >= 0:
		w = digits + exp
	case -exp >= digits:
		w = -exp + 2 // "0." and leading zeros
	default:
		w = digits + 1 // decimal point
	}
	if d.Sign() < 0 {
		w++
	}
	return w
}

// fitsWidth reports whether d renders in at most width characters. The bound
// is checked first; trailing zeros can make the rendered string shorter.
func fitsWidth(d decimal.Decimal, width int) bool {
	bound := decimalWidth(d)
	if bound <= width {
		return true
	}
	if bound > 4*width+64 {
		return false
	}
	return len(d.String()) <= width
}

func productWidths(sl validator.StructLevel) {
	p := sl.Current().Interface().(models.Product)
	if !fitsWidth(p.BuyingPrice, models.PriceWidth) {
		sl.ReportError(p.BuyingPrice, "buying_price", "BuyingPrice", "width", "")
	}
	if !fitsWidth(p.SellingPrice, models.PriceWidth) {
		sl.ReportError(p.SellingPrice, "selling_price", "SellingPrice", "width", "")
	}
}

func paymentWidths(sl validator.StructLevel) {
	p := sl.Current().Interface().(models.Payment)
	if !fitsWidth(p.Amount, models.AmountWidth) {
		sl.ReportError(p.Amount, "amount", "Amount", "width", "")
	}
}
