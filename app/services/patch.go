package services

import (
	"time"

	"github.com/josys/shop/app/requests"
)

// set copies a present value into dst. Null is rejected because the column
// is NOT NULL.
func set[T any](field string, o requests.Optional[T], dst *T) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return NotNull(field)
	}
	*dst = o.Value
	return nil
}

func setTime(field string, o requests.Optional[requests.Timestamp], dst *time.Time) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return NotNull(field)
	}
	*dst = o.Value.Time
	return nil
}

// setPtr is set for a NOT NULL column held in a pointer field.
func setPtr[T any](field string, o requests.Optional[T], dst **T) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		return NotNull(field)
	}
	v := o.Value
	*dst = &v
	return nil
}

// setNullable copies a present value into a nullable column; null clears it.
func setNullable[T any](o requests.Optional[T], dst **T) {
	if !o.Set {
		return
	}
	if o.Null {
		*dst = nil
		return
	}
	v := o.Value
	*dst = &v
}

// firstErr returns the first non-nil error.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
