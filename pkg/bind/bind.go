// Package bind decodes an HTTP request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/josys/shop/config"
)

// ErrMalformed is wrapped by every decode failure so callers can answer 400.
var ErrMalformed = errors.New("malformed request body")

// JSON decodes r.Body as a single JSON value into dest. The body is capped at
// MAX_BODY_BYTES. Unknown fields are ignored.
func JSON(w http.ResponseWriter, r *http.Request, dest any) error {
	return decode(http.MaxBytesReader(w, r.Body, config.MaxBodyBytes()), dest)
}

func decode(body io.Reader, dest any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("%w: body too large (max %d bytes)", ErrMalformed, maxErr.Limit)
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: body is empty", ErrMalformed)
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return fmt.Errorf("%w: %s has the wrong type", ErrMalformed, typeErr.Field)
		default:
			return fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}
	if dec.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformed)
	}
	return nil
}
