package controllers

import (
	"errors"
	"net/http"

	"github.com/josys/shop/app/services"
	"github.com/josys/shop/pkg/bind"
	"github.com/josys/shop/pkg/ctx"
	"github.com/josys/shop/pkg/logger"
	"github.com/josys/shop/pkg/response"
)

// writeError maps a service error to its HTTP response. Unknown errors are
// logged and hidden behind a generic 500.
func writeError(cx *ctx.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(cx.W)
	case errors.As(err, &verr):
		response.BadRequest(cx.W, verr.Message)
	case errors.Is(err, bind.ErrMalformed):
		response.BadRequest(cx.W, err.Error())
	case errors.Is(err, services.ErrConflict):
		response.Conflict(cx.W, err.Error())
	default:
		logger.WithCtx(cx.Context()).Error("request failed",
			"method", cx.R.Method,
			"path", cx.R.URL.Path,
			"error", err,
		)
		response.InternalError(cx.W)
	}
}

// notFound answers ids that are not positive integers.
func notFound(cx *ctx.Context) {
	cx.Status(http.StatusNotFound)
}
