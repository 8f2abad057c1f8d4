package controllers

import (
	"net/http"

	"github.com/josys/shop/pkg/ctx"
)

const greeting = "Welcome to Josys Shop!"

func Home(cx *ctx.Context) {
	cx.String(http.StatusOK, "%s", greeting)
}
