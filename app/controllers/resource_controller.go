package controllers

import (
	"context"
	"net/http"

	"github.com/josys/shop/pkg/ctx"
	"github.com/josys/shop/pkg/resource"
	"github.com/josys/shop/pkg/response"
)

// Service is the CRUD contract a ResourceController drives.
type Service[T, C, P any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (T, error)
	Create(ctx context.Context, in C) (T, error)
	Update(ctx context.Context, id uint, patch P) (T, error)
	Delete(ctx context.Context, id uint) error
}

// Shape declares how a collection wraps its responses. Collections differ for
// compatibility with existing clients.
type Shape struct {
	// EnvelopeReads wraps GET responses as {status, message, data}.
	EnvelopeReads bool
	ListMessage   string
	ShowMessage   string
	// EnvelopeCreate wraps the 201 body as {status, data}.
	EnvelopeCreate bool
}

// ResourceController serves index/show/store/update/destroy for one entity.
type ResourceController[T, C, P any] struct {
	svc   Service[T, C, P]
	res   resource.Transformer[T]
	shape Shape
}

func NewResourceController[T, C, P any](svc Service[T, C, P], res resource.Transformer[T], shape Shape) *ResourceController[T, C, P] {
	return &ResourceController[T, C, P]{svc: svc, res: res, shape: shape}
}

func (c *ResourceController[T, C, P]) Index(cx *ctx.Context) {
	items, err := c.svc.List(cx.Context())
	if err != nil {
		writeError(cx, err)
		return
	}
	c.read(cx, c.shape.ListMessage, resource.Many(c.res, items))
}

func (c *ResourceController[T, C, P]) Show(cx *ctx.Context) {
	id, ok := cx.ParamUint("id")
	if !ok {
		notFound(cx)
		return
	}
	item, err := c.svc.Get(cx.Context(), id)
	if err != nil {
		writeError(cx, err)
		return
	}
	c.read(cx, c.shape.ShowMessage, resource.One(c.res, item))
}

func (c *ResourceController[T, C, P]) Store(cx *ctx.Context) {
	var in C
	if err := cx.BindJSON(&in); err != nil {
		writeError(cx, err)
		return
	}
	item, err := c.svc.Create(cx.Context(), in)
	if err != nil {
		writeError(cx, err)
		return
	}

	rec := resource.One(c.res, item)
	if c.shape.EnvelopeCreate {
		response.Created(cx.W, rec)
		return
	}
	cx.JSON(http.StatusCreated, rec)
}

func (c *ResourceController[T, C, P]) Update(cx *ctx.Context) {
	id, ok := cx.ParamUint("id")
	if !ok {
		notFound(cx)
		return
	}
	var patch P
	if err := cx.BindJSON(&patch); err != nil {
		writeError(cx, err)
		return
	}
	item, err := c.svc.Update(cx.Context(), id, patch)
	if err != nil {
		writeError(cx, err)
		return
	}
	cx.JSON(http.StatusOK, resource.One(c.res, item))
}

func (c *ResourceController[T, C, P]) Destroy(cx *ctx.Context) {
	id, ok := cx.ParamUint("id")
	if !ok {
		notFound(cx)
		return
	}
	if err := c.svc.Delete(cx.Context(), id); err != nil {
		writeError(cx, err)
		return
	}
	response.NoContent(cx.W)
}

func (c *ResourceController[T, C, P]) read(cx *ctx.Context, message string, data any) {
	if c.shape.EnvelopeReads {
		response.Success(cx.W, message, data)
		return
	}
	cx.JSON(http.StatusOK, data)
}
