// Package routes declares the shop's HTTP surface.
package routes

import (
	"net/http"

	"github.com/josys/shop/app/controllers"
	"github.com/josys/shop/app/resources"
	"github.com/josys/shop/app/services"
	"github.com/josys/shop/pkg/ctx"
	"github.com/josys/shop/pkg/resource"
	"github.com/josys/shop/pkg/router"
)

const idParam = "/{id:[0-9]+}"

type crud interface {
	Index(cx *ctx.Context)
	Show(cx *ctx.Context)
	Store(cx *ctx.Context)
	Update(cx *ctx.Context)
	Destroy(cx *ctx.Context)
}

// resourceRoutes registers the five CRUD routes of one collection. Route
// names follow "<name>.<action>".
func resourceRoutes(r *router.Router, path, name string, c crud) {
	g := r.Group(path)
	g.Get("", name+".index", ctx.Wrap(c.Index))
	g.Post("", name+".store", ctx.Wrap(c.Store))
	g.Get(idParam, name+".show", ctx.Wrap(c.Show))
	g.Put(idParam, name+".update", ctx.Wrap(c.Update))
	g.Delete(idParam, name+".destroy", ctx.Wrap(c.Destroy))
}

func controller[T, C, P any](svc *services.CRUD[T, C, P], res resource.Transformer[T], shape controllers.Shape) crud {
	return controllers.NewResourceController[T, C, P](svc, res, shape)
}

// Register mounts the greeting, every entity collection and, when gql is
// non-nil, the GraphQL endpoint.
func Register(r *router.Router, svc *services.Set, gql http.Handler) {
	r.Get("/", "home", ctx.Wrap(controllers.Home))

	resourceRoutes(r, "/users", "users", controller(svc.Users, resources.UserResource{}, controllers.Shape{
		EnvelopeReads:  true,
		ListMessage:    "Users retrieved successfully",
		ShowMessage:    "User retrieved successfully",
		EnvelopeCreate: true,
	}))
	resourceRoutes(r, "/invitations", "invitations", controller(svc.Invitations, resources.InvitationResource{}, controllers.Shape{
		EnvelopeReads: true,
		ListMessage:   "Invitations retrieved successfully",
		ShowMessage:   "Invitation retrieved successfully",
	}))
	resourceRoutes(r, "/stores", "stores", controller(svc.Stores, resources.StoreResource{}, controllers.Shape{}))
	resourceRoutes(r, "/products", "products", controller(svc.Products, resources.ProductResource{}, controllers.Shape{}))
	resourceRoutes(r, "/inventory", "inventory", controller(svc.Inventory, resources.InventoryResource{}, controllers.Shape{}))
	resourceRoutes(r, "/supply_requests", "supply_requests", controller(svc.SupplyRequests, resources.SupplyRequestResource{}, controllers.Shape{}))
	resourceRoutes(r, "/payments", "payments", controller(svc.Payments, resources.PaymentResource{}, controllers.Shape{}))

	if gql != nil {
		r.Handle(http.MethodPost, "/graphql", "graphql", gql)
	}
}
