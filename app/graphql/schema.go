// Package graphql exposes read-only queries over every shop entity. Results
// come from the same services and transformers as the REST API.
package graphql

import (
	"context"
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/app/resources"
	"github.com/josys/shop/app/services"
	shopgraphql "github.com/josys/shop/pkg/graphql"
	"github.com/josys/shop/pkg/resource"
)

type column struct {
	name string
	typ  graphql.Output
}

func cols(names []string, typ graphql.Output) []column {
	out := make([]column, len(names))
	for i, n := range names {
		out[i] = column{name: n, typ: typ}
	}
	return out
}

func object(name string, columns ...[]column) *graphql.Object {
	fields := graphql.Fields{}
	for _, group := range columns {
		for _, c := range group {
			fields[c.name] = &graphql.Field{Type: c.typ}
		}
	}
	return graphql.NewObject(graphql.ObjectConfig{Name: name, Fields: fields})
}

type reader[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id uint) (T, error)
}

// register adds a list field and a by-id field for one entity. Records are
// resolved as maps so the default resolver can read them by key.
func register[T any](fields graphql.Fields, listName, itemName string, typ *graphql.Object, svc reader[T], res resource.Transformer[T]) {
	fields[listName] = &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(typ))),
		Resolve: func(p graphql.ResolveParams) (any, error) {
			items, err := svc.List(p.Context)
			if err != nil {
				return nil, err
			}
			out := make([]map[string]any, 0, len(items))
			for _, rec := range resource.Many(res, items) {
				out = append(out, rec.Map())
			}
			return out, nil
		},
	}
	fields[itemName] = &graphql.Field{
		Type: typ,
		Args: graphql.FieldConfigArgument{
			"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
		Resolve: func(p graphql.ResolveParams) (any, error) {
			id, _ := p.Args["id"].(int)
			if id <= 0 {
				return nil, nil
			}
			item, err := svc.Get(p.Context, uint(id))
			if errors.Is(err, services.ErrNotFound) {
				return nil, nil
			}
			if err != nil {
				return nil, err
			}
			return resource.One(res, item).Map(), nil
		},
	}
}

// NewSchema builds the query root over svc.
func NewSchema(svc *services.Set) (graphql.Schema, error) {
	var (
		id   = graphql.NewNonNull(graphql.Int)
		str  = graphql.NewNonNull(graphql.String)
		flag = graphql.NewNonNull(graphql.Boolean)
		// Float keeps quantities above 2^31, which Int rejects.
		qty = graphql.NewNonNull(graphql.Float)
	)

	user := object("User",
		cols([]string{"user_id"}, id),
		cols([]string{"user_name", "email", "role"}, str),
		cols([]string{"is_active", "confirmed_admin"}, flag),
	)
	invitation := object("Invitation",
		cols([]string{"invitation_id"}, id),
		cols([]string{"token", "email", "created_at", "expiry_date"}, str),
		cols([]string{"is_used"}, flag),
		cols([]string{"user_id"}, graphql.Int),
	)
	store := object("Store",
		cols([]string{"store_id"}, id),
		cols([]string{"store_name", "location"}, str),
	)
	product := object("Product",
		cols([]string{"product_id"}, id),
		cols([]string{"product_name", "buying_price", "selling_price"}, str),
	)
	inventory := object("Inventory",
		cols([]string{"inventory_id", "product_id", "store_id"}, id),
		cols([]string{"quantity_received", "quantity_in_stock", "quantity_spoilt"}, qty),
		cols([]string{"payment_status"}, str),
	)
	supplyRequest := object("SupplyRequest",
		cols([]string{"request_id", "inventory_id", "user_id"}, id),
		cols([]string{"request_date", "status"}, str),
	)
	payment := object("Payment",
		cols([]string{"payment_id"}, id),
		cols([]string{"supplier_name", "invoice_number", "amount", "payment_date", "payment_status"}, str),
	)

	fields := graphql.Fields{}
	register[models.User](fields, "users", "user", user, svc.Users, resources.UserResource{})
	register[models.Invitation](fields, "invitations", "invitation", invitation, svc.Invitations, resources.InvitationResource{})
	register[models.Store](fields, "stores", "store", store, svc.Stores, resources.StoreResource{})
	register[models.Product](fields, "products", "product", product, svc.Products, resources.ProductResource{})
	register[models.Inventory](fields, "inventory", "inventoryItem", inventory, svc.Inventory, resources.InventoryResource{})
	register[models.SupplyRequest](fields, "supplyRequests", "supplyRequest", supplyRequest, svc.SupplyRequests, resources.SupplyRequestResource{})
	register[models.Payment](fields, "payments", "payment", payment, svc.Payments, resources.PaymentResource{})

	return shopgraphql.NewSchema(graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: fields}))
}
