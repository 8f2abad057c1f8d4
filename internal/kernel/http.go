// Package kernel assembles the shop's HTTP handler: the global middleware
// stack, the metrics endpoint and every application route.
package kernel

import (
	"net/http"

	"gorm.io/gorm"

	gql "github.com/josys/shop/app/graphql"
	"github.com/josys/shop/app/routes"
	"github.com/josys/shop/app/services"
	"github.com/josys/shop/pkg/graphql"
	"github.com/josys/shop/pkg/metrics"
	"github.com/josys/shop/pkg/middleware"
	"github.com/josys/shop/pkg/reqid"
	"github.com/josys/shop/pkg/router"
)

// Options tune the kernel. The zero value allows every origin and applies no
// rate limit.
type Options struct {
	CORSOrigins []string
	Limiter     middleware.Limiter
}

type HTTPKernel struct {
	router *router.Router
}

// NewHTTPKernel wires the middleware stack, outermost first:
//
//  1. metrics, so latency covers everything below
//  2. panic recovery
//  3. request id, before anything logs
//  4. access log
//  5. CORS
//  6. rate limiting
func NewHTTPKernel(db *gorm.DB, opts Options) (*HTTPKernel, error) {
	svc := services.NewSet(db)
	schema, err := gql.NewSchema(svc)
	if err != nil {
		return nil, err
	}

	r := router.New()
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(opts.CORSOrigins...)))
	if opts.Limiter != nil {
		r.Use(middleware.RateLimit(opts.Limiter))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	r.Handle(http.MethodGet, "/metrics", "metrics", metrics.Handler())
	routes.Register(r, svc, graphql.Handler(schema))

	return &HTTPKernel{router: r}, nil
}

func (k *HTTPKernel) Handler() http.Handler {
	return k.router.Handler()
}

// Router exposes the route table, for route:list.
func (k *HTTPKernel) Router() *router.Router {
	return k.router
}
