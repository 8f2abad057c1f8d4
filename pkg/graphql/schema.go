// Package graphql serves a graphql-go schema over HTTP.
package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/josys/shop/pkg/bind"
	"github.com/josys/shop/pkg/response"
)

// NewSchema creates a read-only schema from a root query.
func NewSchema(query *graphql.Object) (graphql.Schema, error) {
	return graphql.NewSchema(graphql.SchemaConfig{
		Query: query,
	})
}

// Request is the standard GraphQL-over-HTTP POST body.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

// Handler executes POSTed queries against schema. Query errors are reported
// in the result's errors list with status 200; an unreadable body is a 400.
func Handler(schema graphql.Schema) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := bind.JSON(w, r, &req); err != nil {
			response.BadRequest(w, err.Error())
			return
		}
		if req.Query == "" {
			response.BadRequest(w, "query is required")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        r.Context(),
		})
		response.JSON(w, http.StatusOK, result)
	}
}
