// Package migrations holds the schema migrations. Each file registers its
// migrations from init(); cmd/shop imports the package for that side effect.
package migrations
