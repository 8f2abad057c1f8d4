package kernel_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/internal/kernel"
	"github.com/josys/shop/pkg/database"
	"github.com/josys/shop/pkg/hash"
	"github.com/josys/shop/pkg/middleware"
)

func init() { hash.Cost = bcrypt.MinCost }

type app struct {
	t  *testing.T
	db *gorm.DB
	h  http.Handler
}

func newApp(t *testing.T, opts kernel.Options) *app {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := database.Open("sqlite", "file:"+name+"?mode=memory&cache=shared&_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	for _, m := range models.All() {
		require.NoError(t, db.AutoMigrate(m))
	}

	k, err := kernel.NewHTTPKernel(db, opts)
	require.NoError(t, err)
	return &app{t: t, db: db, h: k.Handler()}
}

func (a *app) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)
	return rec
}

// object decodes a JSON object response.
func object(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func list(t *testing.T, rec *httptest.ResponseRecorder) []any {
	t.Helper()
	var out []any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func keys(t *testing.T, body []byte) []string {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(string(body)))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var out []string
	for dec.More() {
		k, err := dec.Token()
		require.NoError(t, err)
		out = append(out, k.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	return out
}

const clerkBody = `{"user_name":"clerk","email":"clerk@example.com","password":"s3cret","role":"clerk","is_active":true,"confirmed_admin":false}`

func TestGreeting(t *testing.T) {
	a := newApp(t, kernel.Options{})

	rec := a.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Josys Shop!", rec.Body.String())
}

func TestStoreLifecycle(t *testing.T) {
	a := newApp(t, kernel.Options{})

	rec := a.do(http.MethodGet, "/stores", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = a.do(http.MethodPost, "/stores", `{"store_name":"Main Warehouse","location":"Nairobi"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"store_id":1,"store_name":"Main Warehouse","location":"Nairobi"}`, rec.Body.String())
	assert.Equal(t, []string{"store_id", "store_name", "location"}, keys(t, rec.Body.Bytes()))

	rec = a.do(http.MethodGet, "/stores/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"store_id":1,"store_name":"Main Warehouse","location":"Nairobi"}`, rec.Body.String())

	rec = a.do(http.MethodPut, "/stores/1", `{"location":"Kisumu"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"store_id":1,"store_name":"Main Warehouse","location":"Kisumu"}`, rec.Body.String())

	rec = a.do(http.MethodDelete, "/stores/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = a.do(http.MethodGet, "/stores/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUnknownIdsAreNotFound(t *testing.T) {
	a := newApp(t, kernel.Options{})

	for _, path := range []string{"/users/9", "/invitations/9", "/stores/9", "/products/9", "/inventory/9", "/supply_requests/9", "/payments/9", "/stores/abc", "/stores/0"} {
		assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, path, "").Code, path)
	}
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodPut, "/products/9", `{"product_name":"x"}`).Code)
	assert.Equal(t, http.StatusNotFound, a.do(http.MethodDelete, "/payments/9", "").Code)
}

func TestUsersAreEnveloped(t *testing.T) {
	a := newApp(t, kernel.Options{})

	rec := a.do(http.MethodPost, "/users", clerkBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := object(t, rec)
	assert.Equal(t, "success", created["status"])
	assert.NotContains(t, created, "message")
	user := created["data"].(map[string]any)
	assert.Equal(t, float64(1), user["user_id"])
	assert.Equal(t, false, user["confirmed_admin"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")

	rec = a.do(http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := object(t, rec)
	assert.Equal(t, "success", all["status"])
	assert.Equal(t, "Users retrieved successfully", all["message"])
	assert.Len(t, all["data"], 1)

	rec = a.do(http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	one := object(t, rec)
	assert.Equal(t, "User retrieved successfully", one["message"])
	assert.Equal(t, "clerk@example.com", one["data"].(map[string]any)["email"])

	rec = a.do(http.MethodPut, "/users/1", `{"role":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := object(t, rec)
	assert.Equal(t, "admin", updated["role"])
	assert.Equal(t, "clerk", updated["user_name"])

	var stored models.User
	require.NoError(t, a.db.First(&stored, 1).Error)
	assert.True(t, hash.Check(stored.PasswordHash, "s3cret"))
}

func TestUserCreateNamesFirstMissingField(t *testing.T) {
	a := newApp(t, kernel.Options{})

	cases := []struct {
		body  string
		field string
	}{
		{`{}`, "user_name"},
		{`{"user_name":"jo"}`, "email"},
		{`{"user_name":"jo","email":"jo@example.com"}`, "password"},
		{`{"user_name":"jo","email":"jo@example.com","password":"x"}`, "role"},
		{`{"user_name":"jo","email":"jo@example.com","password":"x","role":"clerk"}`, "is_active"},
		{`{"user_name":"jo","email":"jo@example.com","password":"x","role":"clerk","is_active":false}`, "confirmed_admin"},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			rec := a.do(http.MethodPost, "/users", tc.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"status":"error","message":"%s is required"}`, tc.field), rec.Body.String())
		})
	}

	var n int64
	require.NoError(t, a.db.Model(&models.User{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestDuplicateEmailConflicts(t *testing.T) {
	a := newApp(t, kernel.Options{})

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/users", clerkBody).Code)
	rec := a.do(http.MethodPost, "/users", clerkBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", object(t, rec)["status"])
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	a := newApp(t, kernel.Options{})

	rec := a.do(http.MethodPost, "/stores", `{"store_name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", object(t, rec)["status"])

	rec = a.do(http.MethodPost, "/stores", `{"store_name":42,"location":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, object(t, rec)["message"], "store_name")
}

func TestInvitationsEnvelopeReadsOnly(t *testing.T) {
	a := newApp(t, kernel.Options{})

	expiry := time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339)
	rec := a.do(http.MethodPost, "/invitations", fmt.Sprintf(`{"email":"a@example.com","expiry_date":%q,"token":"chosen"}`, expiry))
	require.Equal(t, http.StatusCreated, rec.Code)
	first := object(t, rec)
	assert.NotContains(t, first, "status")
	assert.NotEqual(t, "chosen", first["token"])
	assert.Equal(t, false, first["is_used"])
	assert.Nil(t, first["user_id"])
	assert.Equal(t,
		[]string{"invitation_id", "token", "email", "created_at", "expiry_date", "is_used", "user_id"},
		keys(t, rec.Body.Bytes()))

	rec = a.do(http.MethodPost, "/invitations", fmt.Sprintf(`{"email":"b@example.com","expiry_date":%q}`, expiry))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEqual(t, first["token"], object(t, rec)["token"])

	rec = a.do(http.MethodGet, "/invitations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := object(t, rec)
	assert.Equal(t, "Invitations retrieved successfully", all["message"])
	assert.Len(t, all["data"], 2)

	rec = a.do(http.MethodGet, "/invitations/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Invitation retrieved successfully", object(t, rec)["message"])

	rec = a.do(http.MethodPut, "/invitations/1", `{"is_used":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := object(t, rec)
	assert.Equal(t, true, updated["is_used"])
	assert.Equal(t, first["token"], updated["token"])
}

// The walkthrough a procurement clerk follows: stock a warehouse, request a
// resupply, approve it and record the supplier payment.
func TestProcurementFlow(t *testing.T) {
	a := newApp(t, kernel.Options{})

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/stores", `{"store_name":"Main Warehouse","location":"Nairobi"}`).Code)

	rec := a.do(http.MethodPost, "/products", `{"product_name":"Product1","buying_price":100,"selling_price":"150.50"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	product := object(t, rec)
	assert.Equal(t, "100", product["buying_price"])
	assert.Equal(t, "150.5", product["selling_price"])

	rec = a.do(http.MethodPost, "/inventory", `{"product_id":1,"store_id":1,"quantity_received":100,"quantity_in_stock":100,"quantity_spoilt":0,"payment_status":"paid"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t,
		[]string{"inventory_id", "product_id", "store_id", "quantity_received", "quantity_in_stock", "quantity_spoilt", "payment_status"},
		keys(t, rec.Body.Bytes()))

	rec = a.do(http.MethodPost, "/inventory", `{"product_id":7,"store_id":1,"quantity_received":1,"quantity_in_stock":1,"quantity_spoilt":0,"payment_status":"paid"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/users", clerkBody).Code)

	rec = a.do(http.MethodPost, "/supply_requests", `{"inventory_id":1,"user_id":1,"status":"pending"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sr := object(t, rec)
	assert.NotEmpty(t, sr["request_date"])

	rec = a.do(http.MethodPut, "/supply_requests/1", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "approved", object(t, rec)["status"])
	assert.Equal(t, sr["request_date"], object(t, rec)["request_date"])

	rec = a.do(http.MethodGet, "/inventory/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(100), object(t, rec)["quantity_in_stock"])

	rec = a.do(http.MethodPost, "/payments", `{"supplier_name":"Supplier1","invoice_number":"INV001","amount":1500,"payment_date":"2024-08-01T10:00:00","payment_status":"paid"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	payment := object(t, rec)
	assert.Equal(t, "1500", payment["amount"])
	assert.Equal(t, "2024-08-01T10:00:00Z", payment["payment_date"])

	rec = a.do(http.MethodPut, "/payments/1", `{"payment_status":null}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "payment_status cannot be null", object(t, rec)["message"])

	rec = a.do(http.MethodGet, "/payments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, list(t, rec), 1)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newApp(t, kernel.Options{})
	a.do(http.MethodGet, "/stores", "")

	rec := a.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shop_http_requests_total")
	assert.Contains(t, rec.Body.String(), `path="/stores"`)
}

func TestGraphQLEndpoint(t *testing.T) {
	a := newApp(t, kernel.Options{})
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/stores", `{"store_name":"Main Warehouse","location":"Nairobi"}`).Code)

	rec := a.do(http.MethodPost, "/graphql", `{"query":"{ stores { store_id store_name } store(id: 1) { location } }"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"data":{"stores":[{"store_id":1,"store_name":"Main Warehouse"}],"store":{"location":"Nairobi"}}}`,
		rec.Body.String())
}

func TestRateLimitOption(t *testing.T) {
	a := newApp(t, kernel.Options{Limiter: middleware.NewMemoryLimiter(2, time.Minute)})

	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusOK, a.do(http.MethodGet, "/", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, a.do(http.MethodGet, "/", "").Code)
}

func TestRouteTable(t *testing.T) {
	k, err := kernel.NewHTTPKernel(nil, kernel.Options{})
	require.NoError(t, err)

	names := map[string]bool{}
	for _, ri := range k.Router().Routes() {
		names[ri.Name] = true
	}
	for _, n := range []string{"home", "metrics", "graphql", "users.index", "invitations.show", "stores.store", "products.update", "inventory.destroy", "supply_requests.index", "payments.show"} {
		assert.True(t, names[n], n)
	}
}

// read decodes a record, unwrapping {status, data} when enveloped.
func read(t *testing.T, rec *httptest.ResponseRecorder, enveloped bool) map[string]any {
	t.Helper()
	out := object(t, rec)
	if !enveloped {
		return out
	}
	assert.Equal(t, "success", out["status"])
	data, ok := out["data"].(map[string]any)
	require.True(t, ok, rec.Body.String())
	return data
}

func TestEveryCollectionLifecycle(t *testing.T) {
	var (
		store     = `{"store_name":"Main Warehouse","location":"Nairobi"}`
		product   = `{"product_name":"Product1","buying_price":100,"selling_price":"150.50"}`
		inventory = `{"product_id":1,"store_id":1,"quantity_received":100,"quantity_in_stock":100,"quantity_spoilt":0,"payment_status":"paid"}`
		expiry    = time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second).Format(time.RFC3339)
	)

	cases := []struct {
		path           string
		key            string
		parents        [][2]string
		create         string
		envelopeCreate bool
		envelopeReads  bool
		patch          string
		field          string
		want           any
	}{
		{
			path: "/users", key: "user_id",
			create:         clerkBody,
			envelopeCreate: true, envelopeReads: true,
			patch: `{"role":"admin"}`, field: "role", want: "admin",
		},
		{
			path: "/invitations", key: "invitation_id",
			create:        fmt.Sprintf(`{"email":"a@example.com","expiry_date":%q}`, expiry),
			envelopeReads: true,
			patch:         `{"email":"b@example.com"}`, field: "email", want: "b@example.com",
		},
		{
			path: "/stores", key: "store_id",
			create: store,
			patch:  `{"location":"Kisumu"}`, field: "location", want: "Kisumu",
		},
		{
			path: "/products", key: "product_id",
			create: product,
			patch:  `{"selling_price":"175.25"}`, field: "selling_price", want: "175.25",
		},
		{
			path: "/inventory", key: "inventory_id",
			parents: [][2]string{{"/stores", store}, {"/products", product}},
			create:  inventory,
			patch:   `{"quantity_spoilt":3}`, field: "quantity_spoilt", want: float64(3),
		},
		{
			path: "/supply_requests", key: "request_id",
			parents: [][2]string{{"/stores", store}, {"/products", product}, {"/inventory", inventory}, {"/users", clerkBody}},
			create:  `{"inventory_id":1,"user_id":1,"status":"pending"}`,
			patch:   `{"status":"approved"}`, field: "status", want: "approved",
		},
		{
			path: "/payments", key: "payment_id",
			create: `{"supplier_name":"Supplier1","invoice_number":"INV001","amount":"1500","payment_status":"not paid"}`,
			patch:  `{"payment_status":"paid"}`, field: "payment_status", want: "paid",
		},
	}

	for _, tc := range cases {
		t.Run(strings.TrimPrefix(tc.path, "/"), func(t *testing.T) {
			a := newApp(t, kernel.Options{})
			for _, p := range tc.parents {
				require.Equal(t, http.StatusCreated, a.do(http.MethodPost, p[0], p[1]).Code, p[0])
			}

			rec := a.do(http.MethodPost, tc.path, tc.create)
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			created := read(t, rec, tc.envelopeCreate)
			item := fmt.Sprintf("%s/%v", tc.path, created[tc.key])

			rec = a.do(http.MethodGet, item, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, created, read(t, rec, tc.envelopeReads))

			rec = a.do(http.MethodPut, item, tc.patch)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			want := map[string]any{}
			for k, v := range created {
				want[k] = v
			}
			want[tc.field] = tc.want
			assert.Equal(t, want, object(t, rec))

			rec = a.do(http.MethodGet, item, "")
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, want, read(t, rec, tc.envelopeReads))

			rec = a.do(http.MethodDelete, item, "")
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, item, "").Code)
		})
	}
}

func TestOversizedValuesAreRejected(t *testing.T) {
	a := newApp(t, kernel.Options{})

	for _, price := range []string{`"1e40"`, `"1e400000000"`, `12345678901`} {
		rec := a.do(http.MethodPost, "/products", `{"product_name":"Product1","buying_price":100,"selling_price":`+price+`}`)
		require.Equal(t, http.StatusBadRequest, rec.Code, price)
		assert.JSONEq(t, `{"status":"error","message":"selling_price is too long"}`, rec.Body.String())
	}

	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/products", `{"product_name":"Product1","buying_price":100,"selling_price":150}`).Code)
	rec := a.do(http.MethodPut, "/products/1", `{"buying_price":"1e12"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "buying_price is too long", object(t, rec)["message"])

	rec = a.do(http.MethodGet, "/products/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "100", object(t, rec)["buying_price"])

	rec = a.do(http.MethodPost, "/payments", `{"supplier_name":"Supplier1","invoice_number":"INV001","amount":"1e200","payment_status":"paid"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "amount is too long", object(t, rec)["message"])

	rec = a.do(http.MethodPost, "/users", fmt.Sprintf(`{"user_name":%q,"email":"jo@example.com","password":"x","role":"clerk","is_active":true,"confirmed_admin":false}`, strings.Repeat("j", 26)))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user_name is too long", object(t, rec)["message"])

	var n int64
	require.NoError(t, a.db.Model(&models.User{}).Count(&n).Error)
	assert.Zero(t, n)
}
