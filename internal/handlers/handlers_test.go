package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/YoDarkol23/Absolute-Service/internal/httpx"
	"github.com/YoDarkol23/Absolute-Service/internal/router"
	"github.com/YoDarkol23/Absolute-Service/internal/store"
	"github.com/YoDarkol23/Absolute-Service/pkg/entity"
	"github.com/YoDarkol23/Absolute-Service/pkg/logging"
	"github.com/YoDarkol23/Absolute-Service/pkg/pricing"
)

var testRates = pricing.Rates{USDToRUB: 90, EURToRUB: 100, CurrentYear: 2025}

var testAuth = AuthConfig{
	Username: "admin",
	Password: "123",
	Secret:   []byte("test-secret"),
}

// newTestAPI builds an API over a temp-dir store seeded with a small
// fixture set and returns it with the combined router.
func newTestAPI(t *testing.T) (*API, *router.Router, *store.Store) {
	t.Helper()
	st := store.New(t.TempDir(), logging.Nop())

	seed := []struct {
		kind entity.Kind
		rec  entity.Record
	}{
		{entity.KindCar, entity.Record{"brand": "Toyota", "model": "Camry", "year": 2022, "price_usd": 28000, "engine_volume": 2.5, "horsepower": 200}},
		{entity.KindCar, entity.Record{"brand": "Honda", "model": "Civic", "year": 2019, "price_usd": 18000, "engine_volume": 1.5, "horsepower": 158}},
		{entity.KindCity, entity.Record{"name": "Moscow", "delivery_days": 14, "delivery_cost": 1500}},
		{entity.KindDocument, entity.Record{"category": "purchase", "name": "Sales contract"}},
	}
	for _, s := range seed {
		_, err := st.Insert(s.kind, s.rec)
		require.NoError(t, err)
	}

	api := New(st, testRates, testAuth, logging.Nop())
	return api, api.CombinedRoutes(), st
}

func doJSON(t *testing.T, r *router.Router, method, path string, body any) httpx.Response {
	t.Helper()
	req := &httpx.Request{Method: method, Path: path}
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req.Body = data
	}
	return r.Dispatch(req)
}

func decodeBody(t *testing.T, resp httpx.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body, &out))
	return out
}

func doGet(t *testing.T, r *router.Router, path string, query map[string]string) httpx.Response {
	t.Helper()
	return r.Dispatch(&httpx.Request{Method: http.MethodGet, Path: path, Query: query})
}

func reqFor(method, path string) *httpx.Request {
	return &httpx.Request{Method: method, Path: path}
}
