package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YoDarkol23/Absolute-Service/pkg/entity"
)

func TestAdminCreateCar(t *testing.T) {
	_, r, st := newTestAPI(t)

	resp := doJSON(t, r, http.MethodPost, "/admin/cars", map[string]any{
		"brand":     "BMW",
		"model":     "X5",
		"year":      2021,
		"price_usd": 45000,
	})
	require.Equal(t, http.StatusCreated, resp.Status)

	body := decodeBody(t, resp)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Car added successfully", body["message"])
	created := body["car"].(map[string]any)
	assert.Equal(t, float64(3), created["id"])

	assert.Len(t, st.List(entity.KindCar), 3)
}

func TestAdminCreateCar_MissingFields(t *testing.T) {
	_, r, st := newTestAPI(t)

	resp := doJSON(t, r, http.MethodPost, "/admin/cars", map[string]any{"brand": "BMW"})
	require.Equal(t, http.StatusBadRequest, resp.Status)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "Missing required fields:")
	assert.Len(t, st.List(entity.KindCar), 2)
}

func TestAdminCreate_ClientProvidedIDIgnored(t *testing.T) {
	_, r, _ := newTestAPI(t)

	resp := doJSON(t, r, http.MethodPost, "/admin/cars", map[string]any{
		"id":        99,
		"brand":     "BMW",
		"model":     "X5",
		"year":      2021,
		"price_usd": 45000,
	})
	require.Equal(t, http.StatusCreated, resp.Status)

	created := decodeBody(t, resp)["car"].(map[string]any)
	assert.Equal(t, float64(3), created["id"])
}

func TestAdminUpdateCar_TargetsIDNotPosition(t *testing.T) {
	_, r, st := newTestAPI(t)

	// Delete car 1 so car 2 becomes the first element.
	resp := r.Dispatch(reqFor(http.MethodDelete, "/admin/cars/1"))
	require.Equal(t, http.StatusOK, resp.Status)

	resp = doJSON(t, r, http.MethodPut, "/admin/cars/2", map[string]any{"price_usd": 17000})
	require.Equal(t, http.StatusOK, resp.Status)

	body := decodeBody(t, resp)
	assert.Equal(t, "Car updated successfully", body["message"])
	updated := body["car"].(map[string]any)
	assert.Equal(t, float64(2), updated["id"])
	assert.Equal(t, float64(17000), updated["price_usd"])
	// Fields absent from the body survive.
	assert.Equal(t, "Honda", updated["brand"])

	rec, err := st.Find(entity.KindCar, 2)
	require.NoError(t, err)
	price, _ := entity.AsFloat(rec["price_usd"])
	assert.Equal(t, 17000.0, price)
}

func TestAdminUpdateCar_UnknownID(t *testing.T) {
	_, r, _ := newTestAPI(t)

	resp := doJSON(t, r, http.MethodPut, "/admin/cars/77", map[string]any{"price_usd": 1})
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.JSONEq(t, `{"error":"Car with id 77 not found"}`, string(resp.Body))
}

func TestAdminDeleteCar_TwiceIsNotFound(t *testing.T) {
	_, r, _ := newTestAPI(t)

	resp := r.Dispatch(reqFor(http.MethodDelete, "/admin/cars/2"))
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "Car deleted successfully", decodeBody(t, resp)["message"])

	resp = r.Dispatch(reqFor(http.MethodDelete, "/admin/cars/2"))
	assert.Equal(t, http.StatusNotFound, resp.Status)
}

func TestAdminDeleteCar_InvalidIDSegment(t *testing.T) {
	_, r, _ := newTestAPI(t)

	resp := r.Dispatch(reqFor(http.MethodDelete, "/admin/cars/abc"))
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.JSONEq(t, `{"error":"Invalid id in path"}`, string(resp.Body))
}

func TestAdminCreateCity(t *testing.T) {
	_, r, _ := newTestAPI(t)

	resp := doJSON(t, r, http.MethodPost, "/admin/cities", map[string]any{
		"name":          "Kazan",
		"delivery_days": 10,
		"delivery_cost": 900,
	})
	require.Equal(t, http.StatusCreated, resp.Status)

	body := decodeBody(t, resp)
	assert.Equal(t, "City added successfully", body["message"])
	assert.Equal(t, "Kazan", body["city"].(map[string]any)["name"])
}

func TestAdminDeleteDocument_IDInBody(t *testing.T) {
	_, r, st := newTestAPI(t)

	resp := doJSON(t, r, http.MethodDelete, "/admin/documents", map[string]any{"id": 1})
	require.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "Document deleted successfully", decodeBody(t, resp)["message"])
	assert.Empty(t, st.List(entity.KindDocument))
}

func TestAdminDeleteDocument_MissingID(t *testing.T) {
	_, r, _ := newTestAPI(t)

	resp := doJSON(t, r, http.MethodDelete, "/admin/documents", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.JSONEq(t, `{"error":"Missing required field: id"}`, string(resp.Body))
}

func TestAdminCreate_EmptyBody(t *testing.T) {
	_, r, _ := newTestAPI(t)

	resp := doJSON(t, r, http.MethodPost, "/admin/cars", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.JSONEq(t, `{"error":"Empty request body"}`, string(resp.Body))
}

func TestClientRoutes_DoNotExposeAdmin(t *testing.T) {
	api, _, _ := newTestAPI(t)

	resp := doGet(t, api.ClientRoutes(), "/admin/cars", nil)
	assert.Equal(t, http.StatusNotFound, resp.Status)
}
