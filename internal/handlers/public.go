package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/YoDarkol23/Absolute-Service/internal/filter"
	"github.com/YoDarkol23/Absolute-Service/internal/httpx"
	"github.com/YoDarkol23/Absolute-Service/pkg/entity"
	"github.com/YoDarkol23/Absolute-Service/pkg/pricing"
)

// handleListCars serves GET /cars: the raw car collection.
func (a *API) handleListCars(_ *httpx.Request) httpx.Response {
	return httpx.JSON(http.StatusOK, recordsOrEmpty(a.store.List(entity.KindCar)))
}

// handleListCities serves GET /cities.
func (a *API) handleListCities(_ *httpx.Request) httpx.Response {
	return httpx.JSON(http.StatusOK, recordsOrEmpty(a.store.List(entity.KindCity)))
}

// handleListDocuments serves GET /documents with the wrapped shape the
// documents file uses.
func (a *API) handleListDocuments(_ *httpx.Request) httpx.Response {
	return httpx.JSON(http.StatusOK, map[string]any{
		"documents": recordsOrEmpty(a.store.List(entity.KindDocument)),
	})
}

// searchRequest is the POST /search body.
type searchRequest struct {
	Filters map[string]any `json:"filters"`
}

// searchResponse carries the match count and the matched records.
// Results are omitted when nothing matched, preserving the query-form
// response shape.
type searchResponse struct {
	Found   int             `json:"found"`
	Results []entity.Record `json:"results,omitempty"`
}

// handleSearchQuery serves GET /search?field=value&...: every
// parameter is an equality predicate.
func (a *API) handleSearchQuery(req *httpx.Request) httpx.Response {
	filters := filter.FromQuery(req.Query)
	return a.search(filters)
}

// handleSearchBody serves POST /search with structured filters
// supporting $gte and $lte.
func (a *API) handleSearchBody(req *httpx.Request) httpx.Response {
	if len(req.Body) == 0 {
		return httpx.Error(http.StatusBadRequest, errMsgEmptyBody)
	}
	var body searchRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return httpx.Error(http.StatusBadRequest, "Invalid JSON in request body")
	}
	return a.search(filter.FromBody(body.Filters))
}

func (a *API) search(filters []filter.Filter) httpx.Response {
	var results []entity.Record
	for _, rec := range a.store.List(entity.KindCar) {
		if filter.Matches(rec, filters) {
			results = append(results, rec)
		}
	}
	return httpx.JSON(http.StatusOK, searchResponse{Found: len(results), Results: results})
}

// deliveryStep is one stage of the standard delivery process.
type deliveryStep struct {
	Step        int    `json:"step"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// handleDeliveryInfo serves GET /delivery: the static description of
// the delivery pipeline shown to prospective customers.
func (a *API) handleDeliveryInfo(_ *httpx.Request) httpx.Response {
	return httpx.JSON(http.StatusOK, map[string]any{
		"progress": 0,
		"duration": "10-14 days",
		"cost":     "From 15,000 RUB",
		"process": []deliveryStep{
			{Step: 1, Status: "pending", Description: "Vehicle selection and contract signing"},
			{Step: 2, Status: "pending", Description: "Payment and document preparation"},
			{Step: 3, Status: "pending", Description: "Customs clearance"},
			{Step: 4, Status: "pending", Description: "Transportation to destination city"},
			{Step: 5, Status: "pending", Description: "Final registration and handover"},
		},
	})
}

// calculateRequest is the POST /calculate-delivery body.
type calculateRequest struct {
	CarID  int `json:"car_id"`
	CityID int `json:"city_id"`
}

// handleCalculateDelivery serves POST /calculate-delivery: looks up
// the car and city and returns the full pricing breakdown.
func (a *API) handleCalculateDelivery(req *httpx.Request) httpx.Response {
	var body calculateRequest
	if len(req.Body) > 0 {
		if err := json.Unmarshal(req.Body, &body); err != nil {
			return httpx.Error(http.StatusBadRequest, "Invalid JSON in request body")
		}
	}
	if body.CarID == 0 || body.CityID == 0 {
		return httpx.Error(http.StatusBadRequest, errMsgIDsRequired)
	}

	carRec, err := a.store.Find(entity.KindCar, body.CarID)
	if err != nil {
		return a.respondError(err)
	}
	cityRec, err := a.store.Find(entity.KindCity, body.CityID)
	if err != nil {
		return a.respondError(err)
	}

	result := pricing.Estimate(entity.CarFromRecord(carRec), entity.CityFromRecord(cityRec), a.rates)
	return httpx.JSON(http.StatusOK, result)
}

// recordsOrEmpty keeps list payloads as [] rather than null.
func recordsOrEmpty(records []entity.Record) []entity.Record {
	if records == nil {
		return []entity.Record{}
	}
	return records
}
