// Package handlers implements the HTTP endpoint surface over the
// entity store, filter engine and pricing engine. Handlers map a
// parsed request to a status and JSON body; they never touch the
// socket.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/YoDarkol23/Absolute-Service/internal/httpx"
	"github.com/YoDarkol23/Absolute-Service/internal/router"
	"github.com/YoDarkol23/Absolute-Service/internal/store"
	"github.com/YoDarkol23/Absolute-Service/pkg/entity"
	"github.com/YoDarkol23/Absolute-Service/pkg/pricing"
)

// Error messages returned to clients. Unexpected errors are logged
// server-side and answered with the generic message only.
const (
	errMsgInternal       = "Internal server error occurred"
	errMsgEmptyBody      = "Empty request body"
	errMsgBadLogin       = "Invalid username or password"
	errMsgMalformedLogin = "Malformed login request"
	errMsgIDsRequired    = "car_id and city_id are required"
)

// AuthConfig holds the credential pair and token signing secret.
type AuthConfig struct {
	Username string
	Password string
	// Secret signs session tokens. Must not be empty; the server
	// generates a random one when the config leaves it blank.
	Secret []byte
}

// API holds the handler dependencies.
type API struct {
	store *store.Store
	rates pricing.Rates
	auth  AuthConfig
	log   *slog.Logger
}

// New creates the handler set.
func New(st *store.Store, rates pricing.Rates, auth AuthConfig, log *slog.Logger) *API {
	if log == nil {
		log = slog.Default()
	}
	return &API{store: st, rates: rates, auth: auth, log: log}
}

// ClientRoutes returns the router for the public port.
func (a *API) ClientRoutes() *router.Router {
	r := router.New()
	a.registerClient(r)
	return r
}

// AdminRoutes returns the router for the admin port. Login lives here
// because the admin port is the gate for the whole admin surface.
func (a *API) AdminRoutes() *router.Router {
	r := router.New()
	a.registerAdmin(r)
	return r
}

// CombinedRoutes returns one router carrying both surfaces, used when
// the admin listener is disabled.
func (a *API) CombinedRoutes() *router.Router {
	r := router.New()
	a.registerClient(r)
	a.registerAdmin(r)
	return r
}

func (a *API) registerClient(r *router.Router) {
	r.Handle("GET", "/cars", a.handleListCars)
	r.Handle("GET", "/search", a.handleSearchQuery)
	r.Handle("POST", "/search", a.handleSearchBody)
	r.Handle("GET", "/cities", a.handleListCities)
	r.Handle("GET", "/documents", a.handleListDocuments)
	r.Handle("GET", "/delivery", a.handleDeliveryInfo)
	r.Handle("POST", "/calculate-delivery", a.handleCalculateDelivery)
}

func (a *API) registerAdmin(r *router.Router) {
	r.Handle("POST", "/admin/login", a.handleAdminLogin)

	r.Handle("GET", "/admin/cars", a.handleAdminList(entity.KindCar))
	r.Handle("POST", "/admin/cars", a.handleAdminCreate(entity.KindCar))
	r.HandleID("PUT", "/admin/cars", a.handleAdminUpdate(entity.KindCar))
	r.HandleID("DELETE", "/admin/cars", a.handleAdminDelete(entity.KindCar))

	r.Handle("GET", "/admin/cities", a.handleAdminList(entity.KindCity))
	r.Handle("POST", "/admin/cities", a.handleAdminCreate(entity.KindCity))
	r.HandleID("PUT", "/admin/cities", a.handleAdminUpdate(entity.KindCity))
	r.HandleID("DELETE", "/admin/cities", a.handleAdminDelete(entity.KindCity))

	r.Handle("GET", "/admin/documents", a.handleAdminListDocuments)
	r.Handle("POST", "/admin/documents", a.handleAdminCreate(entity.KindDocument))
	r.Handle("DELETE", "/admin/documents", a.handleAdminDeleteDocument)
}

// respondError maps an error to its canonical JSON response.
func (a *API) respondError(err error) httpx.Response {
	switch e := err.(type) {
	case *entity.ValidationError:
		return httpx.Error(http.StatusBadRequest, e.Error())
	case *store.NotFoundError:
		return httpx.Error(http.StatusNotFound, e.Error())
	}
	a.log.Error("request failed", "error", err)
	return httpx.Error(http.StatusInternalServerError, errMsgInternal)
}
