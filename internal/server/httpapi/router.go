// Package httpapi serves the JSON routes /signup, /login, /add_address and
// /get_regular_routes on top of the credential and usage services.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/addrkeeper/internal/api"
	"github.com/dmitrijs2005/addrkeeper/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type credentialSvc interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) error
}

type usageSvc interface {
	RecordUsage(ctx context.Context, username, address string) error
	TopAddresses(ctx context.Context, username string, limit int) []string
}

type handlers struct {
	credentials credentialSvc
	usage       usageSvc
	logger      logging.Logger
}

// NewRouter builds the chi router. Each route accepts GET and POST with a
// JSON body.
func NewRouter(l logging.Logger, cs credentialSvc, us usageSvc, requestTimeout time.Duration) http.Handler {
	h := &handlers{credentials: cs, usage: us, logger: l}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(l))
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}
	r.Use(render.SetContentType(render.ContentTypeJSON))

	mount := func(path string, fn http.HandlerFunc) {
		r.Get(path, fn)
		r.Post(path, fn)
	}

	mount("/signup", h.signup)
	mount("/login", h.login)
	mount("/add_address", h.addAddress)
	mount("/get_regular_routes", h.topAddresses)

	return r
}

func (h *handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		h.logger.Info(r.Context(), "malformed request body", "path", r.URL.Path, "error", err,
			"request_id", middleware.GetReqID(r.Context()))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, api.GenericResponse{Success: false})
		return false
	}
	return true
}

func (h *handlers) signup(w http.ResponseWriter, r *http.Request) {
	var req api.Credentials
	if !h.decode(w, r, &req) {
		return
	}

	err := h.credentials.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn(r.Context(), "signup failed", "username", req.Username, "error", err,
			"request_id", middleware.GetReqID(r.Context()))
	}
	render.JSON(w, r, api.GenericResponse{Success: err == nil})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req api.Credentials
	if !h.decode(w, r, &req) {
		return
	}

	err := h.credentials.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Info(r.Context(), "login denied", "username", req.Username, "error", err,
			"request_id", middleware.GetReqID(r.Context()))
	}
	render.JSON(w, r, api.GenericResponse{Success: err == nil})
}

func (h *handlers) addAddress(w http.ResponseWriter, r *http.Request) {
	var req api.AddAddressRequest
	if !h.decode(w, r, &req) {
		return
	}

	if req.Login.Password == "" {
		render.JSON(w, r, api.GenericResponse{Success: false})
		return
	}

	err := h.usage.RecordUsage(r.Context(), req.Login.Username, req.Address)
	if err != nil {
		h.logger.Warn(r.Context(), "add address failed", "username", req.Login.Username, "error", err,
			"request_id", middleware.GetReqID(r.Context()))
	}
	render.JSON(w, r, api.GenericResponse{Success: err == nil})
}

// topAddresses accepts the login body of the other routes; the password is
// ignored.
func (h *handlers) topAddresses(w http.ResponseWriter, r *http.Request) {
	var req api.TopAddressesRequest
	if !h.decode(w, r, &req) {
		return
	}

	addresses := h.usage.TopAddresses(r.Context(), req.Username, int(req.Limit))
	render.JSON(w, r, api.AddressesResponse{Username: req.Username, Addresses: addresses})
}
