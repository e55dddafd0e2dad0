package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/addrkeeper/internal/common"
	"github.com/dmitrijs2005/addrkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCredentials struct {
	registerErr error
	authErr     error
}

func (f *fakeCredentials) Register(context.Context, string, string) error { return f.registerErr }

func (f *fakeCredentials) Authenticate(context.Context, string, string) error { return f.authErr }

type fakeUsage struct {
	recordErr error
	recorded  []string
	top       []string
	lastUser  string
	lastLimit int
}

func (f *fakeUsage) RecordUsage(_ context.Context, username, address string) error {
	f.recorded = append(f.recorded, username+"|"+address)
	return f.recordErr
}

func (f *fakeUsage) TopAddresses(_ context.Context, username string, limit int) []string {
	f.lastUser = username
	f.lastLimit = limit
	if f.top == nil {
		return []string{}
	}
	return f.top
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSignup(t *testing.T) {
	h := NewRouter(logging.Nop{}, &fakeCredentials{}, &fakeUsage{}, time.Second)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		rec := do(t, h, method, "/signup", `{"username":"alice","password":"secret1"}`)
		require.Equal(t, http.StatusOK, rec.Code, method)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	}

	h = NewRouter(logging.Nop{}, &fakeCredentials{registerErr: common.ErrDuplicate}, &fakeUsage{}, time.Second)
	rec := do(t, h, http.MethodPost, "/signup", `{"username":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	h := NewRouter(logging.Nop{}, &fakeCredentials{}, &fakeUsage{}, time.Second)
	rec := do(t, h, http.MethodGet, "/login", `{"username":"alice","password":"secret1"}`)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	h = NewRouter(logging.Nop{}, &fakeCredentials{authErr: common.ErrorUnauthorized}, &fakeUsage{}, time.Second)
	rec = do(t, h, http.MethodGet, "/login", `{"username":"alice","password":"nope"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestAddAddress(t *testing.T) {
	us := &fakeUsage{}
	h := NewRouter(logging.Nop{}, &fakeCredentials{}, us, time.Second)

	rec := do(t, h, http.MethodPost, "/add_address",
		`{"login":{"username":"alice","password":"p"},"address":"1 Main St"}`)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, []string{"alice|1 Main St"}, us.recorded)

	rec = do(t, h, http.MethodPost, "/add_address",
		`{"login":{"username":"alice","password":""},"address":"2 Side St"}`)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
	assert.Len(t, us.recorded, 1)
}

func TestAddAddress_StoreFailure(t *testing.T) {
	h := NewRouter(logging.Nop{}, &fakeCredentials{}, &fakeUsage{recordErr: common.ErrStore}, time.Second)

	rec := do(t, h, http.MethodPost, "/add_address",
		`{"login":{"username":"alice","password":"p"},"address":"1 Main St"}`)
	assert.JSONEq(t, `{"success":false}`, rec.Body.String())
}

func TestGetRegularRoutes(t *testing.T) {
	us := &fakeUsage{top: []string{"a2", "a1", "a3"}}
	h := NewRouter(logging.Nop{}, &fakeCredentials{}, us, time.Second)

	rec := do(t, h, http.MethodGet, "/get_regular_routes", `{"username":"alice","password":"ignored"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"username":"alice","addresses":["a2","a1","a3"]}`, rec.Body.String())
	assert.Equal(t, "alice", us.lastUser)
	assert.Equal(t, 0, us.lastLimit)
}

func TestGetRegularRoutes_EmptyList(t *testing.T) {
	h := NewRouter(logging.Nop{}, &fakeCredentials{}, &fakeUsage{}, time.Second)

	rec := do(t, h, http.MethodGet, "/get_regular_routes", `{"username":"ghost","password":"x"}`)
	assert.JSONEq(t, `{"username":"ghost","addresses":[]}`, rec.Body.String())
}

func TestMalformedBody(t *testing.T) {
	us := &fakeUsage{}
	h := NewRouter(logging.Nop{}, &fakeCredentials{}, us, time.Second)

	for _, path := range []string{"/signup", "/login", "/add_address", "/get_regular_routes"} {
		rec := do(t, h, http.MethodPost, path, `{"username":`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, path)
	}
	assert.Empty(t, us.recorded)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	h := NewRouter(logging.Nop{}, &fakeCredentials{}, &fakeUsage{}, time.Second)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/nope", `{}`).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, h, http.MethodDelete, "/signup", `{}`).Code)
}
