package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
	"github.com/pkordes/hotel-admin/backend/internal/handler"
	"github.com/pkordes/hotel-admin/backend/internal/session"
)

// mockCollections is a test double for handler.CollectionServicer.
// Set only the method fields your test needs.
type mockCollections struct {
	list   func(ctx context.Context, collection string) ([]domain.Record, error)
	create func(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error)
	update func(ctx context.Context, collection, id string, fields domain.Fields) error
	delete func(ctx context.Context, collection, id string) error
}

func (m *mockCollections) List(ctx context.Context, c string) ([]domain.Record, error) {
	return m.list(ctx, c)
}
func (m *mockCollections) Create(ctx context.Context, c string, f domain.Fields) (domain.Record, error) {
	return m.create(ctx, c, f)
}
func (m *mockCollections) Update(ctx context.Context, c, id string, f domain.Fields) error {
	return m.update(ctx, c, id, f)
}
func (m *mockCollections) Delete(ctx context.Context, c, id string) error {
	return m.delete(ctx, c, id)
}

var _ handler.CollectionServicer = (*mockCollections)(nil)

// mockUsers is a test double for handler.UserServicer.
type mockUsers struct {
	list   func(ctx context.Context) ([]domain.Record, error)
	create func(ctx context.Context, fields domain.Fields) (domain.Record, error)
	update func(ctx context.Context, id string, fields domain.Fields) error
	delete func(ctx context.Context, id string) error
}

func (m *mockUsers) List(ctx context.Context) ([]domain.Record, error) { return m.list(ctx) }
func (m *mockUsers) Create(ctx context.Context, f domain.Fields) (domain.Record, error) {
	return m.create(ctx, f)
}
func (m *mockUsers) Update(ctx context.Context, id string, f domain.Fields) error {
	return m.update(ctx, id, f)
}
func (m *mockUsers) Delete(ctx context.Context, id string) error { return m.delete(ctx, id) }

var _ handler.UserServicer = (*mockUsers)(nil)

// mockBookings is a test double for handler.BookingServicer.
type mockBookings struct {
	confirm func(ctx context.Context, id string) error
	reject  func(ctx context.Context, id string) error
}

func (m *mockBookings) Confirm(ctx context.Context, id string) error { return m.confirm(ctx, id) }
func (m *mockBookings) Reject(ctx context.Context, id string) error  { return m.reject(ctx, id) }

var _ handler.BookingServicer = (*mockBookings)(nil)

// mockExport is a test double for handler.ExportServicer.
type mockExport struct {
	export func(ctx context.Context, collection string) (domain.Table, error)
}

func (m *mockExport) Export(ctx context.Context, c string) (domain.Table, error) {
	return m.export(ctx, c)
}

var _ handler.ExportServicer = (*mockExport)(nil)

// mockDashboard is a test double for handler.DashboardServicer.
type mockDashboard struct {
	overview func(ctx context.Context) ([]domain.CollectionCount, error)
}

func (m *mockDashboard) Overview(ctx context.Context) ([]domain.CollectionCount, error) {
	return m.overview(ctx)
}

var _ handler.DashboardServicer = (*mockDashboard)(nil)

// mockSessions is a test double for handler.SessionServicer.
type mockSessions struct {
	signIn  func(ctx context.Context, email, password string) (session.Session, error)
	active  func(token string) bool
	signOut func(token string)
}

func (m *mockSessions) SignIn(ctx context.Context, email, password string) (session.Session, error) {
	return m.signIn(ctx, email, password)
}
func (m *mockSessions) Active(token string) bool { return m.active(token) }
func (m *mockSessions) SignOut(token string)     { m.signOut(token) }

var _ handler.SessionServicer = (*mockSessions)(nil)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given deps into its router, the way
// main.go does in production. The default allow-list is used when none is set.
func newHTTPHandler(d handler.Deps) http.Handler {
	if d.Allowed == nil {
		d.Allowed = domain.DefaultCollections
	}
	d.Logger = discardLogger()
	return handler.NewServer(d).Routes()
}

func do(t *testing.T, h http.Handler, method, path string, body io.Reader, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var body handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
