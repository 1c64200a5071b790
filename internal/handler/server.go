// Package handler implements the HTTP handlers for the hotel admin API.
// All handlers are methods on Server; they are split into files by area
// (collections.go, users.go, bookings.go, ...) but share its dependencies.
// Routes are registered by hand on a chi router in routes.go.
package handler

import (
	"context"
	"log/slog"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
	"github.com/pkordes/hotel-admin/backend/internal/session"
)

// CollectionServicer is the generic collection access layer the record
// endpoints depend on. Defined here, in the consumer package, so handler
// tests can inject a mock without a store.
type CollectionServicer interface {
	List(ctx context.Context, collection string) ([]domain.Record, error)
	Create(ctx context.Context, collection string, fields domain.Fields) (domain.Record, error)
	Update(ctx context.Context, collection, id string, fields domain.Fields) error
	Delete(ctx context.Context, collection, id string) error
}

// UserServicer is the users helper.
type UserServicer interface {
	List(ctx context.Context) ([]domain.Record, error)
	Create(ctx context.Context, fields domain.Fields) (domain.Record, error)
	Update(ctx context.Context, id string, fields domain.Fields) error
	Delete(ctx context.Context, id string) error
}

// BookingServicer confirms and rejects booking requests.
type BookingServicer interface {
	Confirm(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

// ExportServicer flattens a collection into a table.
type ExportServicer interface {
	Export(ctx context.Context, collection string) (domain.Table, error)
}

// DashboardServicer reports per-collection record counts.
type DashboardServicer interface {
	Overview(ctx context.Context) ([]domain.CollectionCount, error)
}

// SessionServicer is the sign-in gate.
type SessionServicer interface {
	SignIn(ctx context.Context, email, password string) (session.Session, error)
	Active(token string) bool
	SignOut(token string)
}

// Deps lists everything Server needs. Sessions may be nil, which disables
// sign-in and leaves every route open.
type Deps struct {
	Collections CollectionServicer
	Users       UserServicer
	Bookings    BookingServicer
	Export      ExportServicer
	Dashboard   DashboardServicer
	Sessions    SessionServicer

	// Allowed is the collection allow-list; other names answer 404.
	Allowed []string
	Logger  *slog.Logger
}

// Server holds the dependencies shared by every handler.
type Server struct {
	collections CollectionServicer
	users       UserServicer
	bookings    BookingServicer
	export      ExportServicer
	dashboard   DashboardServicer
	sessions    SessionServicer

	allowed map[string]bool
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	allowed := make(map[string]bool, len(d.Allowed))
	for _, name := range d.Allowed {
		allowed[name] = true
	}
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		collections: d.Collections,
		users:       d.Users,
		bookings:    d.Bookings,
		export:      d.Export,
		dashboard:   d.Dashboard,
		sessions:    d.Sessions,
		allowed:     allowed,
		log:         log,
	}
}
