package domain

import (
	"fmt"
	"regexp"
)

// Collections the dashboard manages out of the box.
const (
	Accommodations = "accommodations"
	Bookings       = "bookings"
	Reservations   = "reservations"
	Users          = "users"
)

// DefaultCollections is the allow-list used when none is configured.
var DefaultCollections = []string{Accommodations, Bookings, Reservations, Users}

var collectionName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateCollection rejects names that cannot address a collection.
func ValidateCollection(name string) error {
	if !collectionName.MatchString(name) {
		return fmt.Errorf("%w: invalid collection name %q", ErrValidation, name)
	}
	return nil
}

// CollectionCount is one line of the dashboard overview.
type CollectionCount struct {
	Collection string `json:"collection"`
	Count      int    `json:"count"`
}
