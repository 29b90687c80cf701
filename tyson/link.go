package tyson

import (
	"fmt"

	"github.com/google/uuid"
)

// Link identifies a document by collection name and object id (spec §3.1).
type Link struct {
	Collection string
	ID         string
}

func (l Link) String() string {
	return l.Collection + "|" + l.ID + "|"
}

// validateLink enforces invariant (i) of spec §3.1: the collection
// component is non-empty and the id component is UUID-shaped.
func validateLink(collection, id string) error {
	if collection == "" {
		return fmt.Errorf("tyson: link collection must not be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("tyson: link id %q is not a UUID: %w", id, err)
	}
	return nil
}
