// Package memory implements the in-memory Store for the contacts registry.
// Records live in a slice in insertion order and every lookup is a linear
// scan; the collections this serves are small.
package memory

import (
	"slices"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Store implements types.Store on a slice. It has no locking; the Registry
// serializes access.
type Store struct {
	contacts []types.MobileContact
}

var _ types.Store = (*Store)(nil)

// NewStore returns a Store holding copies of cs, in order. Uniqueness of the
// seed records is not checked.
func NewStore(cs ...types.MobileContact) *Store {
	return &Store{contacts: slices.Clone(cs)}
}

func (s *Store) Insert(c *types.MobileContact) (*types.MobileContact, error) {
	if c == nil {
		return nil, nil
	}
	s.contacts = append(s.contacts, *c)
	return copyOf(*c), nil
}

func (s *Store) Update(id int64, c *types.MobileContact) (*types.MobileContact, error) {
	if c == nil || c.ID != id {
		return nil, nil
	}
	i := s.indexByID(id)
	if i == -1 {
		return nil, nil
	}
	s.contacts[i] = *c
	return copyOf(*c), nil
}

func (s *Store) DeleteByID(id int64) error {
	s.contacts = slices.DeleteFunc(s.contacts, func(c types.MobileContact) bool {
		return c.ID == id
	})
	return nil
}

func (s *Store) DeleteByPhoneNumber(phoneNumber string) error {
	s.contacts = slices.DeleteFunc(s.contacts, func(c types.MobileContact) bool {
		return c.PhoneNumber == phoneNumber
	})
	return nil
}

func (s *Store) GetByID(id int64) (*types.MobileContact, error) {
	i := s.indexByID(id)
	if i == -1 {
		return nil, nil
	}
	return copyOf(s.contacts[i]), nil
}

func (s *Store) GetByPhoneNumber(phoneNumber string) (*types.MobileContact, error) {
	i := s.indexByPhoneNumber(phoneNumber)
	if i == -1 {
		return nil, nil
	}
	return copyOf(s.contacts[i]), nil
}

func (s *Store) GetAll() ([]types.MobileContact, error) {
	out := make([]types.MobileContact, len(s.contacts))
	copy(out, s.contacts)
	return out, nil
}

func (s *Store) PhoneNumberExists(phoneNumber string) (bool, error) {
	return s.indexByPhoneNumber(phoneNumber) != -1, nil
}

func (s *Store) IDExists(id int64) (bool, error) {
	return s.indexByID(id) != -1, nil
}

// Close is a no-op; the records go away with the Store.
func (s *Store) Close() error { return nil }

func (s *Store) indexByID(id int64) int {
	return slices.IndexFunc(s.contacts, func(c types.MobileContact) bool {
		return c.ID == id
	})
}

func (s *Store) indexByPhoneNumber(phoneNumber string) int {
	return slices.IndexFunc(s.contacts, func(c types.MobileContact) bool {
		return c.PhoneNumber == phoneNumber
	})
}

func copyOf(c types.MobileContact) *types.MobileContact {
	return &c
}
