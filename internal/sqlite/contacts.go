package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func hydrateContact(row rowScanner) (*types.MobileContact, error) {
	var c types.MobileContact
	err := row.Scan(
		&c.ID,
		&c.PhoneNumber,
		&c.UserDetails.ID,
		&c.UserDetails.Firstname,
		&c.UserDetails.Lastname,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) Insert(c *types.MobileContact) (*types.MobileContact, error) {
	if c == nil {
		return nil, nil
	}
	_, err := s.db.Exec(
		"INSERT INTO contacts ("+contactColumns+") VALUES (?, ?, ?, ?, ?)",
		c.ID, c.PhoneNumber, c.UserDetails.ID, c.UserDetails.Firstname, c.UserDetails.Lastname,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting contact %d: %w", c.ID, err)
	}
	out := *c
	return &out, nil
}

func (s *Store) Update(id int64, c *types.MobileContact) (*types.MobileContact, error) {
	if c == nil || c.ID != id {
		return nil, nil
	}
	res, err := s.db.Exec(
		`UPDATE contacts SET phone_number = ?, user_id = ?, firstname = ?, lastname = ?
WHERE seq = (SELECT seq FROM contacts WHERE id = ? ORDER BY seq LIMIT 1)`,
		c.PhoneNumber, c.UserDetails.ID, c.UserDetails.Firstname, c.UserDetails.Lastname, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating contact %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating contact %d: %w", id, err)
	}
	if n == 0 {
		return nil, nil
	}
	out := *c
	return &out, nil
}

func (s *Store) DeleteByID(id int64) error {
	if _, err := s.db.Exec("DELETE FROM contacts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting contact %d: %w", id, err)
	}
	return nil
}

func (s *Store) DeleteByPhoneNumber(phoneNumber string) error {
	if _, err := s.db.Exec("DELETE FROM contacts WHERE phone_number = ?", phoneNumber); err != nil {
		return fmt.Errorf("deleting contact %s: %w", phoneNumber, err)
	}
	return nil
}

func (s *Store) GetByID(id int64) (*types.MobileContact, error) {
	row := s.db.QueryRow(
		"SELECT "+contactColumns+" FROM contacts WHERE id = ? ORDER BY seq LIMIT 1", id,
	)
	return s.getOne(row, fmt.Sprintf("contact %d", id))
}

func (s *Store) GetByPhoneNumber(phoneNumber string) (*types.MobileContact, error) {
	row := s.db.QueryRow(
		"SELECT "+contactColumns+" FROM contacts WHERE phone_number = ? ORDER BY seq LIMIT 1", phoneNumber,
	)
	return s.getOne(row, "contact "+phoneNumber)
}

func (s *Store) getOne(row *sql.Row, what string) (*types.MobileContact, error) {
	c, err := hydrateContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", what, err)
	}
	return c, nil
}

func (s *Store) GetAll() ([]types.MobileContact, error) {
	rows, err := s.db.Query("SELECT " + contactColumns + " FROM contacts ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	defer rows.Close()

	contacts := []types.MobileContact{}
	for rows.Next() {
		c, err := hydrateContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}
	return contacts, nil
}

func (s *Store) PhoneNumberExists(phoneNumber string) (bool, error) {
	return s.exists("SELECT 1 FROM contacts WHERE phone_number = ? LIMIT 1", phoneNumber)
}

func (s *Store) IDExists(id int64) (bool, error) {
	return s.exists("SELECT 1 FROM contacts WHERE id = ? LIMIT 1", id)
}

func (s *Store) exists(query string, arg any) (bool, error) {
	var one int
	err := s.db.QueryRow(query, arg).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking contact existence: %w", err)
	}
	return true, nil
}
