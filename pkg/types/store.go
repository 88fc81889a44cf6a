package types

// Store holds contact records in insertion order and looks them up by ID or
// phone number. It enforces no business rules; two records may share a key
// if the caller lets them. Absent records are reported as a nil pointer with
// a nil error. The error return is reserved for backend faults.
type Store interface {
	// Insert appends a copy of c and returns it. A nil c returns (nil, nil).
	Insert(c *MobileContact) (*MobileContact, error)

	// Update replaces the first record whose ID is id with a copy of c,
	// keeping its position. Returns (nil, nil) when c.ID differs from id or
	// when no record has that ID.
	Update(id int64, c *MobileContact) (*MobileContact, error)

	// DeleteByID removes every record with the given ID. Removing nothing
	// is not an error.
	DeleteByID(id int64) error

	// DeleteByPhoneNumber removes every record with the given phone number.
	DeleteByPhoneNumber(phoneNumber string) error

	// GetByID returns the first record with the given ID.
	GetByID(id int64) (*MobileContact, error)

	// GetByPhoneNumber returns the first record with the given phone number.
	GetByPhoneNumber(phoneNumber string) (*MobileContact, error)

	// GetAll returns every record in insertion order. The slice is a copy;
	// changing it does not change the Store.
	GetAll() ([]MobileContact, error)

	PhoneNumberExists(phoneNumber string) (bool, error)
	IDExists(id int64) (bool, error)

	// Close releases backend resources. The Store must not be used after.
	Close() error
}
