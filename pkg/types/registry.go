package types

// Registry is the validated entry point for contact records. It keeps the
// ID and phone number of every record unique and maps transfer shapes into
// records before they reach the Store.
type Registry interface {
	// Create stores a new record built from dto.
	// Returns a *PhoneNumberConflictError if the phone number is taken,
	// then a *IDConflictError if the ID is taken.
	Create(dto MobileContactDTO) (*MobileContact, error)

	// Update replaces the record with the given ID.
	// Returns a *NotFoundError if id differs from dto.ID or no record has
	// that ID, and a *PhoneNumberConflictError if dto's phone number is owned
	// by a different record. Keeping a record's own phone number is allowed.
	Update(id int64, dto MobileContactDTO) (*MobileContact, error)

	// DeleteByPhoneNumber returns a *NotFoundError if no record has the
	// phone number.
	DeleteByPhoneNumber(phoneNumber string) error

	// DeleteByID returns a *NotFoundError if no record has the ID.
	DeleteByID(id int64) error

	GetByPhoneNumber(phoneNumber string) (*MobileContact, error)
	GetByID(id int64) (*MobileContact, error)

	// GetAll returns every record in insertion order.
	GetAll() ([]MobileContact, error)
}
