package types

// MobileContact is a stored contact: a phone number plus the details of the
// user it belongs to. IDs are assigned by the caller, never generated.
type MobileContact struct {
	ID          int64       `json:"id"`
	PhoneNumber string      `json:"phoneNumber"`
	UserDetails UserDetails `json:"userDetails"`
}

// UserDetails holds the person behind a MobileContact.
type UserDetails struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// MobileContactDTO is the external shape of a contact. It mirrors
// MobileContact and is consumed only by the Registry's mapping step.
type MobileContactDTO struct {
	ID          int64          `json:"id"`
	UserDetails UserDetailsDTO `json:"userDetails"`
	PhoneNumber string         `json:"phoneNumber"`
}

// UserDetailsDTO is the external shape of UserDetails.
type UserDetailsDTO struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}
