package sqlite

// Schema DDL for the contacts table. seq keeps insertion order; id and
// phone_number carry no UNIQUE constraint because uniqueness is the
// Registry's rule, not the Store's.
const (
	createContacts = `CREATE TABLE contacts (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id INTEGER NOT NULL,
    phone_number TEXT NOT NULL,
    user_id INTEGER NOT NULL,
    firstname TEXT NOT NULL,
    lastname TEXT NOT NULL
);`

	idxContactsID    = `CREATE INDEX idx_contacts_id ON contacts(id);`
	idxContactsPhone = `CREATE INDEX idx_contacts_phone ON contacts(phone_number);`
)

// schemaDDL lists the statements run on Open, in order.
var schemaDDL = []string{
	createContacts,
	idxContactsID,
	idxContactsPhone,
}

const contactColumns = "id, phone_number, user_id, firstname, lastname"
