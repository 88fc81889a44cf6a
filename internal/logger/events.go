package logger

// Event names logged under the "event" field.
const (
	EventStartup             = "SYSTEM_STARTUP"
	EventContactCreated      = "CONTACT_CREATED"
	EventContactUpdated      = "CONTACT_UPDATED"
	EventContactDeleted      = "CONTACT_DELETED"
	EventContactLookup       = "CONTACT_LOOKUP"
	EventContactNotFound     = "CONTACT_NOT_FOUND"
	EventPhoneNumberConflict = "CONTACT_PHONE_NUMBER_CONFLICT"
	EventIDConflict          = "CONTACT_ID_CONFLICT"
	EventStoreFailure        = "STORE_FAILURE"
	EventScriptLine          = "SCRIPT_LINE"
)
