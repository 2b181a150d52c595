package storage

// KV is a named-slot store in the shape of the browser storage the data
// model grew up in: each key holds one JSON document, reads of absent keys
// are not errors, and writes replace the whole slot.
type KV interface {
	Init() error
	// Get returns the raw slot contents and whether the slot exists.
	Get(key string) ([]byte, bool, error)
	// Set overwrites the slot unconditionally.
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
	// Path returns the backing location, for diagnostics.
	Path() string
}

// Entity names a record collection.
type Entity string

const (
	EntityTasks          Entity = "tasks"
	EntityOrders         Entity = "orders"
	EntityReminders      Entity = "reminders"
	EntityHistory        Entity = "history"
	EntityToday          Entity = "today"
	EntityProfiles       Entity = "profiles"
	EntityCurrentProfile Entity = "currentProfile"
)

// Key resolves the slot key for an entity, optionally scoped to a profile.
// It is a pure function: the caller decides which entities carry the active
// profile's id (tasks do; the shared collections pass an empty id).
func Key(entity Entity, profileID string) string {
	k := "lifeos_" + string(entity)
	if profileID != "" {
		k += "_" + profileID
	}
	return k
}
