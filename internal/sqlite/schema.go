package sqlite

// Schema DDL.
const (
	createMigrationTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);`

	// AUTOINCREMENT keeps IDs from being reused after a delete.
	createItems = `CREATE TABLE items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    is_complete INTEGER NOT NULL DEFAULT 0
);`

	idxItemsComplete = `CREATE INDEX idx_items_complete ON items(is_complete);`
)

// migration is one schema step, applied at most once per storage instance.
type migration struct {
	name string
	sql  string
}

// migrations lists schema steps in the order they must run.
var migrations = []migration{
	{name: "0001_create_items", sql: createItems},
	{name: "0002_index_items_complete", sql: idxItemsComplete},
}

// seedMarker is recorded in schema_migrations once the seed set is loaded.
const seedMarker = "seed_items"
