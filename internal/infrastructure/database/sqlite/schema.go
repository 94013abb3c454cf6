package sqlite

// SchemaSQL bootstraps the tables on a fresh database. It is idempotent and
// is the single source of the SQLite schema for tests and local runs.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	price INTEGER NOT NULL CHECK (price >= 0)
);
`
