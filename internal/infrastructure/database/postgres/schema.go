package postgres

// SchemaSQL is the reference DDL for the tables the storage expects.
// Provisioning it is the operator's job; integration tests apply it directly.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	email TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	price BIGINT NOT NULL CHECK (price >= 0)
);
`
