package db

// schema holds the catalog tables. lumen_rows.position defines lookup order;
// a NULL cri applies to every CRI.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	code     TEXT PRIMARY KEY,
	name     TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS product_attributes (
	product_code TEXT NOT NULL REFERENCES products(code) ON DELETE CASCADE,
	attribute    TEXT NOT NULL,
	raw_values   TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (product_code, attribute)
);

CREATE TABLE IF NOT EXISTS lumen_rows (
	id           SERIAL PRIMARY KEY,
	position     INTEGER NOT NULL,
	product_code TEXT NOT NULL REFERENCES products(code) ON DELETE CASCADE,
	watt         TEXT NOT NULL,
	cct          TEXT NOT NULL,
	cri          TEXT,
	lumen        TEXT,
	raw_text     TEXT
);

CREATE INDEX IF NOT EXISTS lumen_rows_product_position_idx ON lumen_rows (product_code, position, id);
`
