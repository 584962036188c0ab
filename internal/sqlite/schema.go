package sqlite

// Schema DDL. seq keeps insertion order; part_id is the public identifier.
const (
	createParts = `CREATE TABLE parts (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    part_id TEXT NOT NULL UNIQUE,
    department TEXT NOT NULL,
    item_code TEXT NOT NULL,
    part_name TEXT NOT NULL,
    description TEXT NOT NULL,
    unit_price REAL NOT NULL CHECK (unit_price >= 0),
    ticket_count INTEGER NOT NULL CHECK (ticket_count >= 0),
    date_acquired TEXT,
    serial_number TEXT NOT NULL,
    supplier TEXT NOT NULL
);`

	idxPartsDepartment = `CREATE INDEX idx_parts_department ON parts(department);`
)

// schemaDDL lists the statements run on a fresh database, in order.
var schemaDDL = []string{
	createParts,
	idxPartsDepartment,
}

// partColumns is the column list shared by every SELECT, matching scanPart.
const partColumns = "part_id, department, item_code, part_name, description, unit_price, ticket_count, date_acquired, serial_number, supplier"
