package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. Repository
// tests load it via GetSchemaSQL() so test databases cannot drift from the
// production layout.
//
// Entries deliberately carry no foreign key constraints: employee_id and
// project_id are plain references that only the validation pre-check
// resolves. Storing an entry against an unknown employee is allowed.
const SchemaSQL = `
-- Employees (caller-assigned integer ids)
CREATE TABLE IF NOT EXISTS employees (
	id INTEGER PRIMARY KEY,
	surname TEXT NOT NULL,
	given_name TEXT NOT NULL,
	phone TEXT,
	email TEXT,
	hire_date TEXT,
	contract TEXT NOT NULL CHECK(contract IN ('CDI', 'CDD', 'Stage', 'Alternance', 'Freelance')),
	hourly_rate REAL NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Projects (hour_budget is advisory, never enforced)
CREATE TABLE IF NOT EXISTS projects (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	code TEXT NOT NULL,
	hour_budget INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Time entries (dates stored as DD/MM/YYYY text)
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	employee_id INTEGER NOT NULL,
	project_id INTEGER NOT NULL,
	entry_date TEXT NOT NULL,
	hours REAL NOT NULL,
	description TEXT,
	status TEXT NOT NULL CHECK(status IN ('brouillon', 'soumis', 'approuve', 'rejete')) DEFAULT 'brouillon',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Audit trail (append-only)
CREATE TABLE IF NOT EXISTS audit_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	line TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema for test setup.
func GetSchemaSQL() string {
	return SchemaSQL
}
