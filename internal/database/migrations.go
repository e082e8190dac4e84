package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1Selections,
}

// migrationV1Selections creates the selections table.
//
// Selections are the only persisted entity: the evaluation engine is a pure
// recomputation and stores nothing. user_id is the hashed API key the auth
// middleware derives, date is the candidate date in ISO form.
const migrationV1Selections = `
CREATE TABLE IF NOT EXISTS selections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id TEXT NOT NULL,
	activity_id TEXT NOT NULL,
	date TEXT NOT NULL,
	tier TEXT NOT NULL DEFAULT '',
	notes TEXT,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_selections_user ON selections(user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_selections_activity ON selections(activity_id);
`
