package db

const (
	// SchemaV1 defines the SQL statements for version 1 of the database schema.
	// This schema pertains to the 'wellnessdb' component.
	//
	// occurred_at is stored as fractional unix seconds; week_start as a
	// YYYY-MM-DD calendar date.
	SchemaV1 = `
CREATE TABLE IF NOT EXISTS moodlog_versions (
    component TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS moods (
    id UUID PRIMARY KEY,
    user_id VARCHAR(128) NOT NULL,
    category VARCHAR(32) NOT NULL,
    occurred_at REAL NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    created_at REAL DEFAULT (unixepoch())
);

CREATE INDEX IF NOT EXISTS idx_moods_user_occurred ON moods (user_id, occurred_at);

CREATE TABLE IF NOT EXISTS insights (
    id UUID PRIMARY KEY,
    user_id VARCHAR(128) NOT NULL,
    week_start VARCHAR(10) NOT NULL CHECK (week_start <> ''),
    summary TEXT NOT NULL CHECK (summary <> ''),
    created_at REAL DEFAULT (unixepoch())
);

CREATE INDEX IF NOT EXISTS idx_insights_user_week ON insights (user_id, week_start);

CREATE TABLE IF NOT EXISTS entries (
    id UUID PRIMARY KEY,
    user_id VARCHAR(128) NOT NULL,
    title VARCHAR(256) NOT NULL,
    content TEXT NOT NULL,
    deleted BOOLEAN DEFAULT FALSE,
    created_at REAL DEFAULT (unixepoch()),
    updated_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS breathing_sessions (
    id UUID PRIMARY KEY,
    user_id VARCHAR(128) NOT NULL,
    minutes INTEGER NOT NULL CHECK (minutes > 0),
    kind VARCHAR(32) NOT NULL DEFAULT 'guided',
    session_at REAL NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);

CREATE INDEX IF NOT EXISTS idx_breathing_user_session ON breathing_sessions (user_id, session_at);
`
)
