package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema contains the SQL statements to create the audit database schema.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_records (
    id TEXT PRIMARY KEY,
    request_id TEXT NOT NULL,

    time TIMESTAMP NOT NULL,
    recorded_time TIMESTAMP NOT NULL,

    endpoint TEXT NOT NULL,
    api_method TEXT NOT NULL,
    outcome TEXT NOT NULL,

    status_code INTEGER NOT NULL,
    upstream_status INTEGER NOT NULL DEFAULT 0,
    latency_ms INTEGER NOT NULL,

    token_digest TEXT NOT NULL,
    error TEXT
);

CREATE INDEX IF NOT EXISTS idx_audit_time ON audit_records(time);
CREATE INDEX IF NOT EXISTS idx_audit_token_digest ON audit_records(token_digest);
CREATE INDEX IF NOT EXISTS idx_audit_outcome ON audit_records(outcome);
`
