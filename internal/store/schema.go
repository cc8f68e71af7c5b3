package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledger_blob (
    key       TEXT PRIMARY KEY,
    value     BLOB NOT NULL,
    saved_at  TEXT NOT NULL
);
`

// ledgerKey is the well-known key the single ledger blob lives under.
const ledgerKey = "ledger"
