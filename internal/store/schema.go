package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS calculations (
    id                   TEXT PRIMARY KEY,
    created_at           TEXT NOT NULL,
    current_age          INTEGER NOT NULL,
    investment_profile   TEXT NOT NULL,
    fire_number          TEXT NOT NULL,
    years_to_fire        INTEGER NOT NULL,
    target_age           INTEGER NOT NULL,
    monthly_savings      TEXT NOT NULL,
    horizon_capped       INTEGER NOT NULL DEFAULT 0,
    request_json         TEXT NOT NULL,
    result_json          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created_at);
`
