package ohlc

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// PostgresReader provides read-only access to a bars table in Postgres,
// with the same schema the SQLite reader expects.
type PostgresReader struct {
	db     *sql.DB
	symbol string
}

// NewPostgresReader opens a Postgres connection for reading bars of one
// symbol. dsn is a lib/pq connection string.
func NewPostgresReader(dsn, symbol string) (*PostgresReader, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("ohlc: postgres open: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ohlc: postgres ping: %w", err)
	}
	return &PostgresReader{db: db, symbol: symbol}, nil
}

// Bars reads all bars for the configured symbol, oldest first.
func (r *PostgresReader) Bars() ([]Bar, error) {
	rows, err := r.db.Query(`
		SELECT ts, open, high, low, close, volume
		FROM bars
		WHERE symbol = $1
		ORDER BY ts ASC
	`, r.symbol)
	if err != nil {
		return nil, fmt.Errorf("ohlc: postgres query bars: %w", err)
	}
	defer rows.Close()

	var bars []Bar
	for rows.Next() {
		var b Bar
		var tsUnix int64
		if err := rows.Scan(&tsUnix, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("ohlc: postgres scan bars: %w", err)
		}
		b.Date = time.Unix(tsUnix, 0).UTC()
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// Close closes the reader.
func (r *PostgresReader) Close() error {
	return r.db.Close()
}
