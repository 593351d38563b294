package ohlc

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteReader provides read-only access to a bars table in SQLite.
// Expected schema: bars(symbol TEXT, ts INTEGER, open REAL, high REAL,
// low REAL, close REAL, volume REAL).
type SQLiteReader struct {
	db     *sql.DB
	symbol string
}

// NewSQLiteReader opens a SQLite connection for reading bars of one
// symbol.
func NewSQLiteReader(dbPath, symbol string) (*SQLiteReader, error) {
	db, err := sql.Open("sqlite3", dbPath+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("ohlc: sqlite open: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(2)
	return &SQLiteReader{db: db, symbol: symbol}, nil
}

// Bars reads all bars for the configured symbol, oldest first.
func (r *SQLiteReader) Bars() ([]Bar, error) {
	rows, err := r.db.Query(`
		SELECT ts, open, high, low, close, volume
		FROM bars
		WHERE symbol = ?
		ORDER BY ts ASC
	`, r.symbol)
	if err != nil {
		return nil, fmt.Errorf("ohlc: sqlite query bars: %w", err)
	}
	defer rows.Close()

	var bars []Bar
	for rows.Next() {
		var b Bar
		var tsUnix int64
		if err := rows.Scan(&tsUnix, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("ohlc: sqlite scan bars: %w", err)
		}
		b.Date = time.Unix(tsUnix, 0).UTC()
		bars = append(bars, b)
	}
	return bars, rows.Err()
}

// Close closes the reader.
func (r *SQLiteReader) Close() error {
	return r.db.Close()
}
