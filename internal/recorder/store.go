// Package recorder logs supply readings to a SQLite database.
package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/allbin/go-ka3005p"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS samples (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	port        TEXT    NOT NULL,
	timestamp   INTEGER NOT NULL,
	flags       INTEGER NOT NULL,
	output      INTEGER NOT NULL,
	mode        TEXT    NOT NULL,
	voltage     REAL    NOT NULL,
	current     REAL    NOT NULL,
	set_voltage REAL,
	set_current REAL
);
CREATE INDEX IF NOT EXISTS samples_port_time ON samples(port, timestamp);
`

// Sample is one stored reading
type Sample struct {
	ID        int64          `json:"id"`
	Port      string         `json:"port"`
	Timestamp time.Time      `json:"timestamp"`
	Status    ka3005p.Status `json:"status"`
}

// Store wraps the samples database
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures
// the schema exists
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// one writer; sqlite serializes anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores one reading and returns its row id
func (s *Store) Insert(ctx context.Context, port string, at time.Time, status ka3005p.Status) (int64, error) {
	var setVoltage, setCurrent sql.NullFloat64
	if sp := status.SetPoints; sp != nil {
		setVoltage = sql.NullFloat64{Float64: float64(sp.Voltage), Valid: true}
		setCurrent = sql.NullFloat64{Float64: float64(sp.Current), Valid: true}
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO samples (port, timestamp, flags, output, mode, voltage, current, set_voltage, set_current)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		port,
		at.UnixMilli(),
		int(status.Flags.Byte()),
		status.Flags.Output().Bool(),
		status.Flags.Channel1().String(),
		float64(status.Voltage),
		float64(status.Current),
		setVoltage,
		setCurrent,
	)
	if err != nil {
		return 0, fmt.Errorf("insert sample: %w", err)
	}
	return res.LastInsertId()
}

// Latest returns up to limit samples for port, newest first. An empty
// port matches every port; a non-positive limit returns every sample.
func (s *Store) Latest(ctx context.Context, port string, limit int) ([]Sample, error) {
	query := `SELECT id, port, timestamp, flags, voltage, current, set_voltage, set_current
		FROM samples WHERE (? = '' OR port = ?) ORDER BY timestamp DESC, id DESC`
	args := []interface{}{port, port}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var out []Sample
	for rows.Next() {
		var (
			sample                 Sample
			millis                 int64
			flags                  int
			voltage, current       float64
			setVoltage, setCurrent sql.NullFloat64
		)
		if err := rows.Scan(&sample.ID, &sample.Port, &millis, &flags, &voltage, &current, &setVoltage, &setCurrent); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		sample.Timestamp = time.UnixMilli(millis)
		sample.Status = ka3005p.Status{
			Flags:   ka3005p.Flags(flags),
			Voltage: float32(voltage),
			Current: float32(current),
		}
		if setVoltage.Valid && setCurrent.Valid {
			sample.Status.SetPoints = &ka3005p.SetPoints{
				Voltage: float32(setVoltage.Float64),
				Current: float32(setCurrent.Float64),
			}
		}
		out = append(out, sample)
	}
	return out, rows.Err()
}

// Count returns how many samples are stored for port
func (s *Store) Count(ctx context.Context, port string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM samples WHERE port = ?`, port).Scan(&n)
	return n, err
}
