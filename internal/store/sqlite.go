package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/permit-leads/internal/model"
)

// SQLiteStore implements ContactStore using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// Ensure SQLiteStore implements ContactStore.
var _ ContactStore = (*SQLiteStore)(nil)

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS prior_contacts (
	id              TEXT PRIMARY KEY,
	company         TEXT NOT NULL,
	normalized_name TEXT NOT NULL UNIQUE,
	phone           TEXT NOT NULL DEFAULT '',
	email           TEXT NOT NULL DEFAULT '',
	contact_person  TEXT NOT NULL DEFAULT '',
	updated_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_prior_contacts_normalized_name ON prior_contacts(normalized_name);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetByCompany returns the prior contact for a normalized company name,
// or nil when no row exists.
func (s *SQLiteStore) GetByCompany(ctx context.Context, normalizedName string) (*model.PriorContact, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, company, normalized_name, phone, email, contact_person, updated_at
		 FROM prior_contacts WHERE normalized_name = ?`,
		normalizedName,
	)

	var c model.PriorContact
	err := row.Scan(&c.ID, &c.Company, &c.NormalizedName, &c.Phone, &c.Email, &c.ContactPerson, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get contact %s", normalizedName)
	}
	return &c, nil
}

// Upsert inserts or replaces the contact row for its normalized name.
// A missing ID is assigned on insert.
func (s *SQLiteStore) Upsert(ctx context.Context, contact *model.PriorContact) error {
	if contact.NormalizedName == "" {
		return eris.New("sqlite: contact normalized_name is required")
	}
	id := contact.ID
	if id == "" {
		id = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO prior_contacts (id, company, normalized_name, phone, email, contact_person, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(normalized_name) DO UPDATE SET
		   company = excluded.company,
		   phone = excluded.phone,
		   email = excluded.email,
		   contact_person = excluded.contact_person,
		   updated_at = excluded.updated_at`,
		id, contact.Company, contact.NormalizedName,
		contact.Phone, contact.Email, contact.ContactPerson, time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: upsert contact %s", contact.NormalizedName)
}

// All returns every prior contact, ordered by company name.
func (s *SQLiteStore) All(ctx context.Context) ([]model.PriorContact, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company, normalized_name, phone, email, contact_person, updated_at
		 FROM prior_contacts ORDER BY company`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list contacts")
	}
	defer rows.Close()

	var out []model.PriorContact
	for rows.Next() {
		var c model.PriorContact
		if err := rows.Scan(&c.ID, &c.Company, &c.NormalizedName, &c.Phone, &c.Email, &c.ContactPerson, &c.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan contact")
		}
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate contacts")
}
