package presets

import (
	"context"
	"database/sql"
	_ "embed"
	stderrors "errors"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/rpg-combat-sim/internal/errors"
	"github.com/KirkDiggler/rpg-combat-sim/internal/partyconfig"
	"github.com/KirkDiggler/rpg-combat-sim/internal/pkg/clock"
)

//go:embed schema.sql
var schema string

// SQLiteConfig contains configuration for the SQLite preset repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(cfg.Path) == "" {
		vb.RequiredField("Path")
	}
	return vb.Build()
}

// SQLiteRepository implements Repository on a SQLite file. The party is
// kept as partyconfig text so presets survive model changes the same way
// exported parties do.
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite opens the database at cfg.Path and applies the schema
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open preset database")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping preset database")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply preset schema")
	}

	slog.Debug("preset database ready", "path", cfg.Path)

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Save stores a preset. Without Overwrite an existing name is an error.
func (r *SQLiteRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Preset == nil {
		return nil, errors.InvalidArgument("preset is required")
	}
	name, err := NormalizeName(input.Preset.Name)
	if err != nil {
		return nil, err
	}
	text, err := partyconfig.Export(input.Preset.Party)
	if err != nil {
		return nil, err
	}

	now := r.clock.Now().UTC()
	query := `INSERT INTO presets (name, party, created_at, updated_at) VALUES (?, ?, ?, ?)`
	if input.Overwrite {
		query += ` ON CONFLICT(name) DO UPDATE SET party = excluded.party, updated_at = excluded.updated_at`
	}
	if _, err := r.db.ExecContext(ctx, query, name, text, now.UnixMilli(), now.UnixMilli()); err != nil {
		if isUniqueViolation(err) {
			return nil, errors.AlreadyExistsf("preset %q already exists", name).WithMeta(errors.MetaID, name)
		}
		return nil, errors.Wrapf(err, "failed to save preset %q", name)
	}

	out, err := r.Get(ctx, &GetInput{Name: name})
	if err != nil {
		return nil, err
	}
	return &SaveOutput{Preset: out.Preset}, nil
}

// Get retrieves a preset by name
func (r *SQLiteRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name, err := NormalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT name, party, created_at, updated_at FROM presets WHERE name = ?`, name)
	preset, err := scanPreset(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("preset %q not found", name).WithMeta(errors.MetaID, name)
	}
	if err != nil {
		return nil, err
	}

	return &GetOutput{Preset: preset}, nil
}

// List returns every preset ordered by name
func (r *SQLiteRepository) List(ctx context.Context, _ *ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, party, created_at, updated_at FROM presets ORDER BY name`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list presets")
	}
	defer func() {
		_ = rows.Close()
	}()

	var list []*Preset
	for rows.Next() {
		preset, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate presets")
	}

	return &ListOutput{Presets: list}, nil
}

// Delete removes a preset
func (r *SQLiteRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	name, err := NormalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete preset %q", name)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read deleted rows")
	}
	if n == 0 {
		return nil, errors.NotFoundf("preset %q not found", name).WithMeta(errors.MetaID, name)
	}

	return &DeleteOutput{}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPreset(row scanner) (*Preset, error) {
	var (
		preset           Preset
		text             string
		created, updated int64
	)
	if err := row.Scan(&preset.Name, &text, &created, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to scan preset")
	}

	party, err := partyconfig.Import(text)
	if err != nil {
		return nil, errors.Wrapf(err, "stored preset %q is unreadable", preset.Name)
	}
	preset.Party = party
	preset.CreatedAt = time.UnixMilli(created).UTC()
	preset.UpdatedAt = time.UnixMilli(updated).UTC()
	return &preset, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !stderrors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}
