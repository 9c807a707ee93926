package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/papapumpkin/periodic/internal/catalog"
	"github.com/papapumpkin/periodic/internal/locale"
)

// schema contains the DDL executed on open. Using IF NOT EXISTS makes it
// safe to export into an existing database.
const schema = `
CREATE TABLE IF NOT EXISTS elements (
    number                          INTEGER PRIMARY KEY,
    symbol                          TEXT NOT NULL UNIQUE,
    name                            TEXT NOT NULL UNIQUE,
    category                        TEXT,
    phase                           TEXT,
    block                           TEXT,
    appearance                      TEXT,
    summary                         TEXT,
    discovered_by                   TEXT,
    named_by                        TEXT,
    source                          TEXT,
    period                          INTEGER,
    grp                             INTEGER,
    atomic_mass                     REAL,
    density                         REAL,
    melt                            REAL,
    boil                            REAL,
    molar_heat                      REAL,
    electron_affinity               REAL,
    electronegativity_pauling       REAL,
    electron_configuration          TEXT,
    electron_configuration_semantic TEXT,
    cpk_hex                         TEXT
);

CREATE TABLE IF NOT EXISTS shells (
    number    INTEGER NOT NULL REFERENCES elements(number),
    shell     INTEGER NOT NULL,
    electrons INTEGER NOT NULL,
    PRIMARY KEY (number, shell)
);

CREATE TABLE IF NOT EXISTS ionization_energies (
    number INTEGER NOT NULL REFERENCES elements(number),
    seq    INTEGER NOT NULL,
    energy REAL NOT NULL,
    PRIMARY KEY (number, seq)
);

CREATE TABLE IF NOT EXISTS localized_names (
    symbol TEXT NOT NULL,
    locale TEXT NOT NULL,
    name   TEXT NOT NULL,
    PRIMARY KEY (symbol, locale)
);
`

// SQLiteStore is an export target backed by a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and creates the schema
// tables if they do not exist.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("export: open database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("export: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("export: create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Write replaces the stored catalog with els in a single transaction. When
// names is non-nil its localized names are stored under the table's locale.
func (s *SQLiteStore) Write(ctx context.Context, els []catalog.Element, names *locale.Table) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: begin: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	for _, table := range []string{"shells", "ionization_energies", "elements"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("export: clear %s: %w", table, err)
		}
	}
	if names != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM localized_names WHERE locale = ?", names.Locale()); err != nil {
			return fmt.Errorf("export: clear localized_names: %w", err)
		}
	}

	const insertElement = `
		INSERT INTO elements (
			number, symbol, name, category, phase, block, appearance, summary,
			discovered_by, named_by, source, period, grp, atomic_mass, density,
			melt, boil, molar_heat, electron_affinity, electronegativity_pauling,
			electron_configuration, electron_configuration_semantic, cpk_hex
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, el := range els {
		if _, err := tx.ExecContext(ctx, insertElement,
			el.Number, el.Symbol, el.Name,
			text(el.Category), text(el.Phase), text(el.Block), text(el.Appearance), text(el.Summary),
			text(el.DiscoveredBy), text(el.NamedBy), text(el.Source),
			intPtr(el.Period), intPtr(el.Group),
			floatPtr(el.AtomicMass), floatPtr(el.Density), floatPtr(el.Melt), floatPtr(el.Boil),
			floatPtr(el.MolarHeat), floatPtr(el.ElectronAffinity), floatPtr(el.ElectronegativityPauling),
			text(el.ElectronConfiguration), text(el.ElectronConfigurationSemantic), text(el.CPKHex),
		); err != nil {
			return fmt.Errorf("export: insert element %s: %w", el.Symbol, err)
		}
		for i, n := range el.Shells {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO shells (number, shell, electrons) VALUES (?, ?, ?)", el.Number, i+1, n); err != nil {
				return fmt.Errorf("export: insert shells for %s: %w", el.Symbol, err)
			}
		}
		for i, e := range el.IonizationEnergies {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO ionization_energies (number, seq, energy) VALUES (?, ?, ?)", el.Number, i+1, e); err != nil {
				return fmt.Errorf("export: insert ionization energies for %s: %w", el.Symbol, err)
			}
		}
		if names != nil {
			if name, ok := names.Lookup(el.Symbol); ok {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO localized_names (symbol, locale, name) VALUES (?, ?, ?)",
					el.Symbol, names.Locale(), name); err != nil {
					return fmt.Errorf("export: insert localized name for %s: %w", el.Symbol, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("export: commit: %w", err)
	}
	return nil
}

// Elements reads the stored catalog back in atomic-number order.
func (s *SQLiteStore) Elements(ctx context.Context) ([]catalog.Element, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT number, symbol, name, category, phase, block, appearance, summary,
			discovered_by, named_by, source, period, grp, atomic_mass, density,
			melt, boil, molar_heat, electron_affinity, electronegativity_pauling,
			electron_configuration, electron_configuration_semantic, cpk_hex
		FROM elements ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("export: query elements: %w", err)
	}
	defer rows.Close()

	var (
		els   []catalog.Element
		index = make(map[int]int)
	)
	for rows.Next() {
		var (
			el                                          catalog.Element
			category, phase, block, appearance, summary sql.NullString
			discoveredBy, namedBy, source, config, sem  sql.NullString
			cpk                                         sql.NullString
			period, group                               sql.NullInt64
			mass, density, melt, boil, heat, aff, eneg  sql.NullFloat64
		)
		if err := rows.Scan(&el.Number, &el.Symbol, &el.Name,
			&category, &phase, &block, &appearance, &summary,
			&discoveredBy, &namedBy, &source, &period, &group,
			&mass, &density, &melt, &boil, &heat, &aff, &eneg,
			&config, &sem, &cpk); err != nil {
			return nil, fmt.Errorf("export: scan element: %w", err)
		}
		el.Category, el.Phase, el.Block = fromNull(category), fromNull(phase), fromNull(block)
		el.Appearance, el.Summary = fromNull(appearance), fromNull(summary)
		el.DiscoveredBy, el.NamedBy, el.Source = fromNull(discoveredBy), fromNull(namedBy), fromNull(source)
		el.ElectronConfiguration, el.ElectronConfigurationSemantic = fromNull(config), fromNull(sem)
		el.CPKHex = fromNull(cpk)
		el.Period, el.Group = intFromNull(period), intFromNull(group)
		el.AtomicMass, el.Density = floatFromNull(mass), floatFromNull(density)
		el.Melt, el.Boil, el.MolarHeat = floatFromNull(melt), floatFromNull(boil), floatFromNull(heat)
		el.ElectronAffinity, el.ElectronegativityPauling = floatFromNull(aff), floatFromNull(eneg)

		index[el.Number] = len(els)
		els = append(els, el)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export: iterate elements: %w", err)
	}

	if err := s.loadShells(ctx, els, index); err != nil {
		return nil, err
	}
	if err := s.loadIonization(ctx, els, index); err != nil {
		return nil, err
	}
	return els, nil
}

func (s *SQLiteStore) loadShells(ctx context.Context, els []catalog.Element, index map[int]int) error {
	rows, err := s.db.QueryContext(ctx, "SELECT number, electrons FROM shells ORDER BY number, shell")
	if err != nil {
		return fmt.Errorf("export: query shells: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var number, electrons int
		if err := rows.Scan(&number, &electrons); err != nil {
			return fmt.Errorf("export: scan shell: %w", err)
		}
		if i, ok := index[number]; ok {
			els[i].Shells = append(els[i].Shells, electrons)
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) loadIonization(ctx context.Context, els []catalog.Element, index map[int]int) error {
	rows, err := s.db.QueryContext(ctx, "SELECT number, energy FROM ionization_energies ORDER BY number, seq")
	if err != nil {
		return fmt.Errorf("export: query ionization energies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			number int
			energy float64
		)
		if err := rows.Scan(&number, &energy); err != nil {
			return fmt.Errorf("export: scan ionization energy: %w", err)
		}
		if i, ok := index[number]; ok {
			els[i].IonizationEnergies = append(els[i].IonizationEnergies, energy)
		}
	}
	return rows.Err()
}

// LocalizedName returns the stored name for symbol in loc, or "" when absent.
func (s *SQLiteStore) LocalizedName(ctx context.Context, symbol, loc string) (string, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		"SELECT name FROM localized_names WHERE symbol = ? AND locale = ?", symbol, loc).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("export: localized name %q/%q: %w", symbol, loc, err)
	}
	return name, nil
}

// text maps NotAvailable to NULL.
func text(t catalog.Text) any {
	if !t.Available() {
		return nil
	}
	return string(t)
}

func intPtr(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtr(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func fromNull(s sql.NullString) catalog.Text {
	if !s.Valid {
		return catalog.NotAvailable
	}
	return catalog.Text(s.String)
}

func intFromNull(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func floatFromNull(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
