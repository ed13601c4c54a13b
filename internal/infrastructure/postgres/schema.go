package postgres

import (
	"context"
	"fmt"

	"github.com/bennys-motorworks/verkstad-api/pkg/logger"
)

// SchemaManager garantiza en cada arranque que el esquema esté completo:
// crea tablas ausentes, añade columnas de revisiones posteriores, rellena las
// columnas nuevas desde sus equivalentes legadas y siembra los datos base.
// Cada mutación va precedida de una comprobación de existencia, así que
// ejecutarlo repetidas veces sobre una base al día no produce ningún DDL.
// Cualquier fallo de DDL es fatal para el arranque: no se tolera esquema parcial.
type SchemaManager struct {
	q   Querier
	log *logger.Logger
}

// NewSchemaManager construye el gestor de esquema.
func NewSchemaManager(q Querier, log *logger.Logger) *SchemaManager {
	return &SchemaManager{q: q, log: log}
}

// Clave arbitraria pero fija del advisory lock que serializa arranques concurrentes.
const schemaLockKey = 792314001

type tableSpec struct {
	name string
	ddl  string
}

// Tablas con su juego de columnas baseline (primera revisión del esquema).
// receipts conserva aquí el contador único legado; las columnas separadas
// llegan como revisión posterior en columnAdds.
var baselineTables = []tableSpec{
	{"ranks", `CREATE TABLE IF NOT EXISTS ranks (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		view_admin BOOLEAN NOT NULL DEFAULT FALSE,
		manage_users BOOLEAN NOT NULL DEFAULT FALSE,
		manage_prices BOOLEAN NOT NULL DEFAULT FALSE,
		edit_receipts BOOLEAN NOT NULL DEFAULT FALSE
	)`},
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"receipts", `CREATE TABLE IF NOT EXISTS receipts (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		mechanic TEXT NOT NULL,
		work_type TEXT NOT NULL,
		parts_count INTEGER,
		amount NUMERIC(12,2) NOT NULL,
		customer TEXT NOT NULL,
		plate TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"work_types", `CREATE TABLE IF NOT EXISTS work_types (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		default_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"vehicle_registry", `CREATE TABLE IF NOT EXISTS vehicle_registry (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		plate TEXT UNIQUE NOT NULL,
		vehicle_type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"customer_registry", `CREATE TABLE IF NOT EXISTS customer_registry (
		id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		customer_name TEXT UNIQUE NOT NULL,
		phone TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
}

type columnAdd struct {
	table  string
	column string
	ddl    string
}

// Columnas introducidas en revisiones posteriores, cada una con default seguro.
var columnAdds = []columnAdd{
	{"users", "is_admin", `ALTER TABLE users ADD COLUMN is_admin BOOLEAN NOT NULL DEFAULT FALSE`},
	{"users", "rank_id", `ALTER TABLE users ADD COLUMN rank_id BIGINT REFERENCES ranks(id)`},
	{"users", "display_name", `ALTER TABLE users ADD COLUMN display_name TEXT NOT NULL DEFAULT ''`},
	{"work_types", "expense_cost", `ALTER TABLE work_types ADD COLUMN expense_cost NUMERIC(12,2)`},
	{"receipts", "styling_parts", `ALTER TABLE receipts ADD COLUMN styling_parts INTEGER`},
	{"receipts", "performance_parts", `ALTER TABLE receipts ADD COLUMN performance_parts INTEGER`},
}

// Ensure aplica el esquema completo. Idempotente e independiente del orden de
// versiones previas instaladas.
func (m *SchemaManager) Ensure(ctx context.Context) error {
	// Serializar arranques concurrentes: entre la comprobación de existencia y
	// el ALTER no hay atomicidad sin esto.
	if _, err := m.q.Exec(ctx, `SELECT pg_advisory_lock($1)`, schemaLockKey); err != nil {
		return fmt.Errorf("schema: advisory lock: %w", err)
	}
	defer func() {
		_, _ = m.q.Exec(ctx, `SELECT pg_advisory_unlock($1)`, schemaLockKey)
	}()

	if err := m.ensureTables(ctx); err != nil {
		return err
	}
	if err := m.ensureColumns(ctx); err != nil {
		return err
	}
	if err := m.backfillSplitCounters(ctx); err != nil {
		return err
	}
	if err := m.seed(ctx); err != nil {
		return err
	}
	return nil
}

func (m *SchemaManager) ensureTables(ctx context.Context) error {
	for _, t := range baselineTables {
		exists, err := m.hasTable(ctx, t.name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		m.log.Info().Str("table", t.name).Msg("schema: creando tabla")
		if _, err := m.q.Exec(ctx, t.ddl); err != nil {
			return fmt.Errorf("schema: crear tabla %s: %w", t.name, err)
		}
	}
	return nil
}

func (m *SchemaManager) ensureColumns(ctx context.Context) error {
	for _, c := range columnAdds {
		exists, err := m.hasColumn(ctx, c.table, c.column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		m.log.Info().Str("table", c.table).Str("column", c.column).Msg("schema: añadiendo columna")
		if _, err := m.q.Exec(ctx, c.ddl); err != nil {
			return fmt.Errorf("schema: añadir columna %s.%s: %w", c.table, c.column, err)
		}
	}
	return nil
}

// backfillSplitCounters copia el contador único legado a los contadores
// separados, filtrando por tipo de trabajo. Solo aplica cuando ambas
// generaciones de columnas coexisten; el WHERE ... IS NULL lo hace idempotente.
func (m *SchemaManager) backfillSplitCounters(ctx context.Context) error {
	legacy, err := m.hasColumn(ctx, "receipts", "parts_count")
	if err != nil {
		return err
	}
	if !legacy {
		return nil
	}
	backfills := []struct {
		column   string
		workType string
	}{
		{"styling_parts", "Styling"},
		{"performance_parts", "Prestanda"},
	}
	for _, b := range backfills {
		query := fmt.Sprintf(
			`UPDATE receipts SET %s = parts_count
			 WHERE work_type = $1 AND %s IS NULL AND parts_count IS NOT NULL`,
			b.column, b.column,
		)
		if _, err := m.q.Exec(ctx, query, b.workType); err != nil {
			return fmt.Errorf("schema: backfill %s: %w", b.column, err)
		}
	}
	return nil
}

// seed siembra rangos, usuarios y tipos de trabajo base. Insert-if-absent:
// nunca pisa filas existentes.
func (m *SchemaManager) seed(ctx context.Context) error {
	ranks := []struct {
		name                                               string
		viewAdmin, manageUsers, managePrices, editReceipts bool
	}{
		{"Admin", true, true, true, true},
		{"Mekaniker", false, false, false, false},
	}
	for _, r := range ranks {
		_, err := m.q.Exec(ctx, `
			INSERT INTO ranks (name, view_admin, manage_users, manage_prices, edit_receipts)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO NOTHING`,
			r.name, r.viewAdmin, r.manageUsers, r.managePrices, r.editReceipts,
		)
		if err != nil {
			return fmt.Errorf("schema: seed rango %s: %w", r.name, err)
		}
	}

	users := []struct {
		username, displayName, password, rank string
		isAdmin                               bool
	}{
		{"19900101-1234", "Benny", "motor123", "Admin", true},
		{"19920202-5678", "Micke", "garage123", "Mekaniker", false},
		{"19950505-9012", "Lasse", "bennys123", "Mekaniker", false},
	}
	for _, u := range users {
		_, err := m.q.Exec(ctx, `
			INSERT INTO users (username, display_name, password, rank_id, is_admin)
			SELECT $1, $2, $3, r.id, $5 FROM ranks r WHERE r.name = $4
			ON CONFLICT (username) DO NOTHING`,
			u.username, u.displayName, u.password, u.rank, u.isAdmin,
		)
		if err != nil {
			return fmt.Errorf("schema: seed usuario %s: %w", u.username, err)
		}
	}

	for _, name := range []string{"Reperation", "Styling", "Prestanda"} {
		_, err := m.q.Exec(ctx, `
			INSERT INTO work_types (name, default_price, is_active)
			VALUES ($1, 0, TRUE)
			ON CONFLICT (name) DO NOTHING`,
			name,
		)
		if err != nil {
			return fmt.Errorf("schema: seed tipo de trabajo %s: %w", name, err)
		}
	}
	return nil
}

func (m *SchemaManager) hasTable(ctx context.Context, table string) (bool, error) {
	var exists bool
	err := m.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)`, table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("schema: introspección tabla %s: %w", table, err)
	}
	return exists, nil
}

func (m *SchemaManager) hasColumn(ctx context.Context, table, column string) (bool, error) {
	var exists bool
	err := m.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_schema = 'public' AND table_name = $1 AND column_name = $2
		)`, table, column).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("schema: introspección columna %s.%s: %w", table, column, err)
	}
	return exists, nil
}
