package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bennys-motorworks/verkstad-api/internal/infrastructure/postgres"
	"github.com/bennys-motorworks/verkstad-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier falso: simula el catálogo de information_schema en memoria y
// registra cada sentencia, para verificar la planificación de DDL sin base.
// ──────────────────────────────────────────────────────────────────────────────

type fakeDB struct {
	columns map[string]map[string]bool // tabla -> columnas presentes

	creates   []string // tablas creadas
	alters    []string // "tabla.columna" añadidas
	backfills []string // UPDATEs de relleno ejecutados
	seeds     int      // INSERT ... ON CONFLICT DO NOTHING
	locked    bool
}

func newFakeDB() *fakeDB {
	return &fakeDB{columns: map[string]map[string]bool{}}
}

func (f *fakeDB) addColumn(table, column string) {
	if f.columns[table] == nil {
		f.columns[table] = map[string]bool{}
	}
	f.columns[table][column] = true
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	stmt := strings.TrimSpace(sql)
	switch {
	case strings.HasPrefix(stmt, "SELECT pg_advisory_lock"):
		f.locked = true
	case strings.HasPrefix(stmt, "SELECT pg_advisory_unlock"):
		f.locked = false
	case strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS "):
		rest := strings.TrimPrefix(stmt, "CREATE TABLE IF NOT EXISTS ")
		table := strings.Fields(rest)[0]
		f.creates = append(f.creates, table)
		f.addColumn(table, "id")
		// El baseline de receipts incluye el contador único legado.
		if table == "receipts" {
			f.addColumn(table, "parts_count")
		}
	case strings.HasPrefix(stmt, "ALTER TABLE "):
		fields := strings.Fields(stmt) // ALTER TABLE <t> ADD COLUMN <c> ...
		table, column := fields[2], fields[5]
		f.alters = append(f.alters, table+"."+column)
		f.addColumn(table, column)
	case strings.HasPrefix(stmt, "UPDATE receipts"):
		f.backfills = append(f.backfills, stmt)
	case strings.HasPrefix(stmt, "INSERT INTO "):
		f.seeds++
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	panic("no usado por SchemaManager")
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	switch {
	case strings.Contains(sql, "information_schema.tables"):
		_, ok := f.columns[args[0].(string)]
		return fakeRow{exists: ok}
	case strings.Contains(sql, "information_schema.columns"):
		return fakeRow{exists: f.columns[args[0].(string)][args[1].(string)]}
	}
	panic("consulta inesperada: " + sql)
}

type fakeRow struct{ exists bool }

func (r fakeRow) Scan(dest ...any) error {
	*dest[0].(*bool) = r.exists
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Ensure
// ──────────────────────────────────────────────────────────────────────────────

// Base vacía: se crean las seis tablas, se añaden las columnas de revisiones
// posteriores, se rellena y se siembra.
func TestEnsure_BaseVacia(t *testing.T) {
	db := newFakeDB()
	sm := postgres.NewSchemaManager(db, testLogger())

	require.NoError(t, sm.Ensure(context.Background()))

	assert.ElementsMatch(t, db.creates, []string{
		"ranks", "users", "receipts", "work_types", "vehicle_registry", "customer_registry",
	})
	assert.ElementsMatch(t, db.alters, []string{
		"users.is_admin", "users.rank_id", "users.display_name",
		"work_types.expense_cost",
		"receipts.styling_parts", "receipts.performance_parts",
	})
	// Relleno por cada contador separado (Styling y Prestanda).
	assert.Len(t, db.backfills, 2)
	// 2 rangos + 3 usuarios + 3 tipos de trabajo.
	assert.Equal(t, 8, db.seeds)
}

// Segunda ejecución sobre base al día: cero DDL. Las siembras insert-if-absent
// se relanzan pero no pisan nada.
func TestEnsure_IdempotenteSinDDL(t *testing.T) {
	db := newFakeDB()
	sm := postgres.NewSchemaManager(db, testLogger())
	require.NoError(t, sm.Ensure(context.Background()))

	db.creates, db.alters = nil, nil
	require.NoError(t, sm.Ensure(context.Background()))

	assert.Empty(t, db.creates, "ninguna tabla debe recrearse")
	assert.Empty(t, db.alters, "ninguna columna debe añadirse de nuevo")
}

// Sin la columna legada parts_count no hay nada que rellenar.
func TestEnsure_SinColumnaLegadaNoRellena(t *testing.T) {
	db := newFakeDB()
	// Esquema ya instalado pero sin el contador legado.
	for _, table := range []string{"ranks", "users", "receipts", "work_types", "vehicle_registry", "customer_registry"} {
		db.addColumn(table, "id")
	}
	for _, col := range []string{"styling_parts", "performance_parts"} {
		db.addColumn("receipts", col)
	}
	db.addColumn("users", "is_admin")
	db.addColumn("users", "rank_id")
	db.addColumn("users", "display_name")
	db.addColumn("work_types", "expense_cost")

	sm := postgres.NewSchemaManager(db, testLogger())
	require.NoError(t, sm.Ensure(context.Background()))

	assert.Empty(t, db.backfills)
}

// Esquema de una revisión intermedia: solo se añaden las columnas ausentes.
func TestEnsure_RevisionIntermedia(t *testing.T) {
	db := newFakeDB()
	sm := postgres.NewSchemaManager(db, testLogger())
	require.NoError(t, sm.Ensure(context.Background()))

	// Simular una base donde expense_cost aún no existe.
	delete(db.columns["work_types"], "expense_cost")
	db.creates, db.alters = nil, nil

	require.NoError(t, sm.Ensure(context.Background()))

	assert.Empty(t, db.creates)
	assert.Equal(t, []string{"work_types.expense_cost"}, db.alters)
}

// El advisory lock se libera también cuando todo va bien.
func TestEnsure_LiberaAdvisoryLock(t *testing.T) {
	db := newFakeDB()
	sm := postgres.NewSchemaManager(db, testLogger())

	require.NoError(t, sm.Ensure(context.Background()))
	assert.False(t, db.locked)
}
