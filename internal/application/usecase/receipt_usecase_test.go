package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/application/usecase"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeReceiptRepo struct {
	created []*entity.Receipt
	nextID  int64
}

func (f *fakeReceiptRepo) Create(r *entity.Receipt) (*entity.Receipt, error) {
	f.nextID++
	r.ID = f.nextID
	r.CreatedAt = time.Now()
	f.created = append(f.created, r)
	return r, nil
}

func (f *fakeReceiptRepo) GetByID(id int64) (*entity.Receipt, error) {
	for _, r := range f.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReceiptRepo) List() ([]*entity.Receipt, error) {
	out := make([]*entity.Receipt, 0, len(f.created))
	for i := len(f.created) - 1; i >= 0; i-- {
		out = append(out, f.created[i])
	}
	return out, nil
}

type fakeWorkTypeRepo struct {
	active map[string]*entity.WorkType
}

func (f *fakeWorkTypeRepo) Create(wt *entity.WorkType) (*entity.WorkType, error) { return wt, nil }
func (f *fakeWorkTypeRepo) Update(wt *entity.WorkType) error                     { return nil }
func (f *fakeWorkTypeRepo) GetByID(id int64) (*entity.WorkType, error)           { return nil, nil }
func (f *fakeWorkTypeRepo) ListActive() ([]*entity.WorkType, error)              { return nil, nil }
func (f *fakeWorkTypeRepo) List() ([]*entity.WorkType, error)                    { return nil, nil }
func (f *fakeWorkTypeRepo) UpsertByName(wt *entity.WorkType) (*entity.WorkType, error) {
	return wt, nil
}

func (f *fakeWorkTypeRepo) GetActiveByName(name string) (*entity.WorkType, error) {
	return f.active[name], nil
}

type fakePDF struct{}

func (fakePDF) GenerateReceiptPDF(r *entity.Receipt) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

func seededWorkTypes() *fakeWorkTypeRepo {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return &fakeWorkTypeRepo{active: map[string]*entity.WorkType{
		entity.WorkTypeReperation: {ID: 1, Name: entity.WorkTypeReperation, DefaultPrice: price("500.00"), IsActive: true},
		entity.WorkTypeStyling:    {ID: 2, Name: entity.WorkTypeStyling, DefaultPrice: price("750.00"), IsActive: true},
		entity.WorkTypePrestanda:  {ID: 3, Name: entity.WorkTypePrestanda, DefaultPrice: price("1200.00"), IsActive: true},
	}}
}

func newReceiptUC(receipts *fakeReceiptRepo) *usecase.ReceiptUseCase {
	return usecase.NewReceiptUseCase(receipts, seededWorkTypes(), fakePDF{})
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_StylingConPiezas(t *testing.T) {
	repo := &fakeReceiptRepo{}
	uc := newReceiptUC(repo)

	amount := decimal.RequireFromString("899.50")
	out, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType:     entity.WorkTypeStyling,
		StylingParts: intPtr(4),
		Amount:       &amount,
		Customer:     "Anna Svensson",
		Plate:        "abc-123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Benny's Arbetsorder - 00001", out.WorkOrder)
	assert.Equal(t, "19920202-5678", out.Mechanic)
	assert.Equal(t, "ABC-123", out.Plate, "la matrícula se normaliza a mayúsculas")
	require.NotNil(t, out.StylingParts)
	assert.Equal(t, 4, *out.StylingParts)
	assert.Nil(t, out.PerformanceParts)
	assert.Equal(t, "899,50 SEK", out.AmountDisplay)
}

// Styling sin contador de piezas: rechazado.
func TestCreate_StylingSinPiezasFalla(t *testing.T) {
	uc := newReceiptUC(&fakeReceiptRepo{})

	_, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType: entity.WorkTypeStyling,
		Customer: "Anna Svensson",
		Plate:    "ABC-123",
	})
	msgs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, msgs, "Antal delar krävs för Styling.")
}

// Reperation con contador de piezas: los contadores solo existen para
// Styling/Prestanda.
func TestCreate_ReperationConPiezasFalla(t *testing.T) {
	uc := newReceiptUC(&fakeReceiptRepo{})

	_, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType:     entity.WorkTypeReperation,
		StylingParts: intPtr(2),
		Customer:     "Anna Svensson",
		Plate:        "ABC-123",
	})
	msgs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, msgs, "Antal delar får bara anges för Styling/Prestanda.")
}

// Prestanda rechaza el contador del otro tipo aunque traiga el suyo.
func TestCreate_PrestandaConContadorAjenoFalla(t *testing.T) {
	uc := newReceiptUC(&fakeReceiptRepo{})

	_, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType:         entity.WorkTypePrestanda,
		PerformanceParts: intPtr(1),
		StylingParts:     intPtr(1),
		Customer:         "Anna Svensson",
		Plate:            "ABC-123",
	})
	msgs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, msgs, "Stylingdelar får inte anges för Prestanda.")
}

// Importe omitido: cae al precio por defecto del tipo.
func TestCreate_ImporteOmitidoUsaPrecioPorDefecto(t *testing.T) {
	repo := &fakeReceiptRepo{}
	uc := newReceiptUC(repo)

	out, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType: entity.WorkTypeReperation,
		Customer: "Anna Svensson",
		Plate:    "ABC-123",
	})
	require.NoError(t, err)
	assert.True(t, out.Amount.Equal(decimal.RequireFromString("500.00")))
}

func TestCreate_ImporteNegativoFalla(t *testing.T) {
	uc := newReceiptUC(&fakeReceiptRepo{})

	amount := decimal.RequireFromString("-1")
	_, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType: entity.WorkTypeReperation,
		Amount:   &amount,
		Customer: "Anna Svensson",
		Plate:    "ABC-123",
	})
	msgs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, msgs, "Summa måste vara ett positivt tal.")
}

// Tipo desconocido o inactivo: mismo rechazo, sin distinguirlos.
func TestCreate_TipoInactivoFalla(t *testing.T) {
	uc := newReceiptUC(&fakeReceiptRepo{})

	_, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType: "Lackering",
		Customer: "Anna Svensson",
		Plate:    "ABC-123",
	})
	msgs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, msgs, "Ogiltig typ av arbete.")
}

// La validación acumula todos los problemas en una sola respuesta.
func TestCreate_AcumulaTodosLosErrores(t *testing.T) {
	uc := newReceiptUC(&fakeReceiptRepo{})

	_, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType: entity.WorkTypeStyling,
		Customer: "  ",
		Plate:    "no-valid",
	})
	msgs, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, msgs, "Antal delar krävs för Styling.")
	assert.Contains(t, msgs, "Kund måste anges.")
	assert.Contains(t, msgs, "Regplåt måste vara i formatet XXX-000.")
}

// Nada se persiste cuando la validación falla.
func TestCreate_NoPersisteConErrores(t *testing.T) {
	repo := &fakeReceiptRepo{}
	uc := newReceiptUC(repo)

	_, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{WorkType: "Lackering"})
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestList_MasRecientePrimero(t *testing.T) {
	repo := &fakeReceiptRepo{}
	uc := newReceiptUC(repo)

	for _, customer := range []string{"Anna", "Björn"} {
		_, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
			WorkType: entity.WorkTypeReperation,
			Customer: customer,
			Plate:    "ABC-123",
		})
		require.NoError(t, err)
	}

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Björn", list[0].Customer)
	assert.Equal(t, "Anna", list[1].Customer)
}

func TestPDF_ReciboInexistente(t *testing.T) {
	uc := newReceiptUC(&fakeReceiptRepo{})

	_, err := uc.PDF(99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPDF_ReciboExistente(t *testing.T) {
	repo := &fakeReceiptRepo{}
	uc := newReceiptUC(repo)

	out, err := uc.Create("19920202-5678", dto.CreateReceiptRequest{
		WorkType: entity.WorkTypeReperation,
		Customer: "Anna Svensson",
		Plate:    "ABC-123",
	})
	require.NoError(t, err)

	doc, err := uc.PDF(out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}
