package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bennys-motorworks/verkstad-api/internal/application/auth"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	err        error
}

func (f *fakeUserRepo) Create(u *entity.User) (*entity.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error)      { return nil, nil }
func (f *fakeUserRepo) Update(u *entity.User) error                 { return nil }
func (f *fakeUserRepo) List() ([]*entity.User, error)               { return nil, nil }

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byUsername[username], nil
}

type fakeRankRepo struct {
	byID map[int64]*entity.Rank
}

func (f *fakeRankRepo) GetByID(id int64) (*entity.Rank, error)            { return f.byID[id], nil }
func (f *fakeRankRepo) GetByName(name string) (*entity.Rank, error)       { return nil, nil }
func (f *fakeRankRepo) List() ([]*entity.Rank, error)                     { return nil, nil }
func (f *fakeRankRepo) UpsertByName(r *entity.Rank) (*entity.Rank, error) { return r, nil }

func sampleUser(rankID *int64, admin bool) *entity.User {
	return &entity.User{
		ID:          1,
		Username:    "19920202-5678",
		DisplayName: "Micke",
		Password:    "garage123",
		RankID:      rankID,
		IsAdmin:     admin,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

// Usuario desconocido y contraseña incorrecta producen exactamente el mismo
// error: el cliente no puede distinguir si la cuenta existe.
func TestAuthenticate_ErrorGenericoSinEnumeracion(t *testing.T) {
	users := &fakeUserRepo{byUsername: map[string]*entity.User{
		"19920202-5678": sampleUser(nil, false),
	}}
	uc := auth.NewAuthUseCase(users, &fakeRankRepo{})

	_, errUnknown := uc.Authenticate("00000000-0000", "garage123")
	_, errBadPass := uc.Authenticate("19920202-5678", "fel-lösenord")

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errBadPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errBadPass.Error())
}

// La comparación de contraseña es exacta y sensible a mayúsculas.
func TestAuthenticate_SensibleAMayusculas(t *testing.T) {
	users := &fakeUserRepo{byUsername: map[string]*entity.User{
		"19920202-5678": sampleUser(nil, false),
	}}
	uc := auth.NewAuthUseCase(users, &fakeRankRepo{})

	_, err := uc.Authenticate("19920202-5678", "GARAGE123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	id, err := uc.Authenticate("19920202-5678", "garage123")
	require.NoError(t, err)
	assert.Equal(t, "Micke", id.DisplayName)
}

// Sin rango y sin flag admin: sesión válida con cero capacidades.
func TestAuthenticate_SinRangoSinCapacidades(t *testing.T) {
	users := &fakeUserRepo{byUsername: map[string]*entity.User{
		"19920202-5678": sampleUser(nil, false),
	}}
	uc := auth.NewAuthUseCase(users, &fakeRankRepo{})

	id, err := uc.Authenticate("19920202-5678", "garage123")
	require.NoError(t, err)
	assert.Equal(t, entity.Permissions{}, id.Permissions)
	assert.Empty(t, id.RankName)
}

// Los permisos de la sesión son los cuatro booleanos del rango.
func TestAuthenticate_PermisosDelRango(t *testing.T) {
	rankID := int64(3)
	users := &fakeUserRepo{byUsername: map[string]*entity.User{
		"19920202-5678": sampleUser(&rankID, false),
	}}
	ranks := &fakeRankRepo{byID: map[int64]*entity.Rank{
		3: {ID: 3, Name: "Verkmästare", ManagePrices: true, EditReceipts: true},
	}}
	uc := auth.NewAuthUseCase(users, ranks)

	id, err := uc.Authenticate("19920202-5678", "garage123")
	require.NoError(t, err)
	assert.Equal(t, "Verkmästare", id.RankName)
	assert.True(t, id.Permissions.Has(entity.CapManagePrices))
	assert.True(t, id.Permissions.Has(entity.CapEditReceipts))
	assert.False(t, id.Permissions.Has(entity.CapViewAdmin))
	assert.False(t, id.Permissions.Has(entity.CapManageUsers))
}

// El flag legado is_admin fuerza las cuatro capacidades aunque el rango
// asignado no conceda ninguna.
func TestAuthenticate_FlagAdminForzaTodo(t *testing.T) {
	rankID := int64(2)
	users := &fakeUserRepo{byUsername: map[string]*entity.User{
		"19920202-5678": sampleUser(&rankID, true),
	}}
	ranks := &fakeRankRepo{byID: map[int64]*entity.Rank{
		2: {ID: 2, Name: "Mekaniker"},
	}}
	uc := auth.NewAuthUseCase(users, ranks)

	id, err := uc.Authenticate("19920202-5678", "garage123")
	require.NoError(t, err)
	assert.Equal(t, entity.AllPermissions(), id.Permissions)
}

// Un fallo del almacén se propaga tal cual, sin disfrazarse de credenciales.
func TestAuthenticate_ErrorDeAlmacen(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := auth.NewAuthUseCase(&fakeUserRepo{err: boom}, &fakeRankRepo{})

	_, err := uc.Authenticate("19920202-5678", "garage123")
	assert.ErrorIs(t, err, boom)
}
