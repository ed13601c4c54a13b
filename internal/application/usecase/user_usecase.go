package usecase

import (
	"strings"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios desde el panel admin.
type UserUseCase struct {
	users repository.UserRepository
	ranks repository.RankRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(users repository.UserRepository, ranks repository.RankRepository) *UserUseCase {
	return &UserUseCase{users: users, ranks: ranks}
}

// List todos los usuarios con el nombre de su rango resuelto.
func (uc *UserUseCase) List() ([]*dto.UserResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	// Los rangos son pocos; un mapa por id evita una consulta por fila.
	ranks, err := uc.ranks.List()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(ranks))
	for _, r := range ranks {
		names[r.ID] = r.Name
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp := userToDTO(u)
		if u.RankID != nil {
			resp.RankName = names[*u.RankID]
		}
		out = append(out, resp)
	}
	return out, nil
}

// Create alta de usuario. Personnummer duplicado -> domain.ErrDuplicate.
func (uc *UserUseCase) Create(in dto.SaveUserRequest) (*dto.UserResponse, error) {
	var errs domain.ValidationErrors

	pnr := strings.TrimSpace(in.Personnummer)
	if !domain.ValidPersonnummer(pnr) {
		errs = append(errs, "Personnummer måste vara i formatet ÅÅÅÅMMDD-XXXX.")
	}
	if strings.TrimSpace(in.Password) == "" {
		errs = append(errs, "Lösenord måste anges.")
	}

	rank, rankErrs, err := uc.resolveRank(in.RankID)
	if err != nil {
		return nil, err
	}
	errs = append(errs, rankErrs...)

	if len(errs) > 0 {
		return nil, errs
	}

	created, err := uc.users.Create(&entity.User{
		Username:    pnr,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Password:    strings.TrimSpace(in.Password),
		RankID:      in.RankID,
		IsAdmin:     deriveAdminFlag(rank),
	})
	if err != nil {
		return nil, err
	}
	resp := userToDTO(created)
	if rank != nil {
		resp.RankName = rank.Name
	}
	return resp, nil
}

// Update cambia contraseña, nombre visible y rango de un usuario existente.
// El personnummer es la clave natural y no se edita.
func (uc *UserUseCase) Update(id int64, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	var errs domain.ValidationErrors
	if strings.TrimSpace(in.Password) == "" {
		errs = append(errs, "Lösenord måste anges.")
	}
	rank, rankErrs, err := uc.resolveRank(in.RankID)
	if err != nil {
		return nil, err
	}
	errs = append(errs, rankErrs...)
	if len(errs) > 0 {
		return nil, errs
	}

	existing.Password = strings.TrimSpace(in.Password)
	if name := strings.TrimSpace(in.DisplayName); name != "" {
		existing.DisplayName = name
	}
	existing.RankID = in.RankID
	existing.IsAdmin = deriveAdminFlag(rank)

	if err := uc.users.Update(existing); err != nil {
		return nil, err
	}
	resp := userToDTO(existing)
	if rank != nil {
		resp.RankName = rank.Name
	}
	return resp, nil
}

func (uc *UserUseCase) resolveRank(rankID *int64) (*entity.Rank, domain.ValidationErrors, error) {
	if rankID == nil {
		return nil, nil, nil
	}
	rank, err := uc.ranks.GetByID(*rankID)
	if err != nil {
		return nil, nil, err
	}
	if rank == nil {
		return nil, domain.ValidationErrors{"Ogiltig rang."}, nil
	}
	return rank, nil, nil
}

// deriveAdminFlag aplica la regla de guardado: is_admin solo cuando el rango
// concede manage_users Y view_admin a la vez. manage_users solo = usuario
// parcialmente privilegiado, nunca administrador.
func deriveAdminFlag(rank *entity.Rank) bool {
	return rank != nil && rank.GrantsAdmin()
}

func userToDTO(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           u.ID,
		Personnummer: u.Username,
		DisplayName:  u.DisplayName,
		RankID:       u.RankID,
		IsAdmin:      u.IsAdmin,
	}
}
