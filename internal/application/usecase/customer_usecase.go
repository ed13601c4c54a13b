package usecase

import (
	"strings"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
)

// CustomerUseCase registro de clientes (nombre + teléfono).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List registro completo por nombre.
func (uc *CustomerUseCase) List() ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, customerToDTO(c))
	}
	return out, nil
}

// Create alta de cliente. Nombre duplicado -> domain.ErrDuplicate.
func (uc *CustomerUseCase) Create(in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	c, errs := customerFromRequest(in)
	if len(errs) > 0 {
		return nil, errs
	}
	created, err := uc.repo.Create(c)
	if err != nil {
		return nil, err
	}
	return customerToDTO(created), nil
}

// UpdatePhone edición del teléfono por id.
func (uc *CustomerUseCase) UpdatePhone(id int64, in dto.UpdateCustomerRequest) error {
	phone := strings.TrimSpace(in.Phone)
	if !domain.ValidPhone(phone) {
		return domain.ValidationErrors{"Telefonnummer är ogiltigt (använd siffror, +, -, mellanslag)."}
	}
	return uc.repo.UpdatePhone(id, phone)
}

// Upsert por nombre: inserta o reemplaza el teléfono conservando el id.
func (uc *CustomerUseCase) Upsert(in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	c, errs := customerFromRequest(in)
	if len(errs) > 0 {
		return nil, errs
	}
	saved, err := uc.repo.UpsertByName(c)
	if err != nil {
		return nil, err
	}
	return customerToDTO(saved), nil
}

func customerFromRequest(in dto.SaveCustomerRequest) (*entity.Customer, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs = append(errs, "Kundnamn måste anges.")
	}
	phone := strings.TrimSpace(in.Phone)
	if !domain.ValidPhone(phone) {
		errs = append(errs, "Telefonnummer är ogiltigt (använd siffror, +, -, mellanslag).")
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &entity.Customer{Name: name, Phone: phone}, nil
}

func customerToDTO(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}
