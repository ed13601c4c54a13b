package usecase

import (
	"strings"

	"github.com/bennys-motorworks/verkstad-api/internal/application/dto"
	"github.com/bennys-motorworks/verkstad-api/internal/domain"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/entity"
	"github.com/bennys-motorworks/verkstad-api/internal/domain/repository"
	"github.com/bennys-motorworks/verkstad-api/pkg/svtext"
)

// ReceiptPDFGenerator puerto para la orden de trabajo imprimible.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(receipt *entity.Receipt) ([]byte, error)
}

// ReceiptUseCase alta y listado de recibos.
type ReceiptUseCase struct {
	receipts  repository.ReceiptRepository
	workTypes repository.WorkTypeRepository
	pdf       ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	receipts repository.ReceiptRepository,
	workTypes repository.WorkTypeRepository,
	pdf ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{receipts: receipts, workTypes: workTypes, pdf: pdf}
}

// Create valida el alta completa (acumulando todos los problemas) y persiste
// solo si la lista queda vacía. El mecánico sale de la sesión, nunca del payload.
func (uc *ReceiptUseCase) Create(mechanic string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	var errs domain.ValidationErrors

	wt, err := uc.workTypes.GetActiveByName(strings.TrimSpace(in.WorkType))
	if err != nil {
		return nil, err
	}
	if wt == nil {
		errs = append(errs, "Ogiltig typ av arbete.")
	}

	styling, performance := in.StylingParts, in.PerformanceParts
	switch {
	case wt != nil && wt.TracksStylingParts():
		if styling == nil {
			errs = append(errs, "Antal delar krävs för Styling.")
		} else if *styling < 0 {
			errs = append(errs, "Antal delar måste vara ett positivt heltal.")
		}
		if performance != nil {
			errs = append(errs, "Prestandadelar får inte anges för Styling.")
		}
	case wt != nil && wt.TracksPerformanceParts():
		if performance == nil {
			errs = append(errs, "Antal delar krävs för Prestanda.")
		} else if *performance < 0 {
			errs = append(errs, "Antal delar måste vara ett positivt heltal.")
		}
		if styling != nil {
			errs = append(errs, "Stylingdelar får inte anges för Prestanda.")
		}
	default:
		// Tipos sin seguimiento de piezas: ambos contadores prohibidos.
		if styling != nil || performance != nil {
			errs = append(errs, "Antal delar får bara anges för Styling/Prestanda.")
		}
	}

	customer := strings.TrimSpace(in.Customer)
	if customer == "" {
		errs = append(errs, "Kund måste anges.")
	}

	plate := domain.NormalizePlate(in.Plate)
	if !domain.ValidPlate(plate) {
		errs = append(errs, "Regplåt måste vara i formatet XXX-000.")
	}

	// Importe omitido: cae al precio por defecto del tipo elegido. Si el tipo
	// es desconocido/inactivo no hay precio al que caer y ya se acumuló error.
	amount := in.Amount
	if amount == nil && wt != nil {
		v := wt.DefaultPrice
		amount = &v
	}
	if amount == nil || amount.IsNegative() {
		errs = append(errs, "Summa måste vara ett positivt tal.")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	created, err := uc.receipts.Create(&entity.Receipt{
		Mechanic:         mechanic,
		WorkType:         wt.Name,
		StylingParts:     styling,
		PerformanceParts: performance,
		Amount:           *amount,
		Customer:         customer,
		Plate:            plate,
	})
	if err != nil {
		return nil, err
	}
	return receiptToDTO(created), nil
}

// List devuelve todos los recibos, el más reciente primero.
func (uc *ReceiptUseCase) List() ([]*dto.ReceiptResponse, error) {
	list, err := uc.receipts.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		out = append(out, receiptToDTO(r))
	}
	return out, nil
}

// PDF genera la orden de trabajo imprimible de un recibo.
func (uc *ReceiptUseCase) PDF(id int64) ([]byte, error) {
	receipt, err := uc.receipts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateReceiptPDF(receipt)
}

func receiptToDTO(r *entity.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:               r.ID,
		WorkOrder:        svtext.WorkOrder(r.ID),
		Mechanic:         r.Mechanic,
		WorkType:         r.WorkType,
		StylingParts:     r.StylingParts,
		PerformanceParts: r.PerformanceParts,
		Amount:           r.Amount,
		AmountDisplay:    svtext.SEK(r.Amount),
		Customer:         r.Customer,
		Plate:            r.Plate,
		CreatedAt:        r.CreatedAt,
	}
}
