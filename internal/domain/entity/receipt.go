package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt es un trabajo facturado: mecánico (denormalizado por personnummer),
// tipo de trabajo activo en el momento del alta, importe y datos del cliente.
// Los contadores de piezas están separados por tipo: como máximo uno de
// StylingParts/PerformanceParts es no nulo, y solo cuando el tipo coincide.
// CreatedAt lo asigna el servidor y es inmutable.
type Receipt struct {
	ID               int64
	Mechanic         string
	WorkType         string
	StylingParts     *int
	PerformanceParts *int
	Amount           decimal.Decimal
	Customer         string
	Plate            string
	CreatedAt        time.Time
}
