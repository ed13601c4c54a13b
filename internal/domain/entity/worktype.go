package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de trabajo sembrados; Styling y Prestanda llevan contador de piezas.
const (
	WorkTypeReperation = "Reperation"
	WorkTypeStyling    = "Styling"
	WorkTypePrestanda  = "Prestanda"
)

// WorkType es una categoría de trabajo facturable con precio por defecto.
// Solo los tipos activos se pueden elegir en recibos nuevos; desactivar un
// tipo no invalida recibos existentes.
type WorkType struct {
	ID           int64
	Name         string
	DefaultPrice decimal.Decimal
	ExpenseCost  *decimal.Decimal // coste interno opcional
	IsActive     bool
	CreatedAt    time.Time
}

// TracksStylingParts indica si el tipo exige contador de piezas de styling.
func (w *WorkType) TracksStylingParts() bool { return w.Name == WorkTypeStyling }

// TracksPerformanceParts indica si el tipo exige contador de piezas de prestanda.
func (w *WorkType) TracksPerformanceParts() bool { return w.Name == WorkTypePrestanda }
