package dto

import "github.com/shopspring/decimal"

// SaveWorkTypeRequest alta/edición/upsert de tipo de trabajo.
type SaveWorkTypeRequest struct {
	Name         string           `json:"name"`
	DefaultPrice *decimal.Decimal `json:"default_price"`
	ExpenseCost  *decimal.Decimal `json:"expense_cost"`
	IsActive     *bool            `json:"is_active"` // omitido = activo
}

// WorkTypeResponse un tipo de trabajo configurado.
type WorkTypeResponse struct {
	ID                  int64            `json:"id"`
	Name                string           `json:"name"`
	DefaultPrice        decimal.Decimal  `json:"default_price"`
	DefaultPriceDisplay string           `json:"default_price_display"`
	ExpenseCost         *decimal.Decimal `json:"expense_cost,omitempty"`
	IsActive            bool             `json:"is_active"`
}

// WorkTypeListResponse listado de tipos de trabajo.
type WorkTypeListResponse struct {
	OK        bool                `json:"ok"`
	WorkTypes []*WorkTypeResponse `json:"work_types"`
}

// WorkTypeSavedResponse alta/edición correcta.
type WorkTypeSavedResponse struct {
	OK       bool              `json:"ok"`
	WorkType *WorkTypeResponse `json:"work_type"`
}
