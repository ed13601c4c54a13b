package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceiptRequest alta de recibo. Amount omitido = precio por defecto del
// tipo elegido. Los contadores de piezas son mutuamente excluyentes según tipo.
type CreateReceiptRequest struct {
	WorkType         string           `json:"work_type"`
	StylingParts     *int             `json:"styling_parts"`
	PerformanceParts *int             `json:"performance_parts"`
	Amount           *decimal.Decimal `json:"amount"`
	Customer         string           `json:"customer"`
	Plate            string           `json:"plate"`
}

// ReceiptResponse un recibo con su etiqueta de orden de trabajo derivada.
type ReceiptResponse struct {
	ID               int64           `json:"id"`
	WorkOrder        string          `json:"work_order"`
	Mechanic         string          `json:"mechanic"`
	WorkType         string          `json:"work_type"`
	StylingParts     *int            `json:"styling_parts"`
	PerformanceParts *int            `json:"performance_parts"`
	Amount           decimal.Decimal `json:"amount"`
	AmountDisplay    string          `json:"amount_display"`
	Customer         string          `json:"customer"`
	Plate            string          `json:"plate"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ReceiptListResponse listado de recibos, más reciente primero.
type ReceiptListResponse struct {
	OK       bool               `json:"ok"`
	Receipts []*ReceiptResponse `json:"receipts"`
}

// ReceiptCreatedResponse alta correcta.
type ReceiptCreatedResponse struct {
	OK      bool             `json:"ok"`
	Receipt *ReceiptResponse `json:"receipt"`
}
