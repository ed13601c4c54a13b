package dto

import "github.com/shopspring/decimal"

// SaveUserRequest alta/edición de usuario desde el panel admin.
// El flag admin NO se acepta del cliente: se deriva del rango asignado
// (manage_users y view_admin a la vez).
type SaveUserRequest struct {
	Personnummer string `json:"personnummer"`
	DisplayName  string `json:"display_name"`
	Password     string `json:"password"`
	RankID       *int64 `json:"rank_id"`
}

// UserResponse un usuario sin contraseña.
type UserResponse struct {
	ID           int64  `json:"id"`
	Personnummer string `json:"personnummer"`
	DisplayName  string `json:"display_name"`
	RankID       *int64 `json:"rank_id"`
	RankName     string `json:"rank_name,omitempty"`
	IsAdmin      bool   `json:"is_admin"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	OK    bool            `json:"ok"`
	Users []*UserResponse `json:"users"`
}

// UserSavedResponse alta/edición correcta.
type UserSavedResponse struct {
	OK   bool          `json:"ok"`
	User *UserResponse `json:"user"`
}

// SaveRankRequest upsert de rango por nombre.
type SaveRankRequest struct {
	Name         string `json:"name"`
	ViewAdmin    bool   `json:"view_admin"`
	ManageUsers  bool   `json:"manage_users"`
	ManagePrices bool   `json:"manage_prices"`
	EditReceipts bool   `json:"edit_receipts"`
}

// RankResponse un rango con sus cuatro capacidades.
type RankResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ViewAdmin    bool   `json:"view_admin"`
	ManageUsers  bool   `json:"manage_users"`
	ManagePrices bool   `json:"manage_prices"`
	EditReceipts bool   `json:"edit_receipts"`
}

// RankListResponse listado de rangos.
type RankListResponse struct {
	OK    bool            `json:"ok"`
	Ranks []*RankResponse `json:"ranks"`
}

// RankSavedResponse upsert correcto.
type RankSavedResponse struct {
	OK   bool          `json:"ok"`
	Rank *RankResponse `json:"rank"`
}

// StatsRequest filtros del panel (query params).
type StatsRequest struct {
	DateFrom string `query:"from"`
	DateTo   string `query:"to"`
	WorkType string `query:"work_type"`
	Mechanic string `query:"mechanic"`
}

// StatsResponse estadísticas agregadas del panel admin.
type StatsResponse struct {
	OK                 bool                `json:"ok"`
	TotalReceipts      int64               `json:"total_receipts"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	TotalAmountDisplay string              `json:"total_amount_display"`
	ByWorkType         []WorkTypeCountItem `json:"by_work_type"`
	Mechanics          []string            `json:"mechanics"`
}

// WorkTypeCountItem recuento por tipo de trabajo.
type WorkTypeCountItem struct {
	WorkType string `json:"work_type"`
	Total    int64  `json:"total"`
}
