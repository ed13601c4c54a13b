package entity

// Nombres de capacidad usados en sesión y en el router.
const (
	CapViewAdmin    = "view_admin"
	CapManageUsers  = "manage_users"
	CapManagePrices = "manage_prices"
	CapEditReceipts = "edit_receipts"
)

// Rank es un conjunto nombrado de cuatro capacidades booleanas asignable a un
// usuario. Se gestiona con upsert por nombre y nunca se borra.
type Rank struct {
	ID           int64
	Name         string
	ViewAdmin    bool
	ManageUsers  bool
	ManagePrices bool
	EditReceipts bool
}

// Permissions es el conjunto de capacidades resuelto que viaja en la sesión.
// Es un snapshot derivado, no estado autoritativo.
type Permissions struct {
	ViewAdmin    bool `json:"view_admin"`
	ManageUsers  bool `json:"manage_users"`
	ManagePrices bool `json:"manage_prices"`
	EditReceipts bool `json:"edit_receipts"`
}

// Permissions devuelve las capacidades del rango tal cual.
func (r *Rank) Permissions() Permissions {
	return Permissions{
		ViewAdmin:    r.ViewAdmin,
		ManageUsers:  r.ManageUsers,
		ManagePrices: r.ManagePrices,
		EditReceipts: r.EditReceipts,
	}
}

// GrantsAdmin indica si el rango justifica el flag is_admin al guardar un
// usuario: exige manage_users Y view_admin a la vez. Un rango con
// manage_users pero sin view_admin da un usuario parcialmente privilegiado,
// nunca administrador. Regla deliberada del handler original de guardado.
func (r *Rank) GrantsAdmin() bool {
	return r.ManageUsers && r.ViewAdmin
}

// AllPermissions devuelve las cuatro capacidades activas (override de IsAdmin).
func AllPermissions() Permissions {
	return Permissions{ViewAdmin: true, ManageUsers: true, ManagePrices: true, EditReceipts: true}
}

// Has consulta una capacidad por nombre.
func (p Permissions) Has(capability string) bool {
	switch capability {
	case CapViewAdmin:
		return p.ViewAdmin
	case CapManageUsers:
		return p.ManageUsers
	case CapManagePrices:
		return p.ManagePrices
	case CapEditReceipts:
		return p.EditReceipts
	default:
		return false
	}
}
