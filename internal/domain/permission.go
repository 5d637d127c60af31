package domain

// Flag names a boolean capability stored on a profile.
type Flag string

const (
	FlagViewAllOrders     Flag = "can_view_all_orders"
	FlagCreateOrders      Flag = "can_create_orders"
	FlagEditAllOrders     Flag = "can_edit_all_orders"
	FlagDeleteOwnOrders   Flag = "can_delete_own_orders"
	FlagCreateClients     Flag = "can_create_clients"
	FlagEditClients       Flag = "can_edit_clients"
	FlagDeleteClients     Flag = "can_delete_clients"
	FlagViewFinancials    Flag = "can_view_financials"
	FlagCreateQuotes      Flag = "can_create_quotes"
	FlagEditQuotes        Flag = "can_edit_quotes"
	FlagViewAllQuotes     Flag = "can_view_all_quotes"
	FlagManageMaintenance Flag = "can_manage_maintenance"
	FlagViewMaintenance   Flag = "can_view_maintenance"
	FlagManageInventory   Flag = "can_manage_inventory"
	FlagViewInventory     Flag = "can_view_inventory"
	FlagViewEquipments    Flag = "can_view_equipments"
	FlagEditEquipments    Flag = "can_edit_equipments"
	FlagViewReports       Flag = "can_view_reports"
)

// AllFlags lists every known flag in a stable order.
var AllFlags = []Flag{
	FlagViewAllOrders,
	FlagCreateOrders,
	FlagEditAllOrders,
	FlagDeleteOwnOrders,
	FlagCreateClients,
	FlagEditClients,
	FlagDeleteClients,
	FlagViewFinancials,
	FlagCreateQuotes,
	FlagEditQuotes,
	FlagViewAllQuotes,
	FlagManageMaintenance,
	FlagViewMaintenance,
	FlagManageInventory,
	FlagViewInventory,
	FlagViewEquipments,
	FlagEditEquipments,
	FlagViewReports,
}

// Valid reports whether the flag is one of the known capability names.
func (f Flag) Valid() bool {
	for _, known := range AllFlags {
		if f == known {
			return true
		}
	}
	return false
}

// FlagSet is the per-profile bag of capability flags, persisted as JSONB.
// A flag absent from the set carries no grant; callers fall back to the
// restrictive defaults.
type FlagSet map[Flag]bool

// Get returns the stored value and whether the flag is present at all.
func (s FlagSet) Get(flag Flag) (value, ok bool) {
	if s == nil {
		return false, false
	}
	value, ok = s[flag]
	return value, ok
}

// Clone returns an independent copy of the set.
func (s FlagSet) Clone() FlagSet {
	if s == nil {
		return nil
	}
	out := make(FlagSet, len(s))
	for flag, v := range s {
		out[flag] = v
	}
	return out
}
