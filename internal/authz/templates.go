package authz

import "github.com/eletroclima/fieldops-service/internal/domain"

// Template names a preset flag bag used to bulk-initialize a technician.
type Template string

const (
	TemplateJunior   Template = "junior"
	TemplateSenior   Template = "senior"
	TemplateExternal Template = "external"
)

// junior is also the deny-by-default table: any flag absent from a stored set
// resolves to the value here.
var junior = domain.FlagSet{
	domain.FlagViewAllOrders:     false,
	domain.FlagCreateOrders:      true,
	domain.FlagEditAllOrders:     false,
	domain.FlagDeleteOwnOrders:   false,
	domain.FlagCreateClients:     false,
	domain.FlagEditClients:       false,
	domain.FlagDeleteClients:     false,
	domain.FlagViewFinancials:    false,
	domain.FlagCreateQuotes:      false,
	domain.FlagEditQuotes:        false,
	domain.FlagViewAllQuotes:     false,
	domain.FlagManageMaintenance: false,
	domain.FlagViewMaintenance:   true,
	domain.FlagManageInventory:   false,
	domain.FlagViewInventory:     true,
	domain.FlagViewEquipments:    true,
	domain.FlagEditEquipments:    false,
	domain.FlagViewReports:       false,
}

// senior grants broad operational access but never financial visibility.
var senior = domain.FlagSet{
	domain.FlagViewAllOrders:     true,
	domain.FlagCreateOrders:      true,
	domain.FlagEditAllOrders:     true,
	domain.FlagDeleteOwnOrders:   true,
	domain.FlagCreateClients:     true,
	domain.FlagEditClients:       true,
	domain.FlagDeleteClients:     false,
	domain.FlagViewFinancials:    false,
	domain.FlagCreateQuotes:      true,
	domain.FlagEditQuotes:        true,
	domain.FlagViewAllQuotes:     true,
	domain.FlagManageMaintenance: true,
	domain.FlagViewMaintenance:   true,
	domain.FlagManageInventory:   true,
	domain.FlagViewInventory:     true,
	domain.FlagViewEquipments:    true,
	domain.FlagEditEquipments:    true,
	domain.FlagViewReports:       true,
}

// external is for contractors: read-only on the material they are sent to.
var external = domain.FlagSet{
	domain.FlagViewAllOrders:     false,
	domain.FlagCreateOrders:      false,
	domain.FlagEditAllOrders:     false,
	domain.FlagDeleteOwnOrders:   false,
	domain.FlagCreateClients:     false,
	domain.FlagEditClients:       false,
	domain.FlagDeleteClients:     false,
	domain.FlagViewFinancials:    false,
	domain.FlagCreateQuotes:      false,
	domain.FlagEditQuotes:        false,
	domain.FlagViewAllQuotes:     false,
	domain.FlagManageMaintenance: false,
	domain.FlagViewMaintenance:   true,
	domain.FlagManageInventory:   false,
	domain.FlagViewInventory:     false,
	domain.FlagViewEquipments:    true,
	domain.FlagEditEquipments:    false,
	domain.FlagViewReports:       false,
}

var templates = map[Template]domain.FlagSet{
	TemplateJunior:   junior,
	TemplateSenior:   senior,
	TemplateExternal: external,
}

// TemplateFlags returns a copy of the named preset.
func TemplateFlags(name Template) (domain.FlagSet, bool) {
	set, ok := templates[name]
	if !ok {
		return nil, false
	}
	return set.Clone(), true
}

// DefaultFlags returns a copy of the restrictive default table.
func DefaultFlags() domain.FlagSet {
	return junior.Clone()
}

// defaultFor resolves the fallback value for a single flag.
func defaultFor(flag domain.Flag) bool {
	return junior[flag]
}
