package domain

import "time"

// EquipmentKind distinguishes the two service lines.
type EquipmentKind string

const (
	EquipmentKindElectrical EquipmentKind = "electrical"
	EquipmentKindHVAC       EquipmentKind = "hvac"
)

// Valid reports whether the kind is known.
func (k EquipmentKind) Valid() bool {
	return k == EquipmentKindElectrical || k == EquipmentKindHVAC
}

// Equipment is a serviceable unit installed at a client site.
type Equipment struct {
	ID           string
	ClientID     string
	Name         string
	Kind         EquipmentKind
	SerialNumber string
	Location     string
	InstalledAt  *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
