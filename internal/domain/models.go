package domain

// Condominium is the parent entity; machines reference it by id.
type Condominium struct {
	ID           int64
	Name         string
	Address      string
	ContactPhone string
	Email        string
}

// Machine belongs to exactly one condominium. Identifier is unique per
// condominium, not globally; the machines table carries a composite
// unique key on (condominium_id, identifier).
type Machine struct {
	ID            int64
	Identifier    string
	Type          string
	CondominiumID int64
}
