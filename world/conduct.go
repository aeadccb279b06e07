package world

// ConductKind is a god-conduct category raised by the player's actions
type ConductKind uint8

const (
	ConductDestroyIdol ConductKind = iota
	ConductKillPlant
	ConductAttackAlly
	ConductUseChaos
)

// String returns the conduct name
func (k ConductKind) String() string {
	switch k {
	case ConductDestroyIdol:
		return "destroy idol"
	case ConductKillPlant:
		return "kill plant"
	case ConductAttackAlly:
		return "attack ally"
	case ConductUseChaos:
		return "use chaos"
	}
	return "unknown"
}

// Conduct is one journal entry
type Conduct struct {
	Kind  ConductKind
	Level int
}

// DidConduct records a conduct against the player
func (w *World) DidConduct(kind ConductKind, level int) {
	w.conducts = append(w.conducts, Conduct{Kind: kind, Level: level})
}

// Conducts returns the journal
func (w *World) Conducts() []Conduct {
	return w.conducts
}
