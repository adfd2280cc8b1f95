package domain

// CommandKind identifies which drawing action a prompt resolved to
type CommandKind int

const (
	KindUnknown CommandKind = iota
	KindScene
	KindHouse
	KindTree
	KindCar
	KindPerson
	KindSun
	KindGrass
	KindClear
)

// Precedence is the order in which matched kinds win when a prompt names
// several elements ("house and tree" draws the house).
var Precedence = []CommandKind{
	KindScene,
	KindHouse,
	KindTree,
	KindCar,
	KindPerson,
	KindSun,
	KindGrass,
	KindClear,
}

// String returns the string representation of a command kind
func (k CommandKind) String() string {
	switch k {
	case KindScene:
		return "scene"
	case KindHouse:
		return "house"
	case KindTree:
		return "tree"
	case KindCar:
		return "car"
	case KindPerson:
		return "person"
	case KindSun:
		return "sun"
	case KindGrass:
		return "grass"
	case KindClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Command is a classified prompt
type Command struct {
	Prompt     string        `json:"prompt"`
	Normalized string        `json:"normalized"`
	Kind       CommandKind   `json:"kind"`
	Matched    []CommandKind `json:"matched,omitempty"`
}

// Ambiguous reports whether more than one element was named
func (c Command) Ambiguous() bool {
	return len(c.Matched) > 1
}
