package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render/update layer used by every archetype.
const Default ecs.LayerID = 0

// StateID identifies an actor's behavioural state. Exactly one is active at a
// time; the zero value is Idle.
type StateID int

const (
	Idle StateID = iota
	Locomotion
	Rising
	Falling
	Attacking
	TakingDamage
	Dead
)

var stateNames = map[StateID]string{
	Idle:         "idle",
	Locomotion:   "locomotion",
	Rising:       "rising",
	Falling:      "falling",
	Attacking:    "attacking",
	TakingDamage: "taking_damage",
	Dead:         "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseState maps a state name (as used in YAML clip tables) back to its ID.
func ParseState(name string) (StateID, bool) {
	for id, n := range stateNames {
		if n == name {
			return id, true
		}
	}
	return Idle, false
}

// AllStates lists every state in declaration order.
var AllStates = []StateID{Idle, Locomotion, Rising, Falling, Attacking, TakingDamage, Dead}

// Locked reports whether the state ignores movement and attack intent.
func (s StateID) Locked() bool {
	return s == Attacking || s == TakingDamage || s == Dead
}

// Facing is the horizontal direction an actor looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Sign returns -1 for left and +1 for right.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return DirectionLeft
	}
	return DirectionRight
}

// Kind tags an actor with its capability set.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	if k == KindEnemy {
		return "enemy"
	}
	return "player"
}

// Opposes reports whether actors of the two kinds can hit each other.
func (k Kind) Opposes(other Kind) bool {
	return k != other
}

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)
