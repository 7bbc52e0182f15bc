package components

import "github.com/yohamta/donburi"

// HazardData marks level geometry that hurts on contact. Zero damage means
// the hazard kills outright.
type HazardData struct {
	Kind   string
	Damage int
}

var Hazard = donburi.NewComponentType[HazardData]()

// Lethal reports whether touching the hazard is an instant kill.
func (h *HazardData) Lethal() bool {
	return h.Damage <= 0
}
