package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Enemy          = donburi.NewTag().SetName("Enemy")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Wall           = donburi.NewTag().SetName("Wall")
	Hazard         = donburi.NewTag().SetName("Hazard")
	FinishLine     = donburi.NewTag().SetName("FinishLine")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlatform   = "platform"
	ResolvCharacter  = "character"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvHazard     = "hazard"
	ResolvFinishLine = "finishline"
)
