package native

// Control identifies an engine input action. Values follow the engine's
// control table; the engine resolves them to whatever key, button, or axis
// the player has bound.
type Control int

const (
	ControlLookLeftRight    Control = 1
	ControlLookUpDown       Control = 2
	ControlMoveLeftRight    Control = 30
	ControlMoveUpDown       Control = 31
	ControlSprint           Control = 21
	ControlJump             Control = 22
	ControlEnter            Control = 23
	ControlAttack           Control = 24
	ControlAim              Control = 25
	ControlContext          Control = 51
	ControlReload           Control = 45
	ControlCover            Control = 44
	ControlTalk             Control = 46
	ControlPhone            Control = 27

	ControlVehicleAccelerate       Control = 71
	ControlVehicleBrake            Control = 72
	ControlVehicleHeadlight        Control = 74
	ControlVehicleExit             Control = 75
	ControlVehicleHandbrake        Control = 76
	ControlVehicleHorn             Control = 86
	ControlVehicleMoveLeftRight    Control = 59
	ControlVehicleMoveUpDown       Control = 60
	ControlVehicleDuck             Control = 73
	ControlVehicleSelectNextWeapon Control = 99
)
