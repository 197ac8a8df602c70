package native

// Native function hashes used by the bindings. Values follow the engine's
// published native database.
const (
	GetEntityCoords        Hash = 0x3FEF770D40960D5A
	SetEntityCoords        Hash = 0x06843DA7060A026B
	GetEntityHeading       Hash = 0xE83D4F9BA2A38914
	SetEntityHeading       Hash = 0x8E2530AA8ADA980E
	GetEntityVelocity      Hash = 0x4805D2B1D8CF94A9
	SetEntityVelocity      Hash = 0x1C99BB7B6E96D16F
	GetEntityForwardVector Hash = 0x0A794A5A57F8DF91
	ApplyForceToEntity     Hash = 0xC5F68BE9613E2D18
	DoesEntityExist        Hash = 0x7239B21A38F536BA
	DeleteEntity           Hash = 0xAE3CBE5BF394C9C9

	PlayerPedID        Hash = 0xD80958FC74E988A6
	CreatePed          Hash = 0xD49F9B0955C367DE
	IsPedInAnyVehicle  Hash = 0x997ABD671D25CA0B
	GetVehiclePedIsIn  Hash = 0x9A9112A0FE9A4713
	TaskGoStraightTo   Hash = 0xD76B57B44F1E6F8B
	TaskLeaveVehicle   Hash = 0xD3DBCE61A490BE02
	TaskWanderStandard Hash = 0xBB9CE077274F6A1B

	GetEntitySpeed            Hash = 0xD5037BA82E12416F
	SetVehicleIndicatorLights Hash = 0xB5D45264751B7DF0
	GetIsVehicleEngineRunning Hash = 0xAE31E7DF9B5B132E
	SetVehicleEngineOn        Hash = 0x2497C4717C8B881E
	SetVehicleForwardSpeed    Hash = 0xAB54A438726D25D5
	GetVehicleSteeringAngle   Hash = 0x8BE4AB9B2C1A27CD
)
