package constants

// World units are pixels of the logical screen. The ship flies left to right
// across a 640x480 field; hazards enter from the right edge.
const (
	// ScreenWidth is the logical width of the play field
	ScreenWidth float64 = 640.0
	// ScreenHeight is the logical height of the play field
	ScreenHeight float64 = 480.0
	// PixelsPerUnit converts world units to pixels
	PixelsPerUnit float64 = 32.0
)

// Spawning
const (
	// HazardInitialDelay is the time before the first hazard spawns
	HazardInitialDelay float64 = 1.0 // seconds
	// HazardSpawnInterval is the time between hazard spawns
	HazardSpawnInterval float64 = 2.0 // seconds
	// CollectibleInitialDelay is the time before the first collectible spawns
	CollectibleInitialDelay float64 = 3.0 // seconds
	// CollectibleSpawnInterval is the time between collectible spawns
	CollectibleSpawnInterval float64 = 5.0 // seconds
	// MinSpawnInterval is the smallest accepted spawn interval
	MinSpawnInterval float64 = 0.05 // seconds

	// HazardSpawnX is the fixed x coordinate hazards spawn at, just past the right edge
	HazardSpawnX float64 = ScreenWidth
	// HazardMinY is the lowest y coordinate a hazard spawns at
	HazardMinY float64 = 0.0
	// HazardMaxY is the highest y coordinate a hazard spawns at
	HazardMaxY float64 = ScreenHeight - 32.0

	// CollectibleMinX is the left edge of the collectible spawn rectangle
	CollectibleMinX float64 = 64.0
	// CollectibleMaxX is the right edge of the collectible spawn rectangle
	CollectibleMaxX float64 = ScreenWidth - 80.0
	// CollectibleMinY is the top edge of the collectible spawn rectangle
	CollectibleMinY float64 = 112.0
	// CollectibleMaxY is the bottom edge of the collectible spawn rectangle
	CollectibleMaxY float64 = ScreenHeight - 128.0
)

// Scoring
const (
	// InitialScore is the score a session starts with
	InitialScore int = 0
	// CollectibleValue is the score awarded for a collectible
	CollectibleValue int = 10
)

// Entities
const (
	// ShipSpeed is the speed at which the ship moves
	ShipSpeed float64 = 5 * PixelsPerUnit
	// ShipWidth is the width of the ship
	ShipWidth float64 = 32.0
	// ShipHeight is the height of the ship
	ShipHeight float64 = 24.0
	// ShipStartingX is where the ship starts
	ShipStartingX float64 = 96.0
	// ShipStartingY is where the ship starts
	ShipStartingY float64 = ScreenHeight / 2
	// ShipFireRate is the minimum time between laser shots
	ShipFireRate float64 = 0.5 // seconds

	// HazardSize is the width and height of a hazard
	HazardSize float64 = 32.0
	// HazardMinSpeed is the slowest a hazard moves
	HazardMinSpeed float64 = 1 * PixelsPerUnit
	// HazardMaxSpeed is the fastest a hazard moves
	HazardMaxSpeed float64 = 3 * PixelsPerUnit
	// HazardRotationSpeed is how fast a hazard spins
	HazardRotationSpeed float64 = 50.0 // degrees per second
	// HazardDespawnX is the x coordinate past which hazards are removed
	HazardDespawnX float64 = -5 * PixelsPerUnit

	// CollectibleSize is the width and height of a collectible
	CollectibleSize float64 = 16.0

	// LaserWidth is the width of a laser
	LaserWidth float64 = 16.0
	// LaserHeight is the height of a laser
	LaserHeight float64 = 4.0
	// LaserSpeed is the speed at which lasers move
	LaserSpeed float64 = 10 * PixelsPerUnit
	// LaserLifetime is how long a laser exists before it is removed
	LaserLifetime float64 = 2.0 // seconds
)
