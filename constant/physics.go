package constant

// Collision tuning
const (
	// SeparationEpsilon is the gap left between puck and paddle after a hit
	// Keeps the pair from re-triggering on the next tick
	SeparationEpsilon = 0.1

	// PushScale is the fraction of paddle approach speed added to the puck
	PushScale = 0.5

	// MinWallBounceSpeed is the normal speed below which a wall clamps without reflecting
	MinWallBounceSpeed = 1.0
)

// Collision model names accepted by configuration
const (
	CollisionModelPush     = "push"
	CollisionModelSpecular = "specular"
)
