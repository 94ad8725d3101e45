package parameter

// Map & Road Envelope
const (
	// MapSize is the side of the square map, roads must stay in [0, MapSize]
	MapSize = 200

	// LaneWidth is the simulator lane width, carried for downstream consumers
	LaneWidth = 10

	// MinSegmentLength / MaxSegmentLength bound Straight maneuver lengths
	MinSegmentLength = 5
	MaxSegmentLength = 30

	// MinTurnAngle / MaxTurnAngle bound Left/Right maneuver magnitudes
	MinTurnAngle = 10
	MaxTurnAngle = 80
)

// Frenet Growth
const (
	// StepSize is the coarse integration step used while growing a road
	StepSize = 3.0

	// CurvatureBound scales a curvature index: kappa = index * CurvatureBound / 10
	CurvatureBound = 0.05

	// CurvatureIndexMin / CurvatureIndexMax is the half-open sampling range of curvature indices
	CurvatureIndexMin = -10
	CurvatureIndexMax = 10

	// SegmentLength is the length given to generated Straight maneuvers
	SegmentLength = 30

	// TurnLength is the arc length over which a turn maneuver is integrated
	TurnLength = 15.0

	// GrowthMaxSteps caps a single grow-and-rollback pass
	GrowthMaxSteps = 512

	// GenerationMaxAttempts caps grow passes per generated scenario
	GenerationMaxAttempts = 64

	// GenerationMinManeuvers rejects scenarios shorter than this
	GenerationMinManeuvers = 1
)

// Validity Oracle
const (
	// InterpolationDistance is the target spacing of densified nodes
	InterpolationDistance = 1.0

	// MinInterpolationNodes is the node floor when densifying short roads
	MinInterpolationNodes = 20

	// RoundingPrecision is the decimal precision of densified coordinates
	RoundingPrecision = 3

	// MaxCurvature is the sharpness threshold on densified roads
	MaxCurvature = 0.2
)

// Variation Value Grids
const (
	// LengthStep is the spacing of candidate lengths drawn by value mutation
	LengthStep = 2

	// AngleStep is the spacing of candidate turn magnitudes drawn by value mutation
	AngleStep = 5
)
