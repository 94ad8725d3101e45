package parameter

// Suite Persistence
const (
	// SuitePersistencePath is the directory for generated suite files
	SuitePersistencePath = "./suites"
)

// Variation Operators
const (
	// GAMutationRate is probability of mutating a scenario (0.0-1.0)
	GAMutationRate = 0.4

	// GACrossoverRate is probability of recombining a parent pair (0.0-1.0)
	GACrossoverRate = 0.9

	// GAMaxMutations is the upper bound of swaps/value changes per mutation
	GAMaxMutations = 3
)

// Population
const (
	// GAPopulationSize is the default number of scenarios per generated suite
	GAPopulationSize = 100

	// GAParallelism bounds concurrent scenario generation
	GAParallelism = 4
)
