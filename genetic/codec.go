package genetic

// --- Representation Mapping ---

// Codec maps between the genotype operators vary and the phenotype consumers use.
// G is the evolvable encoding, P the expanded form built from it.
//
// Encode recovers a genotype from an existing phenotype, Decode builds the
// phenotype, and Clamp pulls a genotype back into the representable ranges
// without touching its structure.
type Codec[G Solution, P any] interface {
	Encode(P) G
	Decode(G) P
	Clamp(G) G
}

// --- Batch Helpers ---

// ClampAll replaces every member of batch with its clamped form in place and
// returns the batch. Operators call it on offspring built from external input.
func ClampAll[G Solution, P any](codec Codec[G, P], batch []G) []G {
	for i := range batch {
		batch[i] = codec.Clamp(batch[i])
	}
	return batch
}

// ClampPairs is ClampAll for paired offspring
func ClampPairs[G Solution, P any](codec Codec[G, P], pairs [][2]G) [][2]G {
	for i := range pairs {
		pairs[i][0] = codec.Clamp(pairs[i][0])
		pairs[i][1] = codec.Clamp(pairs[i][1])
	}
	return pairs
}
