package serialization

// Format constants.
const (
	// NetworkMagic opens a network record.
	NetworkMagic = "NNL"

	// TrainingSetMagic opens a training-set record.
	TrainingSetMagic = "NNLT"

	// FormatVersion is the current record version.
	FormatVersion = 1
)
