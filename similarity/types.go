package similarity

// Measure names a similarity measure.
type Measure string

const (
	MeasureDice    Measure = "dice"
	MeasureCosine  Measure = "cosine"
	MeasureJaccard Measure = "jaccard"
)

// Method names a matching strategy: every-pair comparison, or
// corresponding-index comparison between two equal-length entity lists.
// Supplemented from the original system's MatchMethod, which spec.md
// does not name but which distinguishes an O(n*m) full cross join from
// an O(n) positional comparison.
type Method string

const (
	MethodCrosswise Method = "crosswise"
	MethodPairwise  Method = "pairwise"
)
