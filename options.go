package smartedge

// Defaults for the fields of [Options]. Lengths are in the same units as the
// coordinates of anchors and obstacles.
const (
	// DefaultSpacing is the targeted distance between neighboring control points.
	DefaultSpacing = 100.0
	// DefaultIterations is the number of relaxation passes.
	DefaultIterations = 10
	// DefaultNodeRadius approximates the radius of a node's hard core.
	DefaultNodeRadius = 70.0
	// DefaultInfluenceRadius is the distance beyond which obstacles have no effect.
	DefaultInfluenceRadius = 200.0
	// DefaultForceStrength is the base strength of the repulsive force.
	DefaultForceStrength = 20.0
	// DefaultMaxForce bounds the force applied to a control point in one pass.
	DefaultMaxForce = 50.0
)

// Options configures a single routing computation.
//
// A zero value in any field selects the corresponding default, so the zero Options
// is equivalent to [DefaultOptions].
type Options struct {
	// Spacing is the targeted distance between neighboring control points. Longer
	// edges get more control points and can bend around more obstacles.
	Spacing float64
	// Iterations is the number of relaxation passes. The strength of each pass
	// decays linearly over the schedule.
	Iterations int
	// NodeRadius scales the inverse-distance term of the force. Obstacles closer
	// than NodeRadius push harder than ForceStrength.
	NodeRadius float64
	// InfluenceRadius is a hard cutoff: obstacles at this distance or farther from a
	// control point exert no force on it.
	InfluenceRadius float64
	// ForceStrength is the base multiplier of the repulsive force.
	ForceStrength float64
	// MaxForce clamps the combined force on one control point in one pass.
	MaxForce float64
}

// DefaultOptions returns options with every field set to its default.
func DefaultOptions() Options {
	return Options{
		Spacing:         DefaultSpacing,
		Iterations:      DefaultIterations,
		NodeRadius:      DefaultNodeRadius,
		InfluenceRadius: DefaultInfluenceRadius,
		ForceStrength:   DefaultForceStrength,
		MaxForce:        DefaultMaxForce,
	}
}

func (opts Options) withDefaults() Options {
	if opts.Spacing <= 0 {
		opts.Spacing = DefaultSpacing
	}
	if opts.Iterations <= 0 {
		opts.Iterations = DefaultIterations
	}
	if opts.NodeRadius <= 0 {
		opts.NodeRadius = DefaultNodeRadius
	}
	if opts.InfluenceRadius <= 0 {
		opts.InfluenceRadius = DefaultInfluenceRadius
	}
	if opts.ForceStrength == 0 {
		opts.ForceStrength = DefaultForceStrength
	}
	if opts.MaxForce <= 0 {
		opts.MaxForce = DefaultMaxForce
	}
	return opts
}
