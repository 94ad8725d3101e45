package scenario

import (
	"math"

	"github.com/lixenwraith/roadgen/frenet"
)

// curvatureTolerance separates maneuvers when segmenting a polyline.
// Distinct whole-unit values differ by at least 5e-4 rad per unit with default settings.
const curvatureTolerance = 1e-7

// Ranges bounds maneuver values, both ends inclusive
type Ranges struct {
	MinLength, MaxLength int
	MinAngle, MaxAngle   int
}

// Codec translates between maneuver sequences (genotype) and Frenet polylines (phenotype)
type Codec struct {
	Encoding       Encoding
	MapSize        float64
	StepSize       float64
	CurvatureBound float64
	SegmentLength  int
	TurnLength     float64
	Ranges         Ranges
}

// FromIndex maps a sampled curvature index to a maneuver: zero goes straight,
// positive turns left, negative turns right. The result is clamped to the ranges.
func (c Codec) FromIndex(index int) Maneuver {
	if index == 0 {
		return c.ClampManeuver(Maneuver{Kind: Straight, Value: c.SegmentLength})
	}

	kind := Left
	if index < 0 {
		kind, index = Right, -index
	}
	kappa := float64(index) * c.CurvatureBound / 10
	return c.ClampManeuver(Maneuver{Kind: kind, Value: c.turnValue(kappa)})
}

// turnValue encodes an unsigned curvature as a turn magnitude
func (c Codec) turnValue(kappa float64) int {
	if c.Encoding == EncodingCurvature {
		return int(math.Round(kappa * 100 / c.CurvatureBound))
	}
	return int(math.Round(kappa * c.TurnLength * 180 / math.Pi))
}

// Curvature returns the signed curvature of a maneuver, positive for left turns
func (c Codec) Curvature(m Maneuver) float64 {
	if !m.Kind.IsTurn() {
		return 0
	}

	var kappa float64
	if c.Encoding == EncodingCurvature {
		kappa = float64(m.Value) * c.CurvatureBound / 100
	} else {
		kappa = float64(m.Value) * math.Pi / 180 / c.TurnLength
	}

	if m.Kind == Right {
		return -kappa
	}
	return kappa
}

// Length returns the arc length a maneuver covers
func (c Codec) Length(m Maneuver) float64 {
	if m.Kind.IsTurn() {
		return c.TurnLength
	}
	return float64(m.Value)
}

// steps splits a maneuver into n equal steps close to the nominal step size
func (c Codec) steps(m Maneuver, step float64) (int, float64) {
	length := c.Length(m)
	n := max(1, int(math.Round(length/step)))
	return n, length / float64(n)
}

// Extend integrates one maneuver onto the builder and returns the number of points added
func (c Codec) Extend(b *frenet.Builder, m Maneuver, step float64) int {
	n, ds := c.steps(m, step)
	kappa := c.Curvature(m)
	for range n {
		b.Advance(kappa, ds)
	}
	return n
}

// Spans returns the number of polyline points each maneuver produces at the given step
func (c Codec) Spans(s Scenario, step float64) []int {
	spans := make([]int, len(s))
	for i, m := range s {
		spans[i], _ = c.steps(m, step)
	}
	return spans
}

func (c Codec) expand(s Scenario, step float64) frenet.Polyline {
	b := frenet.NewBuilder(c.MapSize)
	for _, m := range s {
		c.Extend(b, m, step)
	}
	return b.Points()
}

// Decode expands a scenario at the coarse step size; this is the polyline the
// validity oracle judges
func (c Codec) Decode(s Scenario) frenet.Polyline {
	return c.expand(s, c.StepSize)
}

// Dense expands a scenario with unit steps for simulators
func (c Codec) Dense(s Scenario) frenet.Polyline {
	return c.expand(s, 1)
}

// ClampManeuver forces the value into the configured range; turns are never zero
func (c Codec) ClampManeuver(m Maneuver) Maneuver {
	if m.Kind.IsTurn() {
		m.Value = min(max(m.Value, c.Ranges.MinAngle, 1), c.Ranges.MaxAngle)
	} else {
		m.Value = min(max(m.Value, c.Ranges.MinLength, 1), c.Ranges.MaxLength)
	}
	return m
}

// Clamp returns a copy with every value inside the configured ranges
func (c Codec) Clamp(s Scenario) Scenario {
	out := s.Clone()
	for i := range out {
		out[i] = c.ClampManeuver(out[i])
	}
	return out
}

// Encode segments a polyline grown from the map center back into maneuvers.
// Runs of constant curvature become one maneuver; a turning run spanning k turn
// lengths becomes k turns. Consecutive straights are indistinguishable and merge.
func (c Codec) Encode(pl frenet.Polyline) Scenario {
	type run struct {
		kappa, length float64
	}

	var runs []run
	prev := frenet.RoadPoint{X: c.MapSize / 2, Y: c.MapSize / 2}
	for _, p := range pl {
		ds := math.Hypot(p.X-prev.X, p.Y-prev.Y)
		dh := p.Heading - prev.Heading
		prev = p
		if ds == 0 {
			continue
		}

		kappa := dh / ds
		if n := len(runs); n > 0 && math.Abs(runs[n-1].kappa-kappa) < curvatureTolerance {
			runs[n-1].length += ds
			continue
		}
		runs = append(runs, run{kappa: kappa, length: ds})
	}

	var s Scenario
	for _, r := range runs {
		if math.Abs(r.kappa) < curvatureTolerance {
			s = append(s, Maneuver{Kind: Straight, Value: int(math.Round(r.length))})
			continue
		}

		kind := Left
		if r.kappa < 0 {
			kind = Right
		}
		m := Maneuver{Kind: kind, Value: c.turnValue(math.Abs(r.kappa))}
		for range max(1, int(math.Round(r.length/c.TurnLength))) {
			s = append(s, m)
		}
	}
	return s
}

// DeriveKinds recovers maneuver tags from the cumulative heading change over
// each span of points
func DeriveKinds(pl frenet.Polyline, spans []int) []Kind {
	kinds := make([]Kind, 0, len(spans))
	heading, next := 0.0, 0
	for _, n := range spans {
		if n <= 0 || next+n > len(pl) {
			break
		}
		end := pl[next+n-1].Heading
		delta := end - heading

		switch {
		case delta > curvatureTolerance:
			kinds = append(kinds, Left)
		case delta < -curvatureTolerance:
			kinds = append(kinds, Right)
		default:
			kinds = append(kinds, Straight)
		}
		heading, next = end, next+n
	}
	return kinds
}
