package genetic

import "testing"

// digits clamps every element of an int slice into [0, 9]
type digits struct{}

func (digits) Encode(s string) []int {
	out := make([]int, len(s))
	for i, r := range s {
		out[i] = int(r - '0')
	}
	return out
}

func (digits) Decode(g []int) string {
	b := make([]byte, len(g))
	for i, v := range g {
		b[i] = byte('0' + v)
	}
	return string(b)
}

func (digits) Clamp(g []int) []int {
	out := make([]int, len(g))
	for i, v := range g {
		out[i] = min(max(v, 0), 9)
	}
	return out
}

func TestClampAll(t *testing.T) {
	batch := [][]int{{-1, 5, 12}, {3}}
	ClampAll[[]int, string](digits{}, batch)

	if got := (digits{}).Decode(batch[0]); got != "059" {
		t.Errorf("first member = %q, want %q", got, "059")
	}
	if got := (digits{}).Decode(batch[1]); got != "3" {
		t.Errorf("second member = %q, want %q", got, "3")
	}
}

func TestClampPairs(t *testing.T) {
	pairs := [][2][]int{{{10}, {-4, 4}}}
	ClampPairs[[]int, string](digits{}, pairs)

	if pairs[0][0][0] != 9 || pairs[0][1][0] != 0 || pairs[0][1][1] != 4 {
		t.Errorf("unexpected clamped pair %v", pairs[0])
	}
}
