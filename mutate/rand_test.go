package mutate

import "testing"

// scriptRand replays a fixed schedule of draws so tests can steer every
// structural decision. Any draw outside the script fails the test.
type scriptRand struct {
	t      *testing.T
	ints   []int
	uints  []uint64
	floats []float64
}

func (r *scriptRand) IntN(n int) int {
	r.t.Helper()

	if len(r.ints) == 0 {
		r.t.Fatalf("unexpected IntN(%d) draw", n)
	}

	v := r.ints[0]
	r.ints = r.ints[1:]

	if v < 0 || v >= n {
		r.t.Fatalf("scripted draw %d out of range [0, %d)", v, n)
	}

	return v
}

func (r *scriptRand) Uint64() uint64 {
	r.t.Helper()

	if len(r.uints) == 0 {
		r.t.Fatalf("unexpected Uint64 draw")
	}

	v := r.uints[0]
	r.uints = r.uints[1:]

	return v
}

func (r *scriptRand) Float64() float64 {
	r.t.Helper()

	if len(r.floats) == 0 {
		r.t.Fatalf("unexpected Float64 draw")
	}

	v := r.floats[0]
	r.floats = r.floats[1:]

	return v
}

func (r *scriptRand) exhausted() bool {
	return len(r.ints) == 0 && len(r.uints) == 0 && len(r.floats) == 0
}

// lcgRand is a tiny deterministic source for property-style tests.
type lcgRand struct {
	state uint64
}

func (r *lcgRand) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

func (r *lcgRand) IntN(n int) int {
	return int(r.next() % uint64(n))
}

func (r *lcgRand) Uint64() uint64 {
	return r.next()
}

func (r *lcgRand) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// panicRand fails the test on any draw; it verifies code paths that must
// never consult the random source.
type panicRand struct {
	t *testing.T
}

func (r *panicRand) IntN(n int) int {
	r.t.Helper()
	r.t.Fatalf("random source consulted: IntN(%d)", n)
	return 0
}

func (r *panicRand) Uint64() uint64 {
	r.t.Helper()
	r.t.Fatal("random source consulted: Uint64")
	return 0
}

func (r *panicRand) Float64() float64 {
	r.t.Helper()
	r.t.Fatal("random source consulted: Float64")
	return 0
}
