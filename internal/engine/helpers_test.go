package engine

// fixedRoller replays scripted rolls so battle and drop outcomes are exact.
// Exhausted scripts return 0 ints and 0.999 floats (above every drop gate).
type fixedRoller struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *fixedRoller) IntN(n int) int {
	if r.i >= len(r.ints) {
		return 0
	}
	v := r.ints[r.i]
	r.i++
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *fixedRoller) Float64() float64 {
	if r.f >= len(r.floats) {
		return 0.999
	}
	v := r.floats[r.f]
	r.f++
	return v
}

// noDrops never learns skills or drops loot.
func noDrops() *fixedRoller { return &fixedRoller{} }
