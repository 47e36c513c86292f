package sketch

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// randomBanded returns a diagonally dominant matrix with the band and
// trailing-column structure that BandedMatrix expects.
func randomBanded(rng *rand.Rand, n int) *BandedMatrix {
	m := &BandedMatrix{N: n}
	for i := range n {
		var sum float64
		for j := range n {
			inBand := j >= i-LeftOfDiag && j <= i+RightOfDiag
			if j == i || !(inBand || j >= n-2) {
				continue
			}
			m.A[i][j] = rng.Float64()*2 - 1
			sum += math.Abs(m.A[i][j])
		}
		m.A[i][i] = sum + 1 + rng.Float64()
		if rng.IntN(2) == 0 {
			m.A[i][i] = -m.A[i][i]
		}
		m.B[i] = rng.Float64()*10 - 5
	}
	return m
}

// denseSolve solves the system with partial pivoting.
func denseSolve(m *BandedMatrix) []float64 {
	n := m.N
	a := m.A
	b := m.B
	for i := range n {
		p := i
		for r := i + 1; r < n; r++ {
			if math.Abs(a[r][i]) > math.Abs(a[p][i]) {
				p = r
			}
		}
		a[i], a[p] = a[p], a[i]
		b[i], b[p] = b[p], b[i]
		for r := i + 1; r < n; r++ {
			f := a[r][i] / a[i][i]
			for c := i; c < n; c++ {
				a[r][c] -= f * a[i][c]
			}
			b[r] -= f * b[i]
		}
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for c := i + 1; c < n; c++ {
			s -= a[i][c] * x[c]
		}
		x[i] = s / a[i][i]
	}
	return x
}

func TestBandedSolve(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for n := 1; n <= MaxUnknowns; n++ {
		for range 20 {
			m := randomBanded(rng, n)
			want := denseSolve(m)
			orig := *m
			m.Solve()
			diff(t, want, m.X[:n], approx)

			// Check the residual against the untouched system as well.
			for i := range n {
				var s float64
				for j := range n {
					s += orig.A[i][j] * m.X[j]
				}
				assert.InDelta(t, orig.B[i], s, 1e-9, "n = %d, row %d", n, i)
			}
		}
	}
}

func TestBandedSolveIdentity(t *testing.T) {
	m := &BandedMatrix{N: 3}
	for i := range 3 {
		m.A[i][i] = 2
		m.B[i] = float64(i + 1)
	}
	m.Solve()
	diff(t, []float64{0.5, 1, 1.5}, m.X[:3])
}

func TestBandedSolveSize(t *testing.T) {
	for _, n := range []int{-1, 0, MaxUnknowns + 1} {
		cv := violation(t, func() { (&BandedMatrix{N: n}).Solve() })
		assert.Equal(t, "BandedMatrix.Solve", cv.Op)
	}
}
