package sketch

const (
	// MaxUnknowns is the largest system a [BandedMatrix] can solve.
	MaxUnknowns = 16
	// LeftOfDiag is the number of possibly nonzero entries left of the
	// diagonal in each row.
	LeftOfDiag = 2
	// RightOfDiag is the number of possibly nonzero entries right of the
	// diagonal in each row.
	RightOfDiag = 1
)

// BandedMatrix is the system A·X = B in N unknowns, where each row of A is
// zero outside the band from LeftOfDiag entries left of the diagonal to
// RightOfDiag entries right of it, except for the last two columns, which
// may be dense.
//
// Solve eliminates without pivoting, so no leading principal minor of A may
// vanish.
type BandedMatrix struct {
	A [MaxUnknowns][MaxUnknowns]float64
	B [MaxUnknowns]float64
	X [MaxUnknowns]float64
	N int
}

// Solve computes X, destroying A and B in the process. It panics if N is not
// in 1..MaxUnknowns.
func (m *BandedMatrix) Solve() {
	n := m.N
	if n < 1 || n > MaxUnknowns {
		violate("BandedMatrix.Solve", "%d unknowns, want 1..%d", n, MaxUnknowns)
	}

	// Eliminate the entries below the diagonal, touching only the band and
	// the two trailing columns.
	for i := 0; i < n; i++ {
		for ip := i + 1; ip < n && ip <= i+LeftOfDiag; ip++ {
			temp := m.A[ip][i] / m.A[i][i]
			for jp := i; jp < n-2 && jp <= i+RightOfDiag; jp++ {
				m.A[ip][jp] -= temp * m.A[i][jp]
			}
			m.A[ip][n-2] -= temp * m.A[i][n-2]
			m.A[ip][n-1] -= temp * m.A[i][n-1]
			m.B[ip] -= temp * m.B[i]
		}
	}

	// Back-substitute, trailing columns first.
	for i := n - 1; i >= 0; i-- {
		temp := m.B[i]
		if i < n-1 {
			temp -= m.X[n-1] * m.A[i][n-1]
		}
		if i < n-2 {
			temp -= m.X[n-2] * m.A[i][n-2]
		}
		for j := min(n-3, i+RightOfDiag); j > i; j-- {
			temp -= m.X[j] * m.A[i][j]
		}
		m.X[i] = temp / m.A[i][i]
	}
}
