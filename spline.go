package sketch

// InterpolateSpline returns the cubic Bézier segments of a spline through
// pts that is C² at every point where two segments meet.
//
// For an open spline, the spline runs from pts[0] to pts[len(pts)-1], and
// start and finish are the control points next to its ends; they fix the
// tangents there. For a periodic spline, start and finish are ignored and
// the spline closes back to pts[0].
//
// It panics if there are too few points, or so many that the number of
// unknowns reaches [MaxUnknowns].
func InterpolateSpline(pts []Vector, start, finish Vector, periodic bool) []Bezier {
	var n int
	if periodic {
		n = len(pts)
		if n < 3 {
			violate("InterpolateSpline", "periodic spline through %d points, want at least 3", n)
		}
		pts = append(pts[:n:n], pts[0])
	} else {
		if len(pts) < 2 {
			violate("InterpolateSpline", "open spline through %d points, want at least 2", len(pts))
		}
		n = len(pts) - 2
	}
	if n >= MaxUnknowns {
		violate("InterpolateSpline", "%d unknowns, want fewer than %d", n, MaxUnknowns)
	}

	wrap := func(i int) int { return (i%n + n) % n }

	// The unknowns are the offsets from each on-curve point to the control
	// point that follows it. Each row matches the second derivatives of the
	// two segments meeting at one point. The axes are independent.
	var x [3][MaxUnknowns]float64
	if n > 0 {
		for a := range 3 {
			var m BandedMatrix
			m.N = n
			for i := range n {
				var im, it, ip int
				if periodic {
					im, it, ip = wrap(i-1), i, wrap(i+1)
				} else {
					im, it, ip = i, i+1, i+2
				}
				// Terms are (constant, X[i-1], X[i], X[i+1]).
				c := term{pts[it].Element(a), 0, 0, 0}
				b := c.plus(term{0, 0, -1, 0})
				d := c.plus(term{0, 0, 1, 0})
				var ta, te term
				if i == 0 && !periodic {
					ta = term{start.Element(a), 0, 0, 0}
				} else {
					ta = term{pts[im].Element(a), 1, 0, 0}
				}
				if i == n-1 && !periodic {
					te = term{finish.Element(a), 0, 0, 0}
				} else {
					te = term{pts[ip].Element(a), 0, 0, -1}
				}
				// Second derivative at the end of the incoming segment minus
				// the one at the start of the outgoing segment.
				eq := c.minus(b.scaled(2)).plus(ta).minus(c.minus(d.scaled(2)).plus(te))

				if periodic {
					m.A[i][wrap(i-2)] = eq[1]
					m.A[i][wrap(i-1)] = eq[2]
					m.A[i][i] = eq[3]
				} else {
					if i > 0 {
						m.A[i][i-1] = eq[1]
					}
					m.A[i][i] = eq[2]
					if i < n-1 {
						m.A[i][i+1] = eq[3]
					}
				}
				m.B[i] = -eq[0]
			}
			m.Solve()
			x[a] = m.X
		}
		Logger().Debug("interpolated spline", "unknowns", n, "periodic", periodic)
	}
	offset := func(i int) Vector { return Vec(x[0][i], x[1][i], x[2][i]) }

	out := make([]Bezier, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		var p1, p2 Vector
		if periodic {
			p1 = pts[i].Add(offset(wrap(i - 1)))
			p2 = pts[i+1].Sub(offset(wrap(i)))
		} else {
			if i == 0 {
				p1 = start
			} else {
				p1 = pts[i].Add(offset(i - 1))
			}
			if i == len(pts)-2 {
				p2 = finish
			} else {
				p2 = pts[i+1].Sub(offset(i))
			}
		}
		out = append(out, CubicBezier(pts[i], p1, p2, pts[i+1]))
	}
	return out
}

// term is an affine combination of a constant and three unknowns.
type term [4]float64

func (t term) plus(o term) term {
	return term{t[0] + o[0], t[1] + o[1], t[2] + o[2], t[3] + o[3]}
}

func (t term) minus(o term) term {
	return term{t[0] - o[0], t[1] - o[1], t[2] - o[2], t[3] - o[3]}
}

func (t term) scaled(f float64) term {
	return term{t[0] * f, t[1] * f, t[2] * f, t[3] * f}
}
