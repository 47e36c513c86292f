package sketch

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestLogRegenerate(t *testing.T) {
	buf := captureLogs(t)
	sk := newRequestSketch()
	sk.Regenerate()
	assert.Contains(t, buf.String(), "regenerated sketch")
	assert.Contains(t, buf.String(), "entities=9")
}

func TestLogSkippedArcEquation(t *testing.T) {
	sk, r := newArcSketch(WorkplaneXY())
	sk.AddConstraint(Constraint{H: 1, Group: drawing, Type: PointsCoincident, PtA: r.Entity(2), PtB: r.Entity(3)})
	buf := captureLogs(t)
	sk.GenerateEquations(drawing)
	assert.Contains(t, buf.String(), "skipping arc radius equation")
}

func TestLogSolveFailure(t *testing.T) {
	buf := captureLogs(t)
	sk := newSolveSketch()
	sk.Solve(drawing, &fakeSolver{err: errors.New("singular")})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "solve failed")
}

func TestDefaultLoggerDiscards(t *testing.T) {
	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
