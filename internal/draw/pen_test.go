package draw

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	display "github.com/inference-gateway/drawbot/internal/display"
	recorder "github.com/inference-gateway/drawbot/internal/display/recorder"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	displaymocks "github.com/inference-gateway/drawbot/tests/mocks/display"
)

func newTestPen(rec *recorder.Recorder, opts ...Option) *Pen {
	opts = append([]Option{WithSleeper(domain.NopSleeper{}), WithGlideStep(0)}, opts...)
	return NewPen(rec, opts...)
}

func TestRect(t *testing.T) {
	rec := recorder.New()
	pen := newTestPen(rec)

	require.NoError(t, pen.Rect(context.Background(), 10, 20, 100, 50, 400*time.Millisecond))

	strokes := rec.Strokes()
	require.Len(t, strokes, 4)

	want := [][]domain.Point{
		{{X: 10, Y: 20}, {X: 110, Y: 20}},
		{{X: 110, Y: 20}, {X: 110, Y: 70}},
		{{X: 110, Y: 70}, {X: 10, Y: 70}},
		{{X: 10, Y: 70}, {X: 10, Y: 20}},
	}
	for i, s := range strokes {
		assert.Equal(t, want[i], s.Points, "edge %d", i)
	}

	assert.Equal(t, 1, pen.Ops())
	assert.Equal(t, domain.Point{X: 10, Y: 20}, pen.Position())
}

func TestDragGlide(t *testing.T) {
	rec := recorder.New()
	pen := NewPen(rec, WithSleeper(domain.NopSleeper{}), WithGlideStep(10*time.Millisecond))
	ctx := context.Background()

	require.NoError(t, pen.MoveTo(ctx, 0, 0))
	require.NoError(t, pen.DragRel(ctx, 40, 20, 40*time.Millisecond))

	strokes := rec.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, []domain.Point{
		{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 10}, {X: 30, Y: 15}, {X: 40, Y: 20},
	}, strokes[0].Points)
	assert.Equal(t, 2, pen.Ops())
}

func TestGlideMoves(t *testing.T) {
	pen := NewPen(recorder.New(), WithGlideStep(10*time.Millisecond))

	assert.Equal(t, 1, pen.glideMoves(0))
	assert.Equal(t, 1, pen.glideMoves(5*time.Millisecond))
	assert.Equal(t, 1, pen.glideMoves(10*time.Millisecond))
	assert.Equal(t, 4, pen.glideMoves(35*time.Millisecond))
	assert.Equal(t, 40, pen.glideMoves(400*time.Millisecond))
}

func TestEllipse(t *testing.T) {
	rec := recorder.New()
	pen := newTestPen(rec)

	require.NoError(t, pen.Ellipse(context.Background(), 100, 100, 60, 40))

	strokes := rec.Strokes()
	require.Len(t, strokes, DefaultEllipseSteps)
	assert.Equal(t, domain.Point{X: 160, Y: 100}, strokes[0].Points[0])
	assert.Equal(t, domain.Point{X: 100, Y: 140}, strokes[8].Points[1])
	assert.Equal(t, domain.Point{X: 40, Y: 100}, strokes[17].Points[1])

	last := strokes[len(strokes)-1].Points
	assert.Equal(t, domain.Point{X: 160, Y: 100}, last[len(last)-1])
}

func TestCircleSteps(t *testing.T) {
	rec := recorder.New()
	pen := newTestPen(rec, WithEllipseSteps(12))

	require.NoError(t, pen.Circle(context.Background(), 0, 0, 10))
	assert.Len(t, rec.Strokes(), 12)
}

func TestLine(t *testing.T) {
	rec := recorder.New()
	pen := newTestPen(rec)

	require.NoError(t, pen.Line(context.Background(), 5, 5, 0, 40, 0))

	strokes := rec.Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, []domain.Point{{X: 5, Y: 5}, {X: 5, Y: 45}}, strokes[0].Points)
}

func TestDragErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("press fails", func(t *testing.T) {
		rec := recorder.New(recorder.WithFailure("down", boom))
		pen := newTestPen(rec)

		err := pen.Rect(context.Background(), 0, 0, 10, 10, 0)
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 0, rec.Count(recorder.ActionDown))
	})

	t.Run("release fails", func(t *testing.T) {
		rec := recorder.New(recorder.WithFailure("up", boom))
		pen := newTestPen(rec)

		err := pen.Line(context.Background(), 0, 0, 10, 0, 0)
		require.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "release")
	})
}

func TestKeys(t *testing.T) {
	rec := recorder.New()
	pen := newTestPen(rec)

	require.NoError(t, pen.Keys(context.Background(), "ctrl+a"))
	require.NoError(t, pen.Keys(context.Background(), "delete"))

	assert.Equal(t, []string{"ctrl+a", "delete"}, rec.KeyCombos())
	assert.Equal(t, 2, pen.Ops())
	assert.Empty(t, rec.Strokes())
}

func TestReleaseAfterFailedMove(t *testing.T) {
	boom := errors.New("pointer grabbed")
	ctrl := &displaymocks.FakeDisplayController{}
	ctrl.MoveMouseReturnsOnCall(1, boom)
	pen := NewPen(ctrl, WithSleeper(domain.NopSleeper{}), WithGlideStep(0))

	err := pen.Line(context.Background(), 10, 10, 50, 0, 0)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "drag to (60,10)")

	require.Equal(t, 1, ctrl.MouseDownCallCount())
	require.Equal(t, 1, ctrl.MouseUpCallCount(), "button must be released even when the drag fails")
	_, button := ctrl.MouseUpArgsForCall(0)
	assert.Equal(t, display.MouseButtonLeft, button)
	assert.Equal(t, domain.Point{X: 10, Y: 10}, pen.Position())
}

func TestSync(t *testing.T) {
	ctrl := &displaymocks.FakeDisplayController{}
	ctrl.GetCursorPositionReturns(1152, 540, nil)
	pen := NewPen(ctrl, WithSleeper(domain.NopSleeper{}), WithGlideStep(0))
	ctx := context.Background()

	require.NoError(t, pen.Sync(ctx))
	assert.Equal(t, domain.Point{X: 1152, Y: 540}, pen.Position())
	assert.Zero(t, pen.Ops())

	require.NoError(t, pen.DragRel(ctx, 8, -4, 0))
	_, x, y := ctrl.MoveMouseArgsForCall(0)
	assert.Equal(t, 1160, x)
	assert.Equal(t, 536, y)

	ctrl.GetCursorPositionReturns(0, 0, errors.New("no pointer"))
	err := pen.Sync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read cursor position")
	assert.Equal(t, domain.Point{X: 1160, Y: 536}, pen.Position())
}
