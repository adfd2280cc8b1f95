package scene

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recorder "github.com/inference-gateway/drawbot/internal/display/recorder"
	draw "github.com/inference-gateway/drawbot/internal/draw"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	logger "github.com/inference-gateway/drawbot/internal/logger"
)

var defaultHouse = domain.Box{X: 350, Y: 420, Width: 340, Height: 220}

func newComposer() (*Composer, *recorder.Recorder) {
	rec := recorder.New()
	pen := draw.NewPen(rec, draw.WithSleeper(domain.NopSleeper{}), draw.WithGlideStep(0))
	return New(pen, DefaultLayout()), rec
}

func firstPoint(t *testing.T, rec *recorder.Recorder) domain.Point {
	t.Helper()
	strokes := rec.Strokes()
	require.NotEmpty(t, strokes)
	return strokes[0].Points[0]
}

func TestHouse(t *testing.T) {
	c, rec := newComposer()
	ctx, logs := logger.TestContext()

	got, err := c.House(ctx, defaultHouse)
	require.NoError(t, err)
	assert.Equal(t, defaultHouse, got)

	strokes := rec.Strokes()
	// walls 4, roof 2, door 4, handle 1, two windows with two mullions each
	require.Len(t, strokes, 23)
	assert.Equal(t, domain.Point{X: 350, Y: 420}, strokes[0].Points[0])

	roofPeak := strokes[4].Points[1]
	assert.Equal(t, domain.Point{X: 520, Y: 310}, roofPeak)

	doorTop := strokes[6].Points[0]
	assert.Equal(t, domain.Point{X: 492, Y: 519}, doorTop)

	handle := strokes[10].Points
	assert.Equal(t, []domain.Point{{X: 538, Y: 580}, {X: 544, Y: 580}}, handle)

	leftWindow := strokes[11].Points[0]
	assert.Equal(t, domain.Point{X: 392, Y: 459}, leftWindow)
	rightWindow := strokes[17].Points[0]
	assert.Equal(t, domain.Point{X: 592, Y: 459}, rightWindow)

	assert.Equal(t, 1, logs.FilterMessage("Drawing house").Len())
}

func TestTree(t *testing.T) {
	tests := []struct {
		name  string
		house *domain.Box
		side  Side
		want  domain.Point
	}{
		{name: "right of house", house: &defaultHouse, side: SideRight, want: domain.Point{X: 790, Y: 541}},
		{name: "left of house", house: &defaultHouse, side: SideLeft, want: domain.Point{X: 266, Y: 541}},
		{name: "fallback anchor", house: nil, side: SideRight, want: domain.Point{X: 701, Y: 301}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newComposer()

			require.NoError(t, c.Tree(context.Background(), tt.house, tt.side))
			assert.Equal(t, tt.want, firstPoint(t, rec))
			// trunk 4 edges plus three 36-segment ellipses
			assert.Len(t, rec.Strokes(), 4+3*draw.DefaultEllipseSteps)
		})
	}
}

func TestTreeCanopy(t *testing.T) {
	c, rec := newComposer()

	require.NoError(t, c.Tree(context.Background(), &defaultHouse, SideRight))

	strokes := rec.Strokes()
	// canopy center is (802, 511); first ellipse starts at angle zero
	assert.Equal(t, domain.Point{X: 862, Y: 511}, strokes[4].Points[0])
	assert.Equal(t, domain.Point{X: 817, Y: 521}, strokes[4+draw.DefaultEllipseSteps].Points[0])
	assert.Equal(t, domain.Point{X: 877, Y: 521}, strokes[4+2*draw.DefaultEllipseSteps].Points[0])
}

func TestSun(t *testing.T) {
	c, rec := newComposer()

	require.NoError(t, c.Sun(context.Background(), 1000, 120))

	strokes := rec.Strokes()
	require.Len(t, strokes, draw.DefaultEllipseSteps+sunRays)
	assert.Equal(t, domain.Point{X: 1044, Y: 120}, strokes[0].Points[0])

	firstRay := strokes[draw.DefaultEllipseSteps].Points
	assert.Equal(t, []domain.Point{{X: 1050, Y: 120}, {X: 1070, Y: 120}}, firstRay)

	quarterRay := strokes[draw.DefaultEllipseSteps+3].Points
	assert.Equal(t, []domain.Point{{X: 1000, Y: 170}, {X: 1000, Y: 190}}, quarterRay)
}

func TestSunNear(t *testing.T) {
	t.Run("relative to house", func(t *testing.T) {
		c, rec := newComposer()
		require.NoError(t, c.SunNear(context.Background(), &defaultHouse))
		assert.Equal(t, domain.Point{X: 850 + 44, Y: 340}, firstPoint(t, rec))
	})

	t.Run("fallback", func(t *testing.T) {
		c, rec := newComposer()
		require.NoError(t, c.SunNear(context.Background(), nil))
		assert.Equal(t, domain.Point{X: 1044, Y: 120}, firstPoint(t, rec))
	})
}

func TestPerson(t *testing.T) {
	c, rec := newComposer()

	require.NoError(t, c.Person(context.Background(), &defaultHouse))

	strokes := rec.Strokes()
	require.Len(t, strokes, draw.DefaultEllipseSteps+4)
	assert.Equal(t, domain.Point{X: 550, Y: 670}, strokes[0].Points[0])

	limbs := strokes[draw.DefaultEllipseSteps:]
	assert.Equal(t, []domain.Point{{X: 540, Y: 684}, {X: 540, Y: 724}}, limbs[0].Points)
	assert.Equal(t, []domain.Point{{X: 522, Y: 698}, {X: 558, Y: 698}}, limbs[1].Points)
	assert.Equal(t, []domain.Point{{X: 540, Y: 720}, {X: 528, Y: 748}}, limbs[2].Points)
	assert.Equal(t, []domain.Point{{X: 540, Y: 720}, {X: 552, Y: 748}}, limbs[3].Points)
}

func TestCar(t *testing.T) {
	t.Run("front-left of house", func(t *testing.T) {
		c, rec := newComposer()
		require.NoError(t, c.Car(context.Background(), &defaultHouse))

		strokes := rec.Strokes()
		require.Len(t, strokes, 4+2*draw.DefaultEllipseSteps)
		assert.Equal(t, domain.Point{X: 200, Y: 560}, strokes[0].Points[0])
		assert.Equal(t, domain.Point{X: 240, Y: 620}, strokes[4].Points[0])
		assert.Equal(t, domain.Point{X: 310, Y: 620}, strokes[4+draw.DefaultEllipseSteps].Points[0])
	})

	t.Run("fallback", func(t *testing.T) {
		c, rec := newComposer()
		require.NoError(t, c.Car(context.Background(), nil))
		assert.Equal(t, domain.Point{X: 300, Y: 321}, firstPoint(t, rec))
	})
}

func TestGrass(t *testing.T) {
	c, rec := newComposer()

	require.NoError(t, c.Grass(context.Background(), &defaultHouse))

	strokes := rec.Strokes()
	require.Len(t, strokes, 24)
	assert.Equal(t, []domain.Point{{X: 300, Y: 645}, {X: 300, Y: 665}}, strokes[0].Points)
	assert.Equal(t, []domain.Point{{X: 295, Y: 655}, {X: 305, Y: 655}}, strokes[1].Points)
	assert.Equal(t, domain.Point{X: 300 + 11*40, Y: 645}, strokes[22].Points[0])
}

func TestLayoutSunAnchor(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, domain.Point{X: 850, Y: 340}, l.SunAnchor(&defaultHouse))
	assert.Equal(t, domain.Point{X: 1000, Y: 120}, l.SunAnchor(nil))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 56, floorDiv(340, 6))
	assert.Equal(t, 2, floorDiv(5, 2))
	assert.Equal(t, -3, floorDiv(-5, 2))
	assert.Equal(t, -2, floorDiv(-4, 2))
}
