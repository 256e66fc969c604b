package slice

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ironsheep/dotpro-mcp/internal/dotpro"
	"github.com/ironsheep/dotpro-mcp/internal/geo"
)

// newTestImage builds a 100x200 Mercator image anchored at (30E, 40N)
// whose sample i holds i mod 65536.
func newTestImage(t *testing.T) *dotpro.Image {
	t.Helper()

	const rows, cols = 100, 200
	pixels := make([]uint16, rows*cols)
	for i := range pixels {
		pixels[i] = uint16(i)
	}

	img, err := dotpro.NewImage(
		dotpro.Header{},
		dotpro.Grid{
			Projection:      dotpro.Mercator,
			Rows:            rows,
			Columns:         cols,
			AnchorLatitude:  40,
			AnchorLongitude: 30,
			LatitudeExtent:  10,
			LongitudeExtent: 20,
		},
		dotpro.Calibration{A: 0.5, B: -273.15},
		pixels,
	)
	if err != nil {
		t.Fatalf("NewImage failed: %v", err)
	}
	return img
}

func TestStepCount(t *testing.T) {
	img := newTestImage(t)

	// (32, 41) -> (20, 86) and (45, 46) -> (149, 17)
	if got := StepCount(img, geo.NewCoordinate(32, 41), geo.NewCoordinate(45, 46)); got != 129 {
		t.Errorf("StepCount: got %d, want 129", got)
	}

	// Same pixel
	if got := StepCount(img, geo.NewCoordinate(32, 41), geo.NewCoordinate(32.01, 41.01)); got != 0 {
		t.Errorf("StepCount within one pixel: got %d, want 0", got)
	}
}

func TestCreate(t *testing.T) {
	img := newTestImage(t)
	from := geo.NewCoordinate(32, 41)
	to := geo.NewCoordinate(45, 46)

	points, err := Create(img, from, to)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(points) != 130 {
		t.Fatalf("len(points): got %d, want 130", len(points))
	}

	first := points[0]
	if first.Distance != 0 {
		t.Errorf("first point distance: got %v, want 0", first.Distance)
	}
	if first.Coordinate.Longitude != 32 || first.Coordinate.Latitude != 41 {
		t.Errorf("first point: got %v, want (32, 41)", first.Coordinate)
	}

	last := points[len(points)-1]
	if want := geo.Distance(from, to); math.Abs(last.Distance-want) > 1e-6 {
		t.Errorf("last point distance: got %v, want %v", last.Distance, want)
	}

	for i, p := range points {
		if p.Index != i+1 {
			t.Errorf("point %d: Index got %d", i, p.Index)
		}

		x, y := img.CoordinateToIndex(p.Coordinate)
		if p.X != x || p.Y != y {
			t.Errorf("point %d: got pixel (%d, %d), want (%d, %d)", i, p.X, p.Y, x, y)
		}

		want := uint16(p.X + 200*(100-p.Y-1))
		if p.Brightness != want {
			t.Errorf("point %d: brightness got %d, want %d", i, p.Brightness, want)
		}
		if math.Abs(p.Temperature-(0.5*float64(want)-273.15)) > 1e-9 {
			t.Errorf("point %d: temperature got %v", i, p.Temperature)
		}

		if i > 0 && p.Distance < points[i-1].Distance {
			t.Errorf("point %d: distance decreased from %v to %v", i, points[i-1].Distance, p.Distance)
		}
	}
}

func TestCreate_SinglePixel(t *testing.T) {
	img := newTestImage(t)
	from := geo.NewCoordinate(32, 41)

	points, err := Create(img, from, geo.NewCoordinate(32.01, 41.01))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("len(points): got %d, want 1", len(points))
	}
	if points[0].Coordinate != from || points[0].Distance != 0 {
		t.Errorf("single point: got %+v", points[0])
	}
}

func TestCreate_AcceptsRadians(t *testing.T) {
	img := newTestImage(t)
	from := geo.NewCoordinate(32, 41)
	to := geo.NewCoordinate(45, 46)

	deg, err := Create(img, from, to)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	rad, err := Create(img, from.InRadians(), to.InRadians())
	if err != nil {
		t.Fatalf("Create with radians failed: %v", err)
	}

	if len(deg) != len(rad) {
		t.Fatalf("point count: degrees %d, radians %d", len(deg), len(rad))
	}
	for i := range deg {
		if deg[i].X != rad[i].X || deg[i].Y != rad[i].Y {
			t.Errorf("point %d: degrees (%d, %d), radians (%d, %d)", i, deg[i].X, deg[i].Y, rad[i].X, rad[i].Y)
		}
		if rad[i].Coordinate.Unit != geo.Degrees {
			t.Errorf("point %d: unit got %v, want degrees", i, rad[i].Coordinate.Unit)
		}
	}
}

func TestCreate_OutOfGrid(t *testing.T) {
	img := newTestImage(t)

	tests := []struct {
		name     string
		from, to geo.Coordinate
	}{
		{"leaves east edge", geo.NewCoordinate(32, 41), geo.NewCoordinate(60, 41)},
		{"starts south of grid", geo.NewCoordinate(32, 30), geo.NewCoordinate(35, 42)},
		{"both outside", geo.NewCoordinate(0, 0), geo.NewCoordinate(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Create(img, tt.from, tt.to)
			if !errors.Is(err, dotpro.ErrIndexOutOfBounds) {
				t.Fatalf("got %v, want ErrIndexOutOfBounds", err)
			}
			if points != nil {
				t.Errorf("expected no points, got %d", len(points))
			}
		})
	}
}

func TestCreate_FarEndpoint(t *testing.T) {
	img := newTestImage(t)
	from := geo.NewCoordinate(32, 41)

	tests := []struct {
		name     string
		from, to geo.Coordinate
		endpoint string
	}{
		{"huge longitude", from, geo.NewCoordinate(1e17, 41), "slice endpoint 2"},
		{"beyond int range", from, geo.NewCoordinate(1e300, 41), "slice endpoint 2"},
		{"infinite start", geo.NewCoordinate(math.Inf(1), 41), from, "slice endpoint 1"},
		{"nan end", from, geo.NewCoordinate(math.NaN(), 41), "slice endpoint 2"},
		{"pole", from, geo.NewCoordinate(35, 90), "slice endpoint 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Create(img, tt.from, tt.to)
			if !errors.Is(err, dotpro.ErrIndexOutOfBounds) {
				t.Fatalf("got %v, want ErrIndexOutOfBounds", err)
			}
			if !strings.Contains(err.Error(), tt.endpoint) {
				t.Errorf("error %q does not name %s", err, tt.endpoint)
			}
			if points != nil {
				t.Errorf("expected no points, got %d", len(points))
			}
		})
	}
}
