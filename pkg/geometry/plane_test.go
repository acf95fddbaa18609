package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/df07/go-voxel-groundtruth/pkg/core"
)

// recordingLogger implements core.Logger by keeping every message
type recordingLogger struct {
	lines []string
}

var _ core.Logger = (*recordingLogger)(nil)

func (r *recordingLogger) Printf(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func TestPlane_DistanceToPoint(t *testing.T) {
	ground := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	raised := NewPlane(core.NewVec3(4, -3, 2), core.NewVec3(0, 0, 1))
	inv := 1 / math.Sqrt2
	tilted := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, inv, inv))

	tests := []struct {
		name     string
		plane    *Plane
		point    core.Vec3
		expected float64
	}{
		{"above ground", ground, core.NewVec3(0, 0, 5), 5.0},
		{"below ground", ground, core.NewVec3(0, 0, -5), -5.0},
		{"on ground away from center", ground, core.NewVec3(7, -3, 0), 0.0},
		{"above raised plane", raised, core.NewVec3(0, 0, 5), 3.0},
		{"below raised plane", raised, core.NewVec3(100, 100, 0), -2.0},
		{"tilted along normal", tilted, core.NewVec3(0, 1, 1), math.Sqrt2},
		{"tilted on plane", tilted, core.NewVec3(3, 1, -1), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.plane.DistanceToPoint(tt.point)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestPlane_RayIntersection(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		maxDist        float64
		expectedStatus IntersectStatus
		expectedT      float64
		expectedPoint  core.Vec3
	}{
		{
			name:           "straight down from above",
			origin:         core.NewVec3(0, 0, 5),
			direction:      core.NewVec3(0, 0, -1),
			maxDist:        100,
			expectedStatus: Hit,
			expectedT:      5.0,
			expectedPoint:  core.NewVec3(0, 0, 0),
		},
		{
			name:           "straight up from below",
			origin:         core.NewVec3(2, 3, -2),
			direction:      core.NewVec3(0, 0, 1),
			maxDist:        100,
			expectedStatus: Hit,
			expectedT:      2.0,
			expectedPoint:  core.NewVec3(2, 3, 0),
		},
		{
			name:           "oblique hit",
			origin:         core.NewVec3(0, 0, 1),
			direction:      core.NewVec3(1/math.Sqrt2, 0, -1/math.Sqrt2),
			maxDist:        100,
			expectedStatus: Hit,
			expectedT:      math.Sqrt2,
			expectedPoint:  core.NewVec3(1, 0, 0),
		},
		{
			name:           "plane behind origin",
			origin:         core.NewVec3(0, 0, 5),
			direction:      core.NewVec3(0, 0, 1),
			maxDist:        100,
			expectedStatus: Miss,
		},
		{
			name:           "beyond max distance",
			origin:         core.NewVec3(0, 0, 5),
			direction:      core.NewVec3(0, 0, -1),
			maxDist:        4.0,
			expectedStatus: Miss,
		},
		{
			name:           "parallel above",
			origin:         core.NewVec3(0, 0, 5),
			direction:      core.NewVec3(1, 0, 0),
			maxDist:        100,
			expectedStatus: Miss,
		},
		{
			name:           "parallel within the plane",
			origin:         core.NewVec3(0, 0, 0),
			direction:      core.NewVec3(0, 1, 0),
			maxDist:        100,
			expectedStatus: Miss,
		},
		{
			name:           "nearly parallel",
			origin:         core.NewVec3(0, 0, 1e-9),
			direction:      core.NewVec3(1, 0, -1e-7).Normalize(),
			maxDist:        1e6,
			expectedStatus: Miss,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, status := plane.RayIntersection(ray, tt.maxDist)

			if status != tt.expectedStatus {
				t.Fatalf("Expected status %v, got %v", tt.expectedStatus, status)
			}
			if status != Hit {
				if hit != nil {
					t.Errorf("Expected nil intersection on %v, got %+v", status, hit)
				}
				return
			}

			if math.Abs(hit.Distance-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.Distance)
			}
			if !hit.Point.Equals(tt.expectedPoint, 1e-9) {
				t.Errorf("Expected hit point %v, got %v", tt.expectedPoint, hit.Point)
			}
		})
	}
}

func TestPlane_RayIntersection_ParallelFromAnyOrigin(t *testing.T) {
	inv := 1 / math.Sqrt(3)
	normal := core.NewVec3(inv, inv, inv)
	plane := NewPlane(core.NewVec3(1, 1, 1), normal)

	// Any direction perpendicular to the normal
	direction := core.NewVec3(1, -1, 0).Normalize()

	origins := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
		core.NewVec3(-50, 20, 3),
		core.NewVec3(10, 10, 10),
	}
	for _, origin := range origins {
		if hit, status := plane.RayIntersection(core.NewRay(origin, direction), 1e9); status != Miss || hit != nil {
			t.Errorf("Expected parallel miss from %v, got %+v/%v", origin, hit, status)
		}
	}
}

func TestPlane_TraceLogger(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	logger := &recordingLogger{}
	traced := plane.WithTraceLogger(logger)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	// Untraced plane stays silent and the traced copy does not alter it
	plane.RayIntersection(ray, 100)
	if len(logger.lines) != 0 {
		t.Fatalf("Expected no trace from untraced plane, got %v", logger.lines)
	}

	hit, status := traced.RayIntersection(ray, 100)
	if status != Hit || math.Abs(hit.Distance-5) > 1e-9 {
		t.Fatalf("Expected traced plane to hit at t=5, got %+v/%v", hit, status)
	}
	if len(logger.lines) != 1 || logger.lines[0] != "plane ray parameter t=5\n" {
		t.Errorf("Unexpected trace output %q", logger.lines)
	}

	// Rejected as parallel before t is computed, so nothing is traced
	traced.RayIntersection(core.NewRay(ray.Origin, core.NewVec3(1, 0, 0)), 100)
	if len(logger.lines) != 1 {
		t.Errorf("Expected parallel ray to skip the trace, got %q", logger.lines)
	}

	// Discarding the trace leaves the result untouched
	quiet, quietStatus := plane.WithTraceLogger(core.DiscardLogger{}).RayIntersection(ray, 100)
	if quietStatus != status || *quiet != *hit {
		t.Errorf("Expected %+v/%v with discarded trace, got %+v/%v", hit, status, quiet, quietStatus)
	}

	// A behind-origin hit still traces its (negative) parameter
	traced.RayIntersection(core.NewRay(ray.Origin, core.NewVec3(0, 0, 1)), 100)
	if len(logger.lines) != 2 || logger.lines[1] != "plane ray parameter t=-5\n" {
		t.Errorf("Unexpected trace output %q", logger.lines)
	}
}

func TestPlane_BoundingBox(t *testing.T) {
	tests := []struct {
		name   string
		plane  *Plane
		inside core.Vec3
		thin   int // axis expected to be thin, -1 for none
	}{
		{"X aligned", NewPlane(core.NewVec3(3, 0, 0), core.NewVec3(-1, 0, 0)), core.NewVec3(3, 500, -500), 0},
		{"Y aligned", NewPlane(core.NewVec3(0, -2, 0), core.NewVec3(0, 1, 0)), core.NewVec3(100, -2, 100), 1},
		{"Z aligned", NewPlane(core.NewVec3(0, 0, 7), core.NewVec3(0, 0, 1)), core.NewVec3(-9, 9, 7), 2},
		{"tilted", NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0.6, 0.8)), core.NewVec3(10, 8, -6), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bbox := tt.plane.BoundingBox()
			if !bbox.Contains(tt.inside) {
				t.Errorf("Expected %v inside %v", tt.inside, bbox)
			}

			size := bbox.Size()
			axes := [3]float64{size.X, size.Y, size.Z}
			for axis, extent := range axes {
				if axis == tt.thin && extent > 0.01 {
					t.Errorf("Expected thin extent on axis %d, got %f", axis, extent)
				}
				if axis != tt.thin && extent < 1e5 {
					t.Errorf("Expected large extent on axis %d, got %f", axis, extent)
				}
			}
		})
	}
}

func TestPlane_Accessors(t *testing.T) {
	center := core.NewVec3(1, 2, 3)
	normal := core.NewVec3(0, 1, 0)
	plane := NewColoredPlane(center, normal, core.Green)

	if plane.Kind() != KindPlane {
		t.Errorf("Expected kind %v, got %v", KindPlane, plane.Kind())
	}
	if plane.Center() != center {
		t.Errorf("Expected center %v, got %v", center, plane.Center())
	}
	if plane.Normal() != normal {
		t.Errorf("Expected normal %v, got %v", normal, plane.Normal())
	}
	if plane.Color() != core.Green {
		t.Errorf("Expected green, got %v", plane.Color())
	}
}
