package renderer

import (
	"math"
	"testing"

	"github.com/quatray/go-quaternion-julia/pkg/core"
)

func TestCamera_CenterPixelLooksAlongForward(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 5), core.Mat3Identity())

	// Odd viewport: the center pixel sits exactly on the optical axis
	ray := cam.GetRay(50, 50, 101, 101)

	if ray.Origin != cam.Origin {
		t.Errorf("Expected ray origin %v, got %v", cam.Origin, ray.Origin)
	}
	if ray.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected direction (0,0,-1), got %v", ray.Direction)
	}
}

func TestCamera_DirectionsAreNormalized(t *testing.T) {
	cam := NewCamera(core.NewVec3(0, 0, 5), core.Mat3Identity())

	for _, px := range [][2]int{{0, 0}, {199, 0}, {0, 99}, {199, 99}, {100, 50}} {
		ray := cam.GetRay(px[0], px[1], 200, 100)
		if math.Abs(ray.Direction.Length()-1.0) > 1e-12 {
			t.Errorf("Pixel %v: direction is not unit length: %g", px, ray.Direction.Length())
		}
	}
}

func TestCamera_AspectScalesHorizontalExtent(t *testing.T) {
	cam := NewCamera(core.Vec3{}, core.Mat3Identity())

	// Top-left pixel of a 2:1 viewport: u = -1.99, v = -0.99, and screen y
	// grows downward so the up term flips sign
	ray := cam.GetRay(0, 0, 200, 100)
	expected := core.NewVec3(-1.99, 0.99, -1).Normalize()

	if ray.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
	}
}

func TestOrbitCamera_SitsAtDistanceLookingAtOrigin(t *testing.T) {
	tests := []struct {
		name       string
		phi, theta float64
	}{
		{"front", 0, 0},
		{"tilted", 0.7, 0.3},
		{"behind", math.Pi, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewOrbitCamera(5, tt.phi, tt.theta)

			if math.Abs(cam.Origin.Length()-5) > 1e-9 {
				t.Errorf("Expected orbit distance 5, got %g", cam.Origin.Length())
			}

			// The central ray must point from the camera straight at the origin
			ray := cam.GetRay(50, 50, 101, 101)
			toOrigin := cam.Origin.Negate().Normalize()
			if ray.Direction.Subtract(toOrigin).Length() > 1e-9 {
				t.Errorf("Expected central direction %v, got %v", toOrigin, ray.Direction)
			}
		})
	}
}

func TestOrbitCamera_DefaultPoseIsAxisAligned(t *testing.T) {
	cam := NewOrbitCamera(5, 0, 0)

	if cam.Origin.Subtract(core.NewVec3(0, 0, 5)).Length() > 1e-12 {
		t.Errorf("Expected origin (0,0,5), got %v", cam.Origin)
	}
	if !mat3Equal(cam.Basis, core.Mat3Identity(), 1e-12) {
		t.Errorf("Expected identity basis, got %v", cam.Basis)
	}
}

func mat3Equal(a, b core.Mat3, tolerance float64) bool {
	return a.C0.Subtract(b.C0).Length() <= tolerance &&
		a.C1.Subtract(b.C1).Length() <= tolerance &&
		a.C2.Subtract(b.C2).Length() <= tolerance
}
