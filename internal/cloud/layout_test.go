package cloud

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func makeTags(n int) []Tag {
	tags := make([]Tag, n)
	for i := range tags {
		tags[i] = Tag{Name: fmt.Sprintf("skill-%d", i), Definition: fmt.Sprintf("def-%d", i)}
	}
	return tags
}

func TestLayoutPointsOnSphere(t *testing.T) {
	const radius = 250.0
	for _, n := range []int{1, 2, 3, 7, 50, 233} {
		points := Layout(makeTags(n), radius)
		if len(points) != n {
			t.Fatalf("n=%d: got %d points", n, len(points))
		}
		for i, p := range points {
			r2 := p.Position.X*p.Position.X + p.Position.Y*p.Position.Y + p.Position.Z*p.Position.Z
			if math.Abs(r2-radius*radius) > 1e-6 {
				t.Errorf("n=%d point %d: |p|^2 = %v, want %v", n, i, r2, radius*radius)
			}
			if p.SkillName != fmt.Sprintf("skill-%d", i) {
				t.Errorf("n=%d point %d: name %q out of order", n, i, p.SkillName)
			}
		}
	}
}

func TestLayoutPoles(t *testing.T) {
	const radius = 100.0
	points := Layout(makeTags(40), radius)

	// Index 0 has phi = acos(-1) = pi exactly.
	if math.Abs(points[0].Position.Z+radius) > 1e-9 {
		t.Errorf("first point z = %v, want %v", points[0].Position.Z, -radius)
	}
	// The last index approaches phi = 0.
	last := points[len(points)-1]
	phi := math.Acos(last.Position.Z / radius)
	if phi > 0.35 {
		t.Errorf("last point phi = %v, want near 0", phi)
	}
	if last.Position.Z < 0.9*radius {
		t.Errorf("last point z = %v, want near the opposite pole", last.Position.Z)
	}
}

func TestLayoutDeterministicGeometry(t *testing.T) {
	tags := makeTags(25)
	a := Layout(tags, 250)
	b := Layouter{Rand: rand.New(rand.NewPCG(1, 2))}.Layout(tags, 250)
	for i := range a {
		if a[i].Position != b[i].Position {
			t.Errorf("point %d: %+v != %+v", i, a[i].Position, b[i].Position)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	points := Layout(nil, 250)
	if points == nil || len(points) != 0 {
		t.Errorf("Layout(nil) = %#v, want empty slice", points)
	}
}

func TestLayoutAnimationRanges(t *testing.T) {
	points := Layout(makeTags(500), 250)
	for i, p := range points {
		d := p.Animation.DurationSeconds
		if d < 30 || d >= 60 {
			t.Errorf("point %d duration %v outside [30,60)", i, d)
		}
		o := p.Animation.PhaseOffsetSeconds
		if o > 0 || o <= -60 {
			t.Errorf("point %d offset %v outside (-60,0]", i, o)
		}
	}
}

func TestPointStyle(t *testing.T) {
	p := Point{
		Position:  Vec3{X: 1.5, Y: -2, Z: 250},
		Animation: Animation{DurationSeconds: 42, PhaseOffsetSeconds: -7.25},
	}
	vars := p.CSSVars()
	if vars["--x"] != "1.500px" || vars["--y"] != "-2.000px" || vars["--z"] != "250.000px" {
		t.Errorf("CSSVars = %v", vars)
	}
	style := p.Style()
	if !strings.Contains(style, "--z: 250.000px") {
		t.Errorf("style missing z: %q", style)
	}
	if !strings.Contains(style, "skill-drift 42.000s ease-in-out -7.250s infinite alternate") {
		t.Errorf("style missing animation: %q", style)
	}
}
