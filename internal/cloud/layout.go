// Package cloud places skill tags evenly on a sphere for the 3D skill cloud.
package cloud

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
)

// DefaultRadius is the sphere radius in pixels.
const DefaultRadius = 250

// Drift animation ranges, in seconds.
const (
	minDuration = 30
	maxDuration = 60
	maxDelay    = 60
)

// Tag is the input for one cloud point.
type Tag struct {
	Name       string
	Definition string
}

// Vec3 is a position in pixels relative to the sphere center.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Animation desynchronizes the drift of individual tags. It is cosmetic and
// random per layout call.
type Animation struct {
	DurationSeconds    float64 `json:"duration_seconds"`
	PhaseOffsetSeconds float64 `json:"phase_offset_seconds"`
}

// Point is one laid-out skill tag.
type Point struct {
	SkillName  string    `json:"skill_name"`
	Definition string    `json:"definition"`
	Position   Vec3      `json:"position"`
	Animation  Animation `json:"animation"`
}

// Layouter computes cloud layouts. The zero value draws animation
// parameters from the global random source.
type Layouter struct {
	Rand *rand.Rand
}

// Layout places tags with the default Layouter.
func Layout(tags []Tag, radius float64) []Point {
	return Layouter{}.Layout(tags, radius)
}

// Layout distributes len(tags) points over a sphere of the given radius using
// the spherical Fibonacci lattice. Positions depend only on the tag count and
// index, so repeated calls with the same input place every tag identically.
func (l Layouter) Layout(tags []Tag, radius float64) []Point {
	n := len(tags)
	points := make([]Point, n)
	if n == 0 {
		return points
	}

	spin := math.Sqrt(float64(n) * math.Pi)
	for i, tag := range tags {
		phi := math.Acos(-1 + 2*float64(i)/float64(n))
		theta := spin * phi
		points[i] = Point{
			SkillName:  tag.Name,
			Definition: tag.Definition,
			Position: Vec3{
				X: radius * math.Cos(theta) * math.Sin(phi),
				Y: radius * math.Sin(theta) * math.Sin(phi),
				Z: radius * math.Cos(phi),
			},
			Animation: l.animation(),
		}
	}
	return points
}

func (l Layouter) animation() Animation {
	float := rand.Float64
	if l.Rand != nil {
		float = l.Rand.Float64
	}
	return Animation{
		DurationSeconds:    minDuration + float()*(maxDuration-minDuration),
		PhaseOffsetSeconds: -float() * maxDelay,
	}
}

// CSSVars returns the custom properties the stylesheet reads to place a tag.
func (p Point) CSSVars() map[string]string {
	return map[string]string{
		"--x": px(p.Position.X),
		"--y": px(p.Position.Y),
		"--z": px(p.Position.Z),
	}
}

// Style renders the inline style attribute for a tag: the position
// properties followed by the drift animation.
func (p Point) Style() string {
	return fmt.Sprintf("--x: %s; --y: %s; --z: %s; animation: %s",
		px(p.Position.X), px(p.Position.Y), px(p.Position.Z), p.Animation.CSS())
}

// CSS renders the animation shorthand.
func (a Animation) CSS() string {
	return fmt.Sprintf("skill-drift %ss ease-in-out %ss infinite alternate",
		strconv.FormatFloat(a.DurationSeconds, 'f', 3, 64),
		strconv.FormatFloat(a.PhaseOffsetSeconds, 'f', 3, 64))
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64) + "px"
}
