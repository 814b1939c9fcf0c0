package simulate

import (
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/Reesemix123/the-coach-hub-sub008/internal/domain/geometry"
)

// simField matches the service defaults. Scenario coordinates are
// authored against it and sent with every request so the simulator
// stays correct even when the target runs a custom field template.
var simField = geometry.Field{
	CenterX:         600,
	LineOfScrimmage: 400,
	CenterBand:      geometry.DefaultCenterBand,
}

// maxJitter is the largest per-axis translation applied to a scenario
// path. Shapes are authored with at least twice this margin from every
// threshold they depend on, so jitter never flips a label.
const maxJitter = 3.0

// Scenario is one archetypal gesture with its expected outcome.
type Scenario struct {
	Name         string
	Kind         string
	Path         []geometry.Point
	PlayerSide   string
	PlayerStartX float64
	PlayerStartY float64
	Expect       string
}

// Scenarios returns the full archetype set. Receiver gestures start at
// x=350 (left of center), linemen near the ball, defenders above the
// line of scrimmage.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:         "go",
			Kind:         "route",
			Path:         pts(350, 400, 350, 200),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "Go/Streak/9",
		},
		{
			Name:         "post",
			Kind:         "route",
			Path:         pts(350, 400, 350, 240, 430, 160),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "Post",
		},
		{
			Name:         "corner",
			Kind:         "route",
			Path:         pts(350, 400, 350, 240, 270, 160),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "Corner",
		},
		{
			Name:         "out",
			Kind:         "route",
			Path:         pts(350, 400, 350, 320, 310, 320),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "Out",
		},
		{
			Name:         "in",
			Kind:         "route",
			Path:         pts(350, 400, 350, 320, 390, 320),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "In/Dig",
		},
		{
			Name:         "comeback",
			Kind:         "route",
			Path:         pts(350, 400, 350, 345, 350, 410),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "Comeback",
		},
		{
			Name:         "curl",
			Kind:         "route",
			Path:         pts(350, 400, 350, 360, 350, 390),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "Curl",
		},
		{
			Name:         "slant",
			Kind:         "route",
			Path:         pts(350, 400, 395, 355),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "Slant",
		},
		{
			Name:         "flat",
			Kind:         "route",
			Path:         pts(350, 400, 420, 400),
			PlayerSide:   "offense",
			PlayerStartX: 350,
			Expect:       "Flat",
		},
		{
			Name:       "pull",
			Kind:       "blocking",
			Path:       pts(500, 395, 620, 390),
			PlayerSide: "offense",
			Expect:     "Pull",
		},
		{
			Name:       "run-block",
			Kind:       "blocking",
			Path:       pts(500, 395, 515, 380),
			PlayerSide: "offense",
			Expect:     "Run Block",
		},
		{
			Name:       "pass-set",
			Kind:       "blocking",
			Path:       pts(500, 395, 505, 330),
			PlayerSide: "offense",
			Expect:     "Pass Block",
		},
		{
			Name:         "deep-third",
			Kind:         "coverage",
			Path:         pts(600, 260, 590, 110),
			PlayerSide:   "defense",
			PlayerStartY: 260,
			Expect:       "Deep Third",
		},
		{
			Name:         "deep-half",
			Kind:         "coverage",
			Path:         pts(350, 260, 300, 100),
			PlayerSide:   "defense",
			PlayerStartY: 260,
			Expect:       "Deep Half",
		},
		{
			Name:         "flat-zone",
			Kind:         "coverage",
			Path:         pts(820, 300, 860, 290),
			PlayerSide:   "defense",
			PlayerStartY: 300,
			Expect:       "Flat",
		},
		{
			Name:       "strong-a",
			Kind:       "gap",
			Path:       pts(650, 250, 610, 390),
			PlayerSide: "defense",
			Expect:     "Strong A-gap",
		},
		{
			Name:       "weak-c",
			Kind:       "gap",
			Path:       pts(480, 250, 510, 390),
			PlayerSide: "defense",
			Expect:     "Weak C-gap",
		},
		{
			Name:         "jet",
			Kind:         "motion",
			Path:         pts(850, 430, 700, 440),
			PlayerSide:   "offense",
			PlayerStartX: 850,
			Expect:       "Jet",
		},
		{
			Name:         "across",
			Kind:         "motion",
			Path:         pts(850, 430, 760, 425),
			PlayerSide:   "offense",
			PlayerStartX: 850,
			Expect:       "Across",
		},
		{
			Name:         "return",
			Kind:         "motion",
			Path:         pts(700, 430, 760, 430),
			PlayerSide:   "offense",
			PlayerStartX: 700,
			Expect:       "Return",
		},
	}
}

// Jittered returns a copy of the scenario with every coordinate shifted
// by the same small random offset. Translating the whole path keeps net
// displacements and distances intact.
func (s Scenario) Jittered() Scenario {
	dx := jitter()
	dy := jitter()

	out := s
	out.Path = make([]geometry.Point, len(s.Path))
	for i, p := range s.Path {
		out.Path[i] = geometry.Point{X: p.X + dx, Y: p.Y + dy}
	}
	if s.PlayerStartX != 0 {
		out.PlayerStartX = s.PlayerStartX + dx
	}
	if s.PlayerStartY != 0 {
		out.PlayerStartY = s.PlayerStartY + dy
	}

	return out
}

// jitter returns a uniform random offset in [-maxJitter, maxJitter].
func jitter() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	u := binary.LittleEndian.Uint64(buf[:])
	f := float64(u>>11) / float64(1<<53)

	return math.Round((f*2-1)*maxJitter*100) / 100
}

// pts builds a path from flat x,y pairs.
func pts(coords ...float64) []geometry.Point {
	path := make([]geometry.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		path = append(path, geometry.Point{X: coords[i], Y: coords[i+1]})
	}

	return path
}
