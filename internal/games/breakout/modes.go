package breakout

import (
	"math/rand/v2"
	"strings"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Command words that enable each mode.
const (
	WordGod      = "GOD"
	WordSuper    = "SUPER"
	WordUltimate = "ULTIMATE"
	WordLaser    = "LASER"
)

// Modes holds the variant rules chosen at start-up.
type Modes struct {
	God      bool // Paddle follows the ball on its own
	Super    bool // Ball starts at super speed
	Ultimate bool // Ball starts at ultimate speed (wins over Super)
	Laser    bool // Clicks fire a laser up from the paddle
}

// ParseModes scans command words in any order. Matching is exact and
// case-sensitive; anything else is ignored.
func ParseModes(args []string) Modes {
	var m Modes
	for _, arg := range args {
		switch arg {
		case WordGod:
			m.God = true
		case WordSuper:
			m.Super = true
		case WordUltimate:
			m.Ultimate = true
		case WordLaser:
			m.Laser = true
		}
	}
	return m
}

// String returns "normal" or the enabled words joined with '+'.
func (m Modes) String() string {
	var words []string
	if m.God {
		words = append(words, WordGod)
	}
	if m.Super {
		words = append(words, WordSuper)
	}
	if m.Ultimate {
		words = append(words, WordUltimate)
	}
	if m.Laser {
		words = append(words, WordLaser)
	}
	if len(words) == 0 {
		return "normal"
	}
	return strings.Join(words, "+")
}

// InitialVelocity picks the ball's starting velocity.
// Normal mode draws each component from [MinSpeed, MinSpeed+SpeedJitter);
// Super and Ultimate launch straight up-left at a fixed speed.
func InitialVelocity(m Modes, cfg config.BallConfig, rng *rand.Rand) (vx, vy float64) {
	vx = cfg.MinSpeed + rng.Float64()*cfg.SpeedJitter
	vy = cfg.MinSpeed + rng.Float64()*cfg.SpeedJitter

	if m.Super {
		vx, vy = -cfg.SuperSpeed, -cfg.SuperSpeed
	}
	if m.Ultimate {
		vx, vy = -cfg.UltimateSpeed, -cfg.UltimateSpeed
	}
	return vx, vy
}
