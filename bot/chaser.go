package bot

import (
	"math/rand"

	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
)

// BotState is the Chaser's current intent
type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateRetreat
)

func (s BotState) String() string {
	switch s {
	case BotStateChase:
		return "chase"
	case BotStateAttack:
		return "attack"
	case BotStateRetreat:
		return "retreat"
	}
	return "idle"
}

// Chaser walks up to its target and attacks once in reach. Decisions are held
// for the difficulty's reaction delay, which is what makes easier bots slow.
type Chaser struct {
	settings cfg.BotDifficultyConfig
	attacks  cfg.Attacks
	rng      *rand.Rand

	nav *NavGrid

	state         BotState
	decisionTimer int
	nextAttack    cfg.AttackKind
}

// NewChaser creates a chaser. A fixed seed gives the same fight every run.
func NewChaser(difficulty cfg.BotDifficulty, attacks cfg.Attacks, seed int64) *Chaser {
	settings, ok := cfg.Bot.Difficulties[difficulty]
	if !ok {
		settings = cfg.Bot.Difficulties[cfg.BotDifficultyNormal]
	}
	return &Chaser{
		settings:   settings,
		attacks:    attacks,
		rng:        rand.New(rand.NewSource(seed)),
		nextAttack: cfg.AttackPunch,
	}
}

// WithNav makes the chaser walk around walls instead of straight at its
// target.
func (c *Chaser) WithNav(g *NavGrid) *Chaser {
	c.nav = g
	return c
}

// State returns the current intent.
func (c *Chaser) State() BotState {
	return c.state
}

func (c *Chaser) Keys(v View) components.Keys {
	keys := components.Keys{}
	if v.Self.Health <= 0 || v.Target.Health <= 0 {
		c.state = BotStateIdle
		return keys
	}

	// State machine with reaction delay
	if c.decisionTimer > 0 {
		c.decisionTimer--
	} else {
		c.decide(v)
		c.decisionTimer = c.settings.ReactionDelay
	}

	switch c.state {
	case BotStateChase:
		c.steer(keys, v, 1)
	case BotStateAttack:
		if v.Self.Idle() {
			if key := cfg.Input.KeyFor(actionFor(c.nextAttack)); key != "" {
				keys[key] = true
			}
		}
		// Keep closing in if the target stepped back
		if v.Distance() >= c.reach(c.nextAttack) {
			c.steer(keys, v, 1)
		}
	case BotStateRetreat:
		c.steer(keys, v, -1)
	}
	return keys
}

func (c *Chaser) decide(v View) {
	dist := v.Distance()
	reach := c.reach(c.nextAttack)

	// Retreat if low health, but only while the target is close
	if v.Self.HealthFraction() < c.settings.RetreatThreshold && dist < 2*reach {
		c.state = BotStateRetreat
		return
	}

	if dist < reach {
		if c.state != BotStateAttack {
			c.pickAttack()
		}
		c.state = BotStateAttack
		return
	}

	c.state = BotStateChase
}

func (c *Chaser) pickAttack() {
	c.nextAttack = cfg.AttackPunch
	if _, ok := c.attacks.Get(cfg.AttackTakedown); ok && c.rng.Float64() < c.settings.TakedownChance {
		c.nextAttack = cfg.AttackTakedown
	}
}

// reach is how close the bot gets before striking with kind.
func (c *Chaser) reach(kind cfg.AttackKind) float64 {
	def, ok := c.attacks.Get(kind)
	if !ok {
		return 0
	}
	return def.Reach * c.settings.ReachFactor
}

// steer presses direction keys toward the target (dir 1) or away (dir -1).
func (c *Chaser) steer(keys components.Keys, v View, dir float64) {
	d := v.Delta().Mul(dir)
	if dir > 0 && c.nav != nil {
		d = c.nav.Waypoint(v.Self.Position, v.Target.Position).Sub(v.Self.Position)
	}
	dead := c.settings.Deadband

	if d.X() > dead {
		keys[cfg.Input.KeyFor(cfg.ActionMoveRight)] = true
	} else if d.X() < -dead {
		keys[cfg.Input.KeyFor(cfg.ActionMoveLeft)] = true
	}
	// Forward is -z
	if d.Z() > dead {
		keys[cfg.Input.KeyFor(cfg.ActionMoveBack)] = true
	} else if d.Z() < -dead {
		keys[cfg.Input.KeyFor(cfg.ActionMoveForward)] = true
	}
}

func actionFor(kind cfg.AttackKind) cfg.ActionID {
	if kind == cfg.AttackTakedown {
		return cfg.ActionTakedown
	}
	return cfg.ActionPunch
}
