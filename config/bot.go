package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// ParseBotDifficulty maps "easy", "normal" or "hard" to a difficulty.
func ParseBotDifficulty(name string) (BotDifficulty, bool) {
	switch name {
	case "easy":
		return BotDifficultyEasy, true
	case "normal":
		return BotDifficultyNormal, true
	case "hard":
		return BotDifficultyHard, true
	}
	return BotDifficultyNormal, false
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    int     // Ticks a decision is held before re-evaluating
	ReachFactor      float64 // Fraction of attack reach the bot closes to before striking
	TakedownChance   float64 // Chance to pick the takedown over the punch when in reach
	RetreatThreshold float64 // Health fraction below which the bot backs off between strikes
	Deadband         float64 // Axis offset ignored when steering, arena units
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
	Seed         int64   // Fixed seed for deterministic replays
	ScriptPath   string  // Default opponent script inside the bot package
	NavCellSize  float64 // Navigation grid cell size, arena units
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    30, // 0.5 second reaction time
				ReachFactor:      0.6,
				TakedownChance:   0.1,
				RetreatThreshold: 0.2,
				Deadband:         0.3,
			},
			BotDifficultyNormal: {
				ReactionDelay:    15, // 0.25 second reaction time
				ReachFactor:      0.75,
				TakedownChance:   0.25,
				RetreatThreshold: 0.3,
				Deadband:         0.2,
			},
			BotDifficultyHard: {
				ReactionDelay:    5, // Near-instant reaction
				ReachFactor:      0.85,
				TakedownChance:   0.4,
				RetreatThreshold: 0.15,
				Deadband:         0.1,
			},
		},
		Seed:        42,
		ScriptPath:  "scripts/brawler.tengo",
		NavCellSize: 0.5,
	}
}
