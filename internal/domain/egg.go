package domain

// Winning rate bounds, in percent
const (
	MinWinningRate = 0
	MaxWinningRate = 100
)

// Egg is one cell of the game grid
type Egg struct {
	ID             int     `json:"id"`
	Reward         Reward  `json:"reward"`
	WinningRate    float64 `json:"winningRate"`
	Broken         bool    `json:"broken"`
	ManuallyBroken bool    `json:"manuallyBroken"`
}

// EggView is an egg as shown to players. Reward holds what the player may
// see, which is not always the configured prize.
type EggView struct {
	ID             int     `json:"id"`
	Broken         bool    `json:"broken"`
	Reward         Reward  `json:"reward"`
	WinningRate    float64 `json:"winningRate"`
	Allowed        *bool   `json:"allowed,omitempty"`
	ManuallyBroken bool    `json:"manuallyBroken,omitempty"`
}

// GameState is derived on every read and never stored.
type GameState struct {
	Deadline     int64     `json:"deadline"` // unix milliseconds
	BrokenEggs   []int     `json:"brokenEggs"`
	Progress     float64   `json:"progress"`
	Eggs         []EggView `json:"eggs"`
	AllowedEggID *int      `json:"allowedEggId,omitempty"`
	LinkID       *int      `json:"linkId,omitempty"`
	LinkUsed     *bool     `json:"linkUsed,omitempty"`
}

// BreakResult is the outcome of breaking one egg
type BreakResult struct {
	EggID       int           `json:"eggId"`
	Reward      Reward        `json:"reward"`
	Won         bool          `json:"won"`
	Success     bool          `json:"success"`
	TotalReward int64         `json:"totalReward"`
	LinkID      *int          `json:"linkId,omitempty"`
	Reveal      *RevealResult `json:"reveal,omitempty"`

	// Roll is the draw in [0,100) that decided the outcome.
	Roll        float64 `json:"-"`
	WinningRate float64 `json:"-"`
}

// RevealResult is the prize wall shown after a break through a custom link
type RevealResult struct {
	Eggs        []EggView `json:"eggs"`
	BrokenEggID int       `json:"brokenEggId"`
	Reward      Reward    `json:"reward"`
	Success     bool      `json:"success"`
}

// ClaimResult is returned when the running total is cashed into the leaderboard
type ClaimResult struct {
	TotalReward int64 `json:"totalReward"`
	Success     bool  `json:"success"`
}

// LeaderboardEntry is one row of the public leaderboard
type LeaderboardEntry struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}
