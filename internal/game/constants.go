package game

import "time"

// Defaults used when Options leaves a field empty
const (
	DefaultTotalEggs    = 9
	DefaultMinReward    = 50
	DefaultMaxReward    = 500
	DefaultDomain       = "dammedaga.fun"
	DefaultGameDuration = 24 * time.Hour

	// SeedWinningRate is the win rate every egg starts with.
	SeedWinningRate = 100
)

// Leaderboard formatting
const (
	leaderboardNameFormat = "%dth********"
	linkIDQueryParam      = "linkId"
)

// Log messages
const (
	LogMsgEggBroken         = "Egg broken"
	LogMsgLinkConsumed      = "Custom link consumed"
	LogMsgRewardsClaimed    = "Rewards claimed"
	LogMsgGameReset         = "Game reset"
	LogMsgEggUpdated        = "Egg configuration updated"
	LogMsgEggBrokenOverride = "Egg broken flag overridden"
	LogMsgLinkCreated       = "Custom link created"
	LogMsgLinkDeleted       = "Custom link deleted"
	LogMsgDeadlineRolled    = "Game deadline rolled over"
	LogMsgPublishFailed     = "Failed to publish event"
)
