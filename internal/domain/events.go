package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "egg.broken")
const (
	// EventTypeEggBroken is published after an egg is broken by a player
	EventTypeEggBroken = "egg.broken"

	// EventTypeLinkUsed is published when a custom link is consumed by a break
	EventTypeLinkUsed = "link.used"

	// EventTypeRewardsClaimed is published when the running total is claimed
	EventTypeRewardsClaimed = "rewards.claimed"

	// EventTypeGameReset is published when broken flags and the total are cleared
	EventTypeGameReset = "game.reset"
)
