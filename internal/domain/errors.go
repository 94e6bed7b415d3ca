package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Egg errors
	ErrMsgEggNotFound        = "egg not found"
	ErrMsgEggAlreadyBroken   = "egg is already broken"
	ErrMsgInvalidWinningRate = "winning rate must be between 0 and 100"
	ErrMsgInvalidReward      = "invalid reward"

	// Link errors
	ErrMsgLinkNotFound    = "link not found"
	ErrMsgLinkAlreadyUsed = "link has already been used"
	ErrMsgInvalidLink     = "invalid link"
	ErrMsgLinkEggMismatch = "link was issued for a different egg"

	// Reward errors
	ErrMsgNoRewardsToClaim = "no rewards to claim"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrEggNotFound        = errors.New(ErrMsgEggNotFound)
	ErrEggAlreadyBroken   = errors.New(ErrMsgEggAlreadyBroken)
	ErrInvalidWinningRate = errors.New(ErrMsgInvalidWinningRate)
	ErrInvalidReward      = errors.New(ErrMsgInvalidReward)

	ErrLinkNotFound    = errors.New(ErrMsgLinkNotFound)
	ErrLinkAlreadyUsed = errors.New(ErrMsgLinkAlreadyUsed)
	ErrInvalidLink     = errors.New(ErrMsgInvalidLink)
	ErrLinkEggMismatch = errors.New(ErrMsgLinkEggMismatch)

	ErrNoRewardsToClaim = errors.New(ErrMsgNoRewardsToClaim)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
