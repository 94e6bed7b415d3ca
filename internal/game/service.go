package game

import (
	"context"
	"time"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
	"github.com/osse101/GoldenEgg_Go/internal/event"
	"github.com/osse101/GoldenEgg_Go/internal/logger"
)

// Service defines the game and admin operations
type Service interface {
	// GetGameState returns the player view, scoped to a custom link when linkID is set
	GetGameState(ctx context.Context, linkID *int) (domain.GameState, error)

	// BreakEgg draws against an egg's winning rate, consuming the link if one is given
	BreakEgg(ctx context.Context, eggID int, linkID *int) (domain.BreakResult, error)

	// ClaimRewards records the running total on the leaderboard and resets the round
	ClaimRewards(ctx context.Context) (domain.ClaimResult, error)

	// ResetGame clears broken flags and the running total
	ResetGame(ctx context.Context) error

	GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error)
	GetLink(ctx context.Context, linkID int) (domain.LinkInfo, error)

	// RolloverDeadline moves an elapsed deadline forward by one game duration
	RolloverDeadline(ctx context.Context, now time.Time) error

	// Admin operations
	ListEggs(ctx context.Context) ([]domain.Egg, error)
	UpdateEgg(ctx context.Context, eggID int, reward domain.Reward, winningRate float64) (domain.Egg, error)
	SetEggBroken(ctx context.Context, eggID int, broken bool) (domain.Egg, error)
	CreateLink(ctx context.Context, req domain.NewLink) (domain.CustomLink, error)
	ListLinks(ctx context.Context) ([]domain.CustomLink, error)
	DeleteLink(ctx context.Context, linkID int) error
}

type service struct {
	store *Store
	bus   event.Bus
}

// NewService creates a new game service. bus may be nil.
func NewService(store *Store, bus event.Bus) Service {
	return &service{
		store: store,
		bus:   bus,
	}
}

func (s *service) GetGameState(ctx context.Context, linkID *int) (domain.GameState, error) {
	return s.store.State(linkID)
}

func (s *service) BreakEgg(ctx context.Context, eggID int, linkID *int) (domain.BreakResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.store.Break(eggID, linkID)
	if err != nil {
		return domain.BreakResult{}, err
	}

	log.Info(LogMsgEggBroken,
		"egg_id", eggID,
		"won", result.Won,
		"reward", result.Reward.String(),
		"total", result.TotalReward)

	if result.LinkID != nil {
		log.Info(LogMsgLinkConsumed, "link_id", *result.LinkID, "egg_id", eggID)
		s.publish(ctx, event.NewLinkUsedEvent(*result.LinkID, eggID))
	}
	s.publish(ctx, event.NewEggBrokenEvent(result))

	return result, nil
}

func (s *service) ClaimRewards(ctx context.Context) (domain.ClaimResult, error) {
	result, err := s.store.Claim()
	if err != nil {
		return domain.ClaimResult{}, err
	}

	logger.FromContext(ctx).Info(LogMsgRewardsClaimed, "total", result.TotalReward)
	s.publish(ctx, event.NewRewardsClaimedEvent(result.TotalReward))
	s.publish(ctx, event.NewGameResetEvent(s.store.Deadline()))
	return result, nil
}

func (s *service) ResetGame(ctx context.Context) error {
	deadline := s.store.Reset()
	logger.FromContext(ctx).Info(LogMsgGameReset, "deadline", deadline)
	s.publish(ctx, event.NewGameResetEvent(deadline))
	return nil
}

func (s *service) GetLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.store.Leaderboard(), nil
}

func (s *service) GetLink(ctx context.Context, linkID int) (domain.LinkInfo, error) {
	link, err := s.store.Link(linkID)
	if err != nil {
		return domain.LinkInfo{}, err
	}
	return domain.LinkInfo{
		LinkID: link.ID,
		EggID:  link.EggID,
		Reward: link.Reward,
		Used:   link.Used,
	}, nil
}

func (s *service) RolloverDeadline(ctx context.Context, now time.Time) error {
	deadline, moved := s.store.RolloverDeadline(now)
	if moved {
		logger.FromContext(ctx).Info(LogMsgDeadlineRolled, "deadline", deadline)
	}
	return nil
}

func (s *service) ListEggs(ctx context.Context) ([]domain.Egg, error) {
	return s.store.Eggs(), nil
}

func (s *service) UpdateEgg(ctx context.Context, eggID int, reward domain.Reward, winningRate float64) (domain.Egg, error) {
	egg, err := s.store.UpdateEgg(eggID, reward, winningRate)
	if err != nil {
		return domain.Egg{}, err
	}
	logger.FromContext(ctx).Info(LogMsgEggUpdated,
		"egg_id", eggID,
		"reward", reward.String(),
		"winning_rate", winningRate)
	return egg, nil
}

func (s *service) SetEggBroken(ctx context.Context, eggID int, broken bool) (domain.Egg, error) {
	egg, err := s.store.SetBroken(eggID, broken)
	if err != nil {
		return domain.Egg{}, err
	}
	logger.FromContext(ctx).Info(LogMsgEggBrokenOverride, "egg_id", eggID, "broken", broken)
	return egg, nil
}

func (s *service) CreateLink(ctx context.Context, req domain.NewLink) (domain.CustomLink, error) {
	link, err := s.store.CreateLink(req)
	if err != nil {
		return domain.CustomLink{}, err
	}
	logger.FromContext(ctx).Info(LogMsgLinkCreated,
		"link_id", link.ID,
		"egg_id", link.EggID,
		"url", link.FullURL)
	return link, nil
}

func (s *service) ListLinks(ctx context.Context) ([]domain.CustomLink, error) {
	return s.store.Links(), nil
}

func (s *service) DeleteLink(ctx context.Context, linkID int) error {
	if err := s.store.DeleteLink(linkID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgLinkDeleted, "link_id", linkID)
	return nil
}

// publish never fails the caller; subscribers are side channels.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
