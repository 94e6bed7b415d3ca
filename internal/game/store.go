package game

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/osse101/GoldenEgg_Go/internal/domain"
)

// Options configures a Store
type Options struct {
	TotalEggs     int
	MinReward     int64
	MaxReward     int64
	DefaultDomain string
	GameDuration  time.Duration
	Roller        Roller
	Now           func() time.Time
}

func (o Options) withDefaults() Options {
	if o.TotalEggs <= 0 {
		o.TotalEggs = DefaultTotalEggs
	}
	// Only an entirely unset range falls back to the defaults; [0, n] is valid
	if o.MinReward == 0 && o.MaxReward == 0 {
		o.MinReward, o.MaxReward = DefaultMinReward, DefaultMaxReward
	}
	o.MinReward = max(o.MinReward, 0)
	o.MaxReward = max(o.MaxReward, o.MinReward)
	if o.DefaultDomain == "" {
		o.DefaultDomain = DefaultDomain
	}
	if o.GameDuration <= 0 {
		o.GameDuration = DefaultGameDuration
	}
	if o.Roller == nil {
		o.Roller = NewRoller()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// eggState is an egg plus the reward its last break resolved to.
// resolved is nil until the egg is broken by a draw.
type eggState struct {
	domain.Egg
	resolved *domain.Reward
}

// Store is the in-memory game state. Every method runs under one mutex so
// check-then-mutate sequences, in particular consuming a link, are atomic.
type Store struct {
	mu   sync.Mutex
	opts Options

	eggs        []*eggState // index is id-1
	brokenOrder []int
	total       int64
	deadline    time.Time

	links      map[int]*domain.CustomLink
	nextLinkID int

	leaderboard []domain.LeaderboardEntry
	nextEntryID int
}

// NewStore seeds eggs with random rewards and a full win rate.
func NewStore(opts Options) *Store {
	opts = opts.withDefaults()
	s := &Store{
		opts:       opts,
		links:      make(map[int]*domain.CustomLink),
		nextLinkID: 1,
	}

	s.eggs = make([]*eggState, opts.TotalEggs)
	for i := range s.eggs {
		s.eggs[i] = &eggState{Egg: domain.Egg{
			ID:          i + 1,
			Reward:      domain.NumericReward(opts.Roller.Between(opts.MinReward, opts.MaxReward)),
			WinningRate: SeedWinningRate,
		}}
	}

	s.leaderboard = []domain.LeaderboardEntry{
		{ID: 1, Username: "1st********", Score: 188000},
		{ID: 2, Username: "2nd********", Score: 88000},
		{ID: 3, Username: "3rd********", Score: 88000},
	}
	s.nextEntryID = len(s.leaderboard) + 1
	s.deadline = opts.Now().Add(opts.GameDuration)
	return s
}

// State derives the player view. With a link, only the link's egg is
// allowed and visible rewards are zeroed once the link is used.
func (s *Store) State(linkID *int) (domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var link *domain.CustomLink
	if linkID != nil {
		l, err := s.linkLocked(*linkID)
		if err != nil {
			return domain.GameState{}, err
		}
		link = l
	}

	state := domain.GameState{
		Deadline:   s.deadline.UnixMilli(),
		BrokenEggs: append([]int{}, s.brokenOrder...),
		Progress:   s.progressLocked(),
		Eggs:       make([]domain.EggView, 0, len(s.eggs)),
	}

	for _, e := range s.eggs {
		view := domain.EggView{
			ID:             e.ID,
			Broken:         e.Broken,
			WinningRate:    e.WinningRate,
			ManuallyBroken: e.ManuallyBroken,
		}
		switch {
		case e.Broken && e.resolved != nil:
			view.Reward = *e.resolved
		case link != nil && link.Used:
			view.Reward = domain.NumericReward(0)
		default:
			view.Reward = potentialReward(e)
		}
		if link != nil {
			allowed := e.ID == link.EggID && !e.Broken && !link.Used
			view.Allowed = &allowed
		}
		state.Eggs = append(state.Eggs, view)
	}

	if link != nil {
		id, eggID, used := link.ID, link.EggID, link.Used
		state.LinkID = &id
		state.AllowedEggID = &eggID
		state.LinkUsed = &used
	}
	return state, nil
}

// Break resolves one egg. The egg is validated first, then the link, which
// must be unused and issued for this egg. The link is marked used before the
// draw. A losing draw yields a numeric zero.
func (s *Store) Break(eggID int, linkID *int) (domain.BreakResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	egg, err := s.eggLocked(eggID)
	if err != nil {
		return domain.BreakResult{}, err
	}
	if egg.Broken {
		return domain.BreakResult{}, fmt.Errorf("%w: egg %d", domain.ErrEggAlreadyBroken, eggID)
	}

	var link *domain.CustomLink
	if linkID != nil {
		link, err = s.linkLocked(*linkID)
		if err != nil {
			return domain.BreakResult{}, err
		}
		if link.Used {
			return domain.BreakResult{}, fmt.Errorf("%w: link %d", domain.ErrLinkAlreadyUsed, link.ID)
		}
		if link.EggID != eggID {
			return domain.BreakResult{}, fmt.Errorf("%w: link %d is for egg %d, not %d", domain.ErrLinkEggMismatch, link.ID, link.EggID, eggID)
		}
		link.Used = true
	}

	roll := s.opts.Roller.Roll()
	won := roll < egg.WinningRate
	reward := domain.NumericReward(0)
	if won {
		reward = egg.Reward
	}

	egg.Broken = true
	egg.ManuallyBroken = false
	egg.resolved = &reward
	s.markBrokenLocked(eggID)
	if amount, ok := reward.Amount(); ok {
		s.total += amount
	}

	result := domain.BreakResult{
		EggID:       eggID,
		Reward:      reward,
		Won:         won,
		Success:     true,
		TotalReward: s.total,
		Roll:        roll,
		WinningRate: egg.WinningRate,
	}
	if link != nil {
		id := link.ID
		result.LinkID = &id
		reveal := s.revealLocked(eggID, reward)
		result.Reveal = &reveal
	}
	return result, nil
}

// revealLocked builds the prize wall. The broken egg keeps its resolved
// reward; the others show what they could have paid.
func (s *Store) revealLocked(brokenEggID int, actual domain.Reward) domain.RevealResult {
	eggs := make([]domain.EggView, 0, len(s.eggs))
	for _, e := range s.eggs {
		view := domain.EggView{
			ID:          e.ID,
			Broken:      e.Broken,
			WinningRate: e.WinningRate,
		}
		switch {
		case e.ID == brokenEggID:
			view.Reward = actual
		case e.Broken && e.resolved != nil:
			view.Reward = *e.resolved
		default:
			view.Reward = potentialReward(e)
		}
		eggs = append(eggs, view)
	}
	return domain.RevealResult{
		Eggs:        eggs,
		BrokenEggID: brokenEggID,
		Reward:      actual,
		Success:     true,
	}
}

// Claim moves the running total onto the leaderboard and resets the round.
func (s *Store) Claim() (domain.ClaimResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.total <= 0 {
		return domain.ClaimResult{}, domain.ErrNoRewardsToClaim
	}

	total := s.total
	s.leaderboard = append(s.leaderboard, domain.LeaderboardEntry{
		ID:       s.nextEntryID,
		Username: fmt.Sprintf(leaderboardNameFormat, len(s.leaderboard)+1),
		Score:    total,
	})
	s.nextEntryID++
	sort.SliceStable(s.leaderboard, func(i, j int) bool {
		return s.leaderboard[i].Score > s.leaderboard[j].Score
	})

	s.resetLocked()
	return domain.ClaimResult{TotalReward: total, Success: true}, nil
}

// Reset clears broken flags and the total. Configured rewards, win rates
// and links are untouched.
func (s *Store) Reset() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	return s.deadline
}

func (s *Store) resetLocked() {
	for _, e := range s.eggs {
		e.Broken = false
		e.ManuallyBroken = false
		e.resolved = nil
	}
	s.brokenOrder = nil
	s.total = 0
	s.deadline = s.opts.Now().Add(s.opts.GameDuration)
}

// Leaderboard returns a copy of the leaderboard, highest score first.
func (s *Store) Leaderboard() []domain.LeaderboardEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.LeaderboardEntry{}, s.leaderboard...)
}

// Total returns the running total of numeric rewards won this round.
func (s *Store) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Deadline returns the displayed game deadline.
func (s *Store) Deadline() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deadline
}

// RolloverDeadline pushes an elapsed deadline forward by one game duration.
// It reports whether the deadline moved.
func (s *Store) RolloverDeadline(now time.Time) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now.Before(s.deadline) {
		return s.deadline, false
	}
	s.deadline = now.Add(s.opts.GameDuration)
	return s.deadline, true
}

// Eggs returns a copy of every egg's configuration.
func (s *Store) Eggs() []domain.Egg {
	s.mu.Lock()
	defer s.mu.Unlock()
	eggs := make([]domain.Egg, 0, len(s.eggs))
	for _, e := range s.eggs {
		eggs = append(eggs, e.Egg)
	}
	return eggs
}

// UpdateEgg sets an egg's reward and winning rate.
func (s *Store) UpdateEgg(eggID int, reward domain.Reward, winningRate float64) (domain.Egg, error) {
	if winningRate < domain.MinWinningRate || winningRate > domain.MaxWinningRate {
		return domain.Egg{}, fmt.Errorf("%w: got %v", domain.ErrInvalidWinningRate, winningRate)
	}
	if err := reward.Validate(); err != nil {
		return domain.Egg{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	egg, err := s.eggLocked(eggID)
	if err != nil {
		return domain.Egg{}, err
	}
	egg.Reward = reward
	egg.WinningRate = winningRate
	return egg.Egg, nil
}

// SetBroken overrides an egg's broken flag without a draw. The running
// total is never changed.
func (s *Store) SetBroken(eggID int, broken bool) (domain.Egg, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	egg, err := s.eggLocked(eggID)
	if err != nil {
		return domain.Egg{}, err
	}

	if broken {
		if !egg.Broken {
			egg.Broken = true
			egg.ManuallyBroken = true
			s.markBrokenLocked(eggID)
		}
		return egg.Egg, nil
	}

	egg.Broken = false
	egg.ManuallyBroken = false
	egg.resolved = nil
	s.unmarkBrokenLocked(eggID)
	return egg.Egg, nil
}

// CreateLink registers a single-use link with a freshly drawn reward.
func (s *Store) CreateLink(req domain.NewLink) (domain.CustomLink, error) {
	subdomain := strings.ToLower(strings.TrimSpace(req.Subdomain))
	if subdomain == "" {
		return domain.CustomLink{}, fmt.Errorf("%w: subdomain is required", domain.ErrInvalidLink)
	}

	host := strings.ToLower(strings.TrimSpace(req.Domain))
	if host == "" {
		host = s.opts.DefaultDomain
	}

	protocol := strings.ToLower(strings.TrimSpace(req.Protocol))
	switch protocol {
	case "":
		protocol = domain.ProtocolHTTPS
	case domain.ProtocolHTTP, domain.ProtocolHTTPS:
	default:
		return domain.CustomLink{}, fmt.Errorf("%w: unsupported protocol %q", domain.ErrInvalidLink, req.Protocol)
	}

	path := strings.TrimSpace(req.Path)
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.eggLocked(req.EggID); err != nil {
		return domain.CustomLink{}, err
	}

	id := s.nextLinkID
	s.nextLinkID++

	link := &domain.CustomLink{
		ID:        id,
		Domain:    host,
		Subdomain: subdomain,
		Path:      path,
		Protocol:  protocol,
		FullURL:   linkURL(protocol, subdomain, host, path, id),
		EggID:     req.EggID,
		Reward:    domain.NumericReward(s.opts.Roller.Between(s.opts.MinReward, s.opts.MaxReward)),
		Active:    true,
		CreatedAt: s.opts.Now().UTC(),
	}
	s.links[id] = link
	return *link, nil
}

// Links returns every link ordered by id.
func (s *Store) Links() []domain.CustomLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	links := make([]domain.CustomLink, 0, len(s.links))
	for _, l := range s.links {
		links = append(links, *l)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links
}

// Link returns one link by id.
func (s *Store) Link(linkID int) (domain.CustomLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.linkLocked(linkID)
	if err != nil {
		return domain.CustomLink{}, err
	}
	return *l, nil
}

// DeleteLink removes a link.
func (s *Store) DeleteLink(linkID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.linkLocked(linkID); err != nil {
		return err
	}
	delete(s.links, linkID)
	return nil
}

func (s *Store) eggLocked(eggID int) (*eggState, error) {
	// Ids run 1..TotalEggs, so an unknown id is a malformed request
	if eggID < 1 || eggID > len(s.eggs) {
		return nil, fmt.Errorf("%w: %w: egg %d outside 1..%d", domain.ErrInvalidInput, domain.ErrEggNotFound, eggID, len(s.eggs))
	}
	return s.eggs[eggID-1], nil
}

func (s *Store) linkLocked(linkID int) (*domain.CustomLink, error) {
	l, ok := s.links[linkID]
	if !ok {
		return nil, fmt.Errorf("%w: link %d", domain.ErrLinkNotFound, linkID)
	}
	return l, nil
}

func (s *Store) markBrokenLocked(eggID int) {
	for _, id := range s.brokenOrder {
		if id == eggID {
			return
		}
	}
	s.brokenOrder = append(s.brokenOrder, eggID)
}

func (s *Store) unmarkBrokenLocked(eggID int) {
	for i, id := range s.brokenOrder {
		if id == eggID {
			s.brokenOrder = append(s.brokenOrder[:i], s.brokenOrder[i+1:]...)
			return
		}
	}
}

func (s *Store) progressLocked() float64 {
	if len(s.eggs) == 0 {
		return 0
	}
	return float64(len(s.brokenOrder)) / float64(len(s.eggs)) * 100
}

// potentialReward is what an unresolved egg would pay on a win.
func potentialReward(e *eggState) domain.Reward {
	if e.WinningRate == 0 {
		return domain.NumericReward(0)
	}
	return e.Reward
}

func linkURL(protocol, subdomain, host, path string, id int) string {
	u := url.URL{
		Scheme:   protocol,
		Host:     subdomain + "." + host,
		Path:     path,
		RawQuery: url.Values{linkIDQueryParam: {strconv.Itoa(id)}}.Encode(),
	}
	return u.String()
}
