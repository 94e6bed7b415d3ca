package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxRewardTextLength caps promotional text prizes, in runes.
const MaxRewardTextLength = 100

// Reward is the prize behind an egg or a link. It is either a whole amount,
// which counts toward the running total, or promotional text, which does not.
type Reward struct {
	amount int64
	text   string
}

// NumericReward returns a whole-amount reward.
func NumericReward(amount int64) Reward {
	return Reward{amount: amount}
}

// TextReward returns a promotional text reward. The text is trimmed and
// normalized to NFC so visually identical prizes compare equal.
func TextReward(text string) Reward {
	return Reward{text: norm.NFC.String(strings.TrimSpace(text))}
}

// ParseReward interprets admin input. Integer strings become numeric rewards,
// anything else is kept as text.
func ParseReward(s string) (Reward, error) {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		return Reward{}, fmt.Errorf("%w: reward is empty", ErrInvalidReward)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return NumericReward(n), nil
	}
	return Reward{text: s}, nil
}

// IsText reports whether the reward is promotional text.
func (r Reward) IsText() bool {
	return r.text != ""
}

// Amount returns the numeric value and false for text rewards.
func (r Reward) Amount() (int64, bool) {
	if r.IsText() {
		return 0, false
	}
	return r.amount, true
}

// IsZero reports whether the reward is the numeric zero a losing draw yields.
func (r Reward) IsZero() bool {
	return !r.IsText() && r.amount == 0
}

// Validate checks the reward is usable as an egg prize.
func (r Reward) Validate() error {
	if r.IsText() {
		if n := len([]rune(r.text)); n > MaxRewardTextLength {
			return fmt.Errorf("%w: text is %d characters, max %d", ErrInvalidReward, n, MaxRewardTextLength)
		}
		return nil
	}
	if r.amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidReward)
	}
	return nil
}

func (r Reward) String() string {
	if r.IsText() {
		return r.text
	}
	return strconv.FormatInt(r.amount, 10)
}

// MarshalJSON encodes numeric rewards as JSON numbers and text as strings.
func (r Reward) MarshalJSON() ([]byte, error) {
	if r.IsText() {
		return json.Marshal(r.text)
	}
	return []byte(strconv.FormatInt(r.amount, 10)), nil
}

// UnmarshalJSON accepts a JSON number or string.
func (r *Reward) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: reward is required", ErrInvalidReward)
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseReward(s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReward, err)
	}
	if n, err := num.Int64(); err == nil {
		*r = NumericReward(n)
		return nil
	}
	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("%w: amount must be a whole number", ErrInvalidReward)
	}
	*r = NumericReward(int64(f))
	return nil
}
