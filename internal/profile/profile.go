// SPDX-License-Identifier: AGPL-3.0-only
package profile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Count is a non-negative counter. It decodes from either a JSON number or a
// decimal string, since some data sources ship counts as text.
type Count int

// MaxCount is the largest count a data source may carry; one follow on top of
// it must still fit in an int.
const MaxCount = Count(math.MaxInt - 1)

func (c *Count) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = s
	}
	return c.parse(raw)
}

func (c *Count) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch n := v.(type) {
	case nil:
		return nil
	case string:
		return c.parse(n)
	case int:
		return c.parse(strconv.Itoa(n))
	case int64:
		return c.parse(strconv.FormatInt(n, 10))
	case uint64:
		return c.parse(strconv.FormatUint(n, 10))
	default:
		return fmt.Errorf("count %v is not a whole number", v)
	}
}

func (c *Count) parse(raw string) error {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("count %q is not a whole number", raw)
	}
	if n < 0 {
		return fmt.Errorf("count %d is negative", n)
	}
	if Count(n) > MaxCount {
		return fmt.Errorf("count %d is too large", n)
	}
	*c = Count(n)
	return nil
}

type Stats struct {
	Posts     Count `json:"posts" yaml:"posts"`
	Followers Count `json:"followers" yaml:"followers"`
	Following Count `json:"following" yaml:"following"`
}

// Activity is a single feed entry. It is never modified once loaded.
type Activity struct {
	ID        int    `json:"id" yaml:"id" validate:"gt=0"`
	Icon      string `json:"icon" yaml:"icon" validate:"required"`
	Text      string `json:"text" yaml:"text" validate:"required"`
	Timestamp string `json:"timestamp" yaml:"timestamp" validate:"required"`
}

type UserProfile struct {
	Name       string     `json:"name" yaml:"name" validate:"required"`
	AvatarURL  string     `json:"avatarUrl" yaml:"avatarUrl" validate:"omitempty,https_url"`
	Bio        string     `json:"bio" yaml:"bio"`
	Stats      Stats      `json:"stats" yaml:"stats"`
	Activities []Activity `json:"activities" yaml:"activities" validate:"-"`
}

// ActivityList returns a copy of the activities in display order.
func (u UserProfile) ActivityList() []Activity {
	out := make([]Activity, len(u.Activities))
	copy(out, u.Activities)
	return out
}

type FollowState struct {
	IsFollowing bool `json:"is_following"`
}

// Snapshot is the whole dashboard state at one point in time.
type Snapshot struct {
	User   UserProfile `json:"user"`
	Follow FollowState `json:"follow"`
}

// Follow marks the viewer as following and bumps the follower count by one.
// Calling it on a snapshot that is already following returns it unchanged.
func Follow(s Snapshot) Snapshot {
	if s.Follow.IsFollowing {
		return s
	}
	next := s
	// Saturate instead of wrapping; followers never goes negative.
	if s.User.Stats.Followers < math.MaxInt {
		next.User.Stats.Followers = s.User.Stats.Followers + 1
	}
	next.Follow.IsFollowing = true
	return next
}
