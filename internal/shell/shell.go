// SPDX-License-Identifier: AGPL-3.0-only
package shell

import (
	"sync"

	"github.com/fluffyriot/profiledash/internal/profile"
	"go.uber.org/zap"
)

// Shell owns the dashboard state. Follow is the only write path.
type Shell struct {
	log     *zap.Logger
	mu      sync.Mutex
	state   profile.Snapshot
	initial profile.Count
	loadErr error
	subs    map[int]chan profile.Snapshot
	nextSub int
}

func New(user profile.UserProfile, log *zap.Logger) *Shell {
	return &Shell{
		log:     log,
		state:   profile.Snapshot{User: user},
		initial: user.Stats.Followers,
		subs:    make(map[int]chan profile.Snapshot),
	}
}

// NewUnavailable builds a shell for a profile that could not be loaded. It
// renders a placeholder and ignores follow requests.
func NewUnavailable(err error, log *zap.Logger) *Shell {
	return &Shell{
		log:     log,
		loadErr: err,
		subs:    make(map[int]chan profile.Snapshot),
	}
}

func (s *Shell) LoadError() error {
	return s.loadErr
}

func (s *Shell) Snapshot() profile.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyState()
}

// InitialFollowers is the follower count the session started with.
func (s *Shell) InitialFollowers() profile.Count {
	return s.initial
}

// Follow applies the follow transition. changed is false when the viewer was
// already following or the profile is unavailable.
func (s *Shell) Follow() (profile.Snapshot, bool) {
	if s.loadErr != nil {
		return profile.Snapshot{}, false
	}

	s.mu.Lock()
	next := profile.Follow(s.state)
	changed := next.Follow != s.state.Follow
	s.state = next
	out := s.copyState()
	if changed {
		s.notify(out)
	}
	s.mu.Unlock()

	if changed {
		s.log.Info("Profile followed",
			zap.String("name", out.User.Name),
			zap.Int("followers", int(out.User.Stats.Followers)),
		)
	} else {
		s.log.Debug("Follow ignored, already following")
	}

	return out, changed
}

// Subscribe returns a channel that receives the state after every change.
// Delivery is latest-wins: a subscriber that falls behind only sees the most
// recent state. cancel must be called to release the subscription.
func (s *Shell) Subscribe() (<-chan profile.Snapshot, func()) {
	ch := make(chan profile.Snapshot, 1)

	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

// must hold s.mu
func (s *Shell) notify(state profile.Snapshot) {
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- state:
		default:
		}
	}
}

// must hold s.mu
func (s *Shell) copyState() profile.Snapshot {
	out := s.state
	out.User.Activities = s.state.User.ActivityList()
	return out
}
