// SPDX-License-Identifier: AGPL-3.0-only
package shell

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fluffyriot/profiledash/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testUser() profile.UserProfile {
	return profile.UserProfile{
		Name:  "Ada",
		Stats: profile.Stats{Posts: 1, Followers: 200, Following: 2},
		Activities: []profile.Activity{
			{ID: 1, Icon: "a", Text: "one", Timestamp: "t1"},
			{ID: 2, Icon: "b", Text: "two", Timestamp: "t2"},
		},
	}
}

func TestNewStartsNotFollowing(t *testing.T) {
	s := New(testUser(), zap.NewNop())

	snap := s.Snapshot()
	assert.False(t, snap.Follow.IsFollowing)
	assert.Equal(t, profile.Count(200), snap.User.Stats.Followers)
	assert.Equal(t, profile.Count(200), s.InitialFollowers())
	assert.NoError(t, s.LoadError())
}

func TestFollowTwiceIncrementsOnce(t *testing.T) {
	s := New(testUser(), zap.NewNop())

	first, changed := s.Follow()
	require.True(t, changed)
	assert.Equal(t, profile.Count(201), first.User.Stats.Followers)

	second, changed := s.Follow()
	assert.False(t, changed)
	assert.Equal(t, first, second)
	assert.Equal(t, profile.Count(201), s.Snapshot().User.Stats.Followers)
}

func TestConcurrentFollowsIncrementOnce(t *testing.T) {
	s := New(testUser(), zap.NewNop())

	var wg sync.WaitGroup
	var mu sync.Mutex
	changes := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, changed := s.Follow(); changed {
				mu.Lock()
				changes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, changes)
	followers := s.Snapshot().User.Stats.Followers
	assert.GreaterOrEqual(t, followers, s.InitialFollowers())
	assert.Equal(t, s.InitialFollowers()+1, followers)
}

func TestSnapshotDoesNotAliasState(t *testing.T) {
	s := New(testUser(), zap.NewNop())

	snap := s.Snapshot()
	snap.User.Activities[0].Text = "mutated"
	snap.User.Stats.Followers = 0

	again := s.Snapshot()
	assert.Equal(t, "one", again.User.Activities[0].Text)
	assert.Equal(t, profile.Count(200), again.User.Stats.Followers)
}

func TestSubscribeReceivesChange(t *testing.T) {
	s := New(testUser(), zap.NewNop())
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Follow()

	select {
	case got := <-ch:
		assert.True(t, got.Follow.IsFollowing)
		assert.Equal(t, profile.Count(201), got.User.Stats.Followers)
	case <-time.After(time.Second):
		t.Fatal("no state update delivered")
	}

	s.Follow()
	select {
	case <-ch:
		t.Fatal("no-op follow must not notify")
	default:
	}
}

func TestCancelledSubscriberIsDropped(t *testing.T) {
	s := New(testUser(), zap.NewNop())
	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	s.Follow()

	select {
	case <-ch:
		t.Fatal("cancelled subscriber received an update")
	default:
	}
}

func TestUnavailableShellIgnoresFollow(t *testing.T) {
	loadErr := &profile.DataLoadError{Source: "x.json", Err: errors.New("boom")}
	s := NewUnavailable(loadErr, zap.NewNop())

	_, changed := s.Follow()
	assert.False(t, changed)
	assert.ErrorIs(t, s.LoadError(), loadErr)
}
