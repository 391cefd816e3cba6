package navigation

import (
	"testing"

	"pixelgram/internal/social"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transition struct {
	From, To social.ViewID
}

func record(s *Store) *[]transition {
	var got []transition
	s.Subscribe(func(from, to social.ViewID) {
		got = append(got, transition{from, to})
	})
	return &got
}

func TestNewFallsBackToFeed(t *testing.T) {
	assert.Equal(t, social.ViewFeed, New("").Current())
	assert.Equal(t, social.ViewFeed, New("settings").Current())
	assert.Equal(t, social.ViewProfile, New(social.ViewProfile).Current())
}

func TestEveryViewIsReachable(t *testing.T) {
	s := New(social.ViewFeed)
	for _, v := range social.AllViews() {
		s.RequestTransition(v)
		assert.Equal(t, v, s.Current())
	}
	// And back again in reverse: no forbidden edges.
	views := social.AllViews()
	for i := len(views) - 1; i >= 0; i-- {
		s.RequestTransition(views[i])
		assert.Equal(t, views[i], s.Current())
	}
}

func TestInvalidTargetIsNoop(t *testing.T) {
	s := New(social.ViewMessages)
	got := record(s)

	assert.False(t, s.RequestTransition("settings"))
	assert.False(t, s.RequestTransition(""))
	assert.Equal(t, social.ViewMessages, s.Current())
	assert.Empty(t, *got)
}

func TestRepeatTransitionNotifiesOnce(t *testing.T) {
	s := New(social.ViewFeed)
	got := record(s)

	assert.True(t, s.RequestTransition(social.ViewExplore))
	assert.False(t, s.RequestTransition(social.ViewExplore))
	assert.Equal(t, social.ViewExplore, s.Current())

	want := []transition{{social.ViewFeed, social.ViewExplore}}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestObserversSeeCommittedValue(t *testing.T) {
	s := New(social.ViewFeed)
	var seen []social.ViewID
	s.Subscribe(func(_, to social.ViewID) {
		seen = append(seen, s.Current())
		assert.Equal(t, to, s.Current())
	})

	s.RequestTransition(social.ViewReels)
	s.RequestTransition(social.ViewProfile)
	assert.Equal(t, []social.ViewID{social.ViewReels, social.ViewProfile}, seen)
}

func TestObserversNotifiedInOrder(t *testing.T) {
	s := New(social.ViewFeed)
	var order []string
	s.Subscribe(func(_, _ social.ViewID) { order = append(order, "shell") })
	s.Subscribe(func(_, _ social.ViewID) { order = append(order, "sidebar") })

	s.RequestTransition(social.ViewSearch)
	assert.Equal(t, []string{"shell", "sidebar"}, order)
}

func TestUnsubscribe(t *testing.T) {
	s := New(social.ViewFeed)
	calls := 0
	unsub := s.Subscribe(func(_, _ social.ViewID) { calls++ })
	require.Equal(t, 1, s.Observers())

	s.RequestTransition(social.ViewSearch)
	unsub()
	unsub()
	s.RequestTransition(social.ViewFeed)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Observers())
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	s := New(social.ViewFeed)
	var second int
	var unsubSecond func()
	s.Subscribe(func(_, _ social.ViewID) { unsubSecond() })
	unsubSecond = s.Subscribe(func(_, _ social.ViewID) { second++ })

	s.RequestTransition(social.ViewSearch)
	assert.Equal(t, 0, second, "removed observer must not be called")
	assert.Equal(t, social.ViewSearch, s.Current())
}
