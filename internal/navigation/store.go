// Package navigation holds the shell's single source of truth for which
// top-level view is mounted.
//
// A Store is created by the shell and passed explicitly to every consumer.
// It is not safe for concurrent mutation: all transitions are expected to
// happen on the UI event loop, which is the store's only writer.
package navigation

import (
	"pixelgram/internal/logging"
	"pixelgram/internal/social"
)

// Observer is notified after the active view changes.
type Observer func(from, to social.ViewID)

// Store holds exactly one active view.
type Store struct {
	active    social.ViewID
	observers []*subscription
}

type subscription struct {
	fn     Observer
	active bool
}

// New creates a store positioned on initial. An invalid initial view falls
// back to feed so the store is never empty.
func New(initial social.ViewID) *Store {
	if !initial.Valid() {
		initial = social.ViewFeed
	}
	return &Store{active: initial}
}

// Current returns the active view.
func (s *Store) Current() social.ViewID {
	return s.active
}

// RequestTransition makes target the active view and notifies observers.
// Targets outside the closed view set and repeats of the current view are
// ignored; the return value reports whether a transition happened.
func (s *Store) RequestTransition(target social.ViewID) bool {
	if !target.Valid() {
		logging.NavigationDebug("ignored transition to unknown view %q", target)
		return false
	}
	if target == s.active {
		return false
	}

	from := s.active
	s.active = target
	logging.NavigationDebug("transition %s -> %s", from, target)

	// Observers added during dispatch wait for the next transition.
	subs := make([]*subscription, len(s.observers))
	copy(subs, s.observers)
	for _, sub := range subs {
		if sub.active {
			sub.fn(from, target)
		}
	}
	return true
}

// Subscribe registers fn and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (s *Store) Subscribe(fn Observer) func() {
	sub := &subscription{fn: fn, active: true}
	s.observers = append(s.observers, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, o := range s.observers {
			if o == sub {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				break
			}
		}
	}
}

// Observers returns the number of live subscriptions.
func (s *Store) Observers() int {
	return len(s.observers)
}
