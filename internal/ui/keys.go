package ui

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Default hold windows. The first window has to outlast the terminal's
// auto-repeat delay, the second only the gap between repeats.
const (
	DefaultInitialHold = 500 * time.Millisecond
	DefaultRepeatHold  = 150 * time.Millisecond
)

type keyState struct {
	last      time.Time
	repeating bool
}

// KeyTracker derives held keys from a terminal key stream, which reports
// presses and auto-repeats but never releases. A key counts as held for a
// window after each event it produced.
type KeyTracker struct {
	Initial time.Duration
	Repeat  time.Duration

	keys   map[string]*keyState
	groups map[string][]string
}

// NewKeyTracker returns a tracker with the default windows. Keys in the same
// group are mutually exclusive: a fresh press releases the others, so a
// player switching direction does not keep drifting the old way.
func NewKeyTracker(groups ...[]string) *KeyTracker {
	k := &KeyTracker{
		Initial: DefaultInitialHold,
		Repeat:  DefaultRepeatHold,
		keys:    make(map[string]*keyState),
		groups:  make(map[string][]string),
	}
	for _, g := range groups {
		for _, key := range g {
			k.groups[key] = g
		}
	}
	return k
}

// Press records an event for key at t. It reports whether this was a fresh
// press rather than auto-repeat of a key already down. An event inside the
// key's current hold window is a repeat, so the terminal's first repeat,
// which arrives after its repeat delay, does not count as a second press.
func (k *KeyTracker) Press(key string, t time.Time) bool {
	if st, ok := k.keys[key]; ok && t.Sub(st.last) <= k.window(st) {
		st.last = t
		st.repeating = true
		return false
	}

	for _, other := range k.groups[key] {
		if other != key {
			delete(k.keys, other)
		}
	}
	k.keys[key] = &keyState{last: t}
	return true
}

// Held returns the keys still down at t and forgets the rest.
func (k *KeyTracker) Held(t time.Time) mapset.Set[string] {
	held := mapset.New[string]()
	for key, st := range k.keys {
		if t.Sub(st.last) <= k.window(st) {
			held.Put(key)
		} else {
			delete(k.keys, key)
		}
	}
	return held
}

func (k *KeyTracker) window(st *keyState) time.Duration {
	if st.repeating {
		return k.Repeat
	}
	return k.Initial
}

// Reset releases every key.
func (k *KeyTracker) Reset() {
	clear(k.keys)
}
