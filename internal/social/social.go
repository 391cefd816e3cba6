// Package social defines the records shared by the pixelgram shell and its
// views: the signed-in user's profile, the navigation menu table, and the
// post and highlight summaries shown on the profile page.
//
// All records are read-only snapshots supplied from outside the view layer.
package social

import (
	"fmt"
	"strings"
	"time"
)

// ViewID identifies a top-level surface of the shell.
type ViewID string

const (
	ViewFeed          ViewID = "feed"
	ViewSearch        ViewID = "search"
	ViewExplore       ViewID = "explore"
	ViewReels         ViewID = "reels"
	ViewMessages      ViewID = "messages"
	ViewNotifications ViewID = "notifications"
	ViewGroups        ViewID = "groups"
	ViewSaved         ViewID = "saved"
	ViewLiked         ViewID = "liked"
	ViewTrending      ViewID = "trending"
	ViewEvents        ViewID = "events"
	ViewProfile       ViewID = "profile"
)

var allViews = []ViewID{
	ViewFeed,
	ViewSearch,
	ViewExplore,
	ViewReels,
	ViewMessages,
	ViewNotifications,
	ViewGroups,
	ViewSaved,
	ViewLiked,
	ViewTrending,
	ViewEvents,
	ViewProfile,
}

// AllViews returns every view identifier in declaration order.
func AllViews() []ViewID {
	out := make([]ViewID, len(allViews))
	copy(out, allViews)
	return out
}

// Valid reports whether v is a member of the closed view set.
func (v ViewID) Valid() bool {
	for _, known := range allViews {
		if v == known {
			return true
		}
	}
	return false
}

func (v ViewID) String() string { return string(v) }

// Title is the human-readable name used in page headers.
func (v ViewID) Title() string {
	if v == "" {
		return ""
	}
	return strings.ToUpper(string(v[:1])) + string(v[1:])
}

// ParseViewID converts user input (CLI flags, config values) into a ViewID.
func ParseViewID(s string) (ViewID, error) {
	v := ViewID(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown view %q", s)
	}
	return v, nil
}

// UserProfile is the signed-in user as supplied by the session.
type UserProfile struct {
	ID        string    `yaml:"id"`
	Username  string    `yaml:"username"`
	FullName  string    `yaml:"full_name"`
	AvatarRef string    `yaml:"avatar_ref"`
	Bio       string    `yaml:"bio"`
	Verified  bool      `yaml:"verified"`
	Followers uint      `yaml:"followers"`
	Following uint      `yaml:"following"`
	Location  string    `yaml:"location"`
	Link      string    `yaml:"link"`
	JoinedAt  time.Time `yaml:"joined_at"`
}

// Handle returns the username with its "@" prefix.
func (u UserProfile) Handle() string {
	return "@" + u.Username
}

// Initials returns the upper-case initials of the first and last word of the
// display name for the avatar glyph. A single word yields one initial.
func (u UserProfile) Initials() string {
	name := u.FullName
	if name == "" {
		name = u.Username
	}
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	first := []rune(fields[0])[:1]
	if len(fields) == 1 {
		return strings.ToUpper(string(first))
	}
	last := []rune(fields[len(fields)-1])[:1]
	return strings.ToUpper(string(first) + string(last))
}

// PostSummary is one gallery entry.
type PostSummary struct {
	ID       string `yaml:"id"`
	ImageRef string `yaml:"image_ref"`
	Likes    uint   `yaml:"likes"`
	Comments uint   `yaml:"comments"`
}

// HighlightReel is one entry of the profile highlight strip.
type HighlightReel struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	ThumbnailRef string `yaml:"thumbnail_ref"`
}

// ProfileTab is one of the four fixed profile gallery tabs.
type ProfileTab int

const (
	TabPosts ProfileTab = iota
	TabReels
	TabSaved
	TabTagged
)

var profileTabs = []ProfileTab{TabPosts, TabReels, TabSaved, TabTagged}

// ProfileTabs returns the tabs in display order.
func ProfileTabs() []ProfileTab {
	out := make([]ProfileTab, len(profileTabs))
	copy(out, profileTabs)
	return out
}

func (t ProfileTab) String() string {
	switch t {
	case TabPosts:
		return "posts"
	case TabReels:
		return "reels"
	case TabSaved:
		return "saved"
	case TabTagged:
		return "tagged"
	default:
		return "unknown"
	}
}

// Label is the tab caption.
func (t ProfileTab) Label() string {
	switch t {
	case TabPosts:
		return "Posts"
	case TabReels:
		return "Reels"
	case TabSaved:
		return "Saved"
	case TabTagged:
		return "Tagged"
	default:
		return "?"
	}
}

// Next returns the tab after t, wrapping around.
func (t ProfileTab) Next() ProfileTab {
	return ProfileTab((int(t) + 1) % len(profileTabs))
}

// Prev returns the tab before t, wrapping around.
func (t ProfileTab) Prev() ProfileTab {
	return ProfileTab((int(t) + len(profileTabs) - 1) % len(profileTabs))
}

// ParseProfileTab converts a tab name such as "saved" into a ProfileTab.
func ParseProfileTab(s string) (ProfileTab, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range profileTabs {
		if t.String() == name {
			return t, nil
		}
	}
	return TabPosts, fmt.Errorf("unknown profile tab %q", s)
}
