package social

// MenuItem is one row of the navigation rail.
type MenuItem struct {
	ID    ViewID
	Label string
	Icon  string
	Badge *uint // unread/pending count; nil when the row carries none
}

// HasBadge reports whether the badge should be displayed.
func (m MenuItem) HasBadge() bool {
	return m.Badge != nil && *m.Badge > 0
}

// Count builds a badge value.
func Count(n uint) *uint {
	return &n
}

// defaultMenu is the static rail configuration. Profile is deliberately
// absent: it is reached through the identity block.
var defaultMenu = []MenuItem{
	{ID: ViewFeed, Label: "Home", Icon: "⌂"},
	{ID: ViewSearch, Label: "Search", Icon: "⌕"},
	{ID: ViewExplore, Label: "Explore", Icon: "◎"},
	{ID: ViewReels, Label: "Reels", Icon: "▶"},
	{ID: ViewMessages, Label: "Messages", Icon: "✉", Badge: Count(12)},
	{ID: ViewNotifications, Label: "Notifications", Icon: "♥", Badge: Count(5)},
	{ID: ViewGroups, Label: "Groups", Icon: "☷"},
	{ID: ViewSaved, Label: "Saved", Icon: "⚑"},
	{ID: ViewLiked, Label: "Liked", Icon: "♡"},
	{ID: ViewTrending, Label: "Trending", Icon: "↗"},
	{ID: ViewEvents, Label: "Events", Icon: "▦", Badge: Count(2)},
}

// DefaultMenu returns a copy of the static menu table.
func DefaultMenu() []MenuItem {
	out := make([]MenuItem, len(defaultMenu))
	for i, item := range defaultMenu {
		out[i] = item
		if item.Badge != nil {
			out[i].Badge = Count(*item.Badge)
		}
	}
	return out
}

// FindMenuItem returns the index of the row for v, or -1.
func FindMenuItem(menu []MenuItem, v ViewID) int {
	for i, item := range menu {
		if item.ID == v {
			return i
		}
	}
	return -1
}
