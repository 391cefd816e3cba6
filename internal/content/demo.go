package content

import (
	"fmt"
	"time"

	"pixelgram/internal/social"
)

// Demo returns the built-in content used when no fixture is configured.
func Demo() *Library {
	return NewLibrary(Fixture{
		Profile: social.UserProfile{
			ID:        "u-1001",
			Username:  "alex.rivera",
			FullName:  "Alex Rivera",
			AvatarRef: "avatars/alex.jpg",
			Bio:       "Photographer and coffee enthusiast. Chasing light in small places.",
			Verified:  true,
			Followers: 12453,
			Following: 892,
			Location:  "San Francisco, CA",
			Link:      "alexrivera.photo",
			JoinedAt:  time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		Posts:  demoPosts("p", []uint{2567, 1893, 3421, 987, 4562, 2134}, []uint{89, 45, 156, 23, 234, 67}),
		Saved:  demoPosts("s", []uint{5432, 3210}, []uint{198, 87}),
		Tagged: demoPosts("t", []uint{1543, 876, 2301}, []uint{34, 12, 98}),
		Highlights: []social.HighlightReel{
			{ID: "h-1", Title: "Travel", ThumbnailRef: "highlights/travel.jpg"},
			{ID: "h-2", Title: "Food", ThumbnailRef: "highlights/food.jpg"},
			{ID: "h-3", Title: "Nature", ThumbnailRef: "highlights/nature.jpg"},
			{ID: "h-4", Title: "Architecture", ThumbnailRef: "highlights/architecture.jpg"},
			{ID: "h-5", Title: "Street Photography", ThumbnailRef: "highlights/street.jpg"},
		},
	})
}

func demoPosts(prefix string, likes, comments []uint) []social.PostSummary {
	out := make([]social.PostSummary, len(likes))
	for i := range likes {
		out[i] = social.PostSummary{
			ID:       fmt.Sprintf("%s-%d", prefix, i+1),
			ImageRef: fmt.Sprintf("posts/%s%d.jpg", prefix, i+1),
			Likes:    likes[i],
			Comments: comments[i],
		}
	}
	return out
}
