package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pixelgram/internal/social"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixture = `
profile:
  id: u-7
  username: mira
  full_name: Mira Okafor
  verified: false
  followers: 1200
  following: 30
  joined_at: 2021-06-15T00:00:00Z
posts:
  - {id: a, image_ref: a.jpg, likes: 10, comments: 1}
  - {id: b, image_ref: b.jpg, likes: 2500, comments: 1001}
saved: []
tagged:
  - {id: c, image_ref: c.jpg, likes: 3, comments: 0}
highlights:
  - {id: h1, title: Lagos, thumbnail_ref: lagos.jpg}
`

func TestParseFixture(t *testing.T) {
	lib, err := ParseFixture([]byte(sampleFixture))
	require.NoError(t, err)

	p := lib.Profile()
	assert.Equal(t, "mira", p.Username)
	assert.False(t, p.Verified)
	assert.Equal(t, uint(1200), p.Followers)
	assert.Equal(t, 2021, p.JoinedAt.Year())

	want := []social.PostSummary{
		{ID: "a", ImageRef: "a.jpg", Likes: 10, Comments: 1},
		{ID: "b", ImageRef: "b.jpg", Likes: 2500, Comments: 1001},
	}
	if diff := cmp.Diff(want, lib.Posts()); diff != "" {
		t.Fatalf("posts mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, lib.Saved())
	assert.Len(t, lib.Tagged(), 1)
	assert.Len(t, lib.Highlights(), 1)
}

func TestParseFixtureRequiresUsername(t *testing.T) {
	_, err := ParseFixture([]byte("posts: []\n"))
	assert.True(t, errors.Is(err, ErrFixtureInvalid))
}

func TestParseFixtureBadYAML(t *testing.T) {
	_, err := ParseFixture([]byte("profile: [oops"))
	assert.Error(t, err)
}

func TestLoadFixtureMissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestOpenEmptyPathUsesDemo(t *testing.T) {
	lib, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, "alex.rivera", lib.Profile().Username)
	assert.Len(t, lib.Posts(), 6)
	assert.Len(t, lib.Saved(), 2)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	demo := Demo()
	require.NoError(t, demo.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alex.rivera")

	loaded, err := Open(path)
	require.NoError(t, err)
	if diff := cmp.Diff(demo.Posts(), loaded.Posts()); diff != "" {
		t.Fatalf("posts changed across save/load (-want +got):\n%s", diff)
	}
	assert.Equal(t, demo.Highlights(), loaded.Highlights())
}

func TestNewLibraryCopiesInput(t *testing.T) {
	posts := []social.PostSummary{{ID: "x", Likes: 1}}
	lib := NewLibrary(Fixture{Profile: social.UserProfile{Username: "u"}, Posts: posts})
	posts[0].Likes = 999
	assert.Equal(t, uint(1), lib.Posts()[0].Likes)
}

func TestLibrarySatisfiesInterfaces(t *testing.T) {
	var _ Session = Demo()
	var _ Source = Demo()
}
