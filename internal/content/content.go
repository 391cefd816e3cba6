// Package content supplies the data the shell renders: the signed-in user's
// profile and the ordered post and highlight lists behind the profile page.
//
// Everything here stands in for the session service and the content API.
// Lists are handed to the views as-is; no sorting, paging or fetching happens
// after load.
package content

import (
	"errors"
	"fmt"
	"os"

	"pixelgram/internal/logging"
	"pixelgram/internal/social"

	"gopkg.in/yaml.v3"
)

// ErrFixtureInvalid is returned when a fixture has no usable profile.
var ErrFixtureInvalid = errors.New("fixture has no profile username")

// Session supplies the authenticated user.
type Session interface {
	Profile() social.UserProfile
}

// Source supplies the ordered lists behind the profile gallery.
type Source interface {
	Posts() []social.PostSummary
	Saved() []social.PostSummary
	Tagged() []social.PostSummary
	Highlights() []social.HighlightReel
}

// Fixture is the on-disk shape of a content fixture.
type Fixture struct {
	Profile    social.UserProfile     `yaml:"profile"`
	Posts      []social.PostSummary   `yaml:"posts"`
	Saved      []social.PostSummary   `yaml:"saved"`
	Tagged     []social.PostSummary   `yaml:"tagged"`
	Highlights []social.HighlightReel `yaml:"highlights"`
}

// Library is an in-memory Session and Source built from a Fixture.
type Library struct {
	profile    social.UserProfile
	posts      []social.PostSummary
	saved      []social.PostSummary
	tagged     []social.PostSummary
	highlights []social.HighlightReel
}

// NewLibrary copies the fixture lists so later edits to f do not leak in.
func NewLibrary(f Fixture) *Library {
	return &Library{
		profile:    f.Profile,
		posts:      clonePosts(f.Posts),
		saved:      clonePosts(f.Saved),
		tagged:     clonePosts(f.Tagged),
		highlights: append([]social.HighlightReel(nil), f.Highlights...),
	}
}

func clonePosts(in []social.PostSummary) []social.PostSummary {
	return append([]social.PostSummary(nil), in...)
}

// Profile implements Session.
func (l *Library) Profile() social.UserProfile { return l.profile }

// Posts implements Source.
func (l *Library) Posts() []social.PostSummary { return l.posts }

// Saved implements Source.
func (l *Library) Saved() []social.PostSummary { return l.saved }

// Tagged implements Source.
func (l *Library) Tagged() []social.PostSummary { return l.tagged }

// Highlights implements Source.
func (l *Library) Highlights() []social.HighlightReel { return l.highlights }

// ParseFixture decodes a YAML fixture.
func ParseFixture(data []byte) (*Library, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if f.Profile.Username == "" {
		return nil, ErrFixtureInvalid
	}
	if len(f.Highlights) == 0 {
		logging.ContentWarn("fixture for %s has no highlights", f.Profile.Username)
	}
	return NewLibrary(f), nil
}

// LoadFixture reads a YAML fixture from disk.
func LoadFixture(path string) (*Library, error) {
	timer := logging.StartTimer(logging.CategoryContent, "load fixture")
	defer timer.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	lib, err := ParseFixture(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Content("loaded fixture %s: %d posts, %d saved, %d tagged, %d highlights",
		path, len(lib.posts), len(lib.saved), len(lib.tagged), len(lib.highlights))
	return lib, nil
}

// Open returns the fixture at path, or the demo library when path is empty.
func Open(path string) (*Library, error) {
	if path == "" {
		logging.Content("no fixture configured, using demo content")
		return Demo(), nil
	}
	return LoadFixture(path)
}

// Save writes the library back out as a fixture.
func (l *Library) Save(path string) error {
	data, err := yaml.Marshal(Fixture{
		Profile:    l.profile,
		Posts:      l.posts,
		Saved:      l.saved,
		Tagged:     l.tagged,
		Highlights: l.highlights,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write fixture: %w", err)
	}
	return nil
}
