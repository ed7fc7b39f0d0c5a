package tracklist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lc-pierce/discogs-metatagger/fetcher"
	"github.com/lc-pierce/discogs-metatagger/tags"
)

var trackPrefix = regexp.MustCompile(`^\s*\d+\.\s+`)

// StripTrackPrefix removes a leading "N. " from a pending title. Titles
// without one come back trimmed but otherwise unchanged.
func StripTrackPrefix(title string) string {
	return strings.TrimSpace(trackPrefix.ReplaceAllString(title, ""))
}

// NumberTitles renders titles as "1. First", "2. Second", ...
func NumberTitles(titles []string) []string {
	out := make([]string, len(titles))
	for i, t := range titles {
		out[i] = fmt.Sprintf("%d. %s", i+1, strings.TrimSpace(t))
	}
	return out
}

// ApplyRelease fills the draft and pending titles from a looked-up release.
// A session holds one lookup at a time; Reset clears it.
func (s *Session) ApplyRelease(r *fetcher.Release) error {
	if s.lookup == LookupLoaded {
		return ErrLookupAlreadyLoaded
	}
	if r == nil {
		return fmt.Errorf("no release to apply")
	}

	caser := cases.Title(language.Und)
	format := func(v string) string {
		v = strings.TrimSpace(v)
		if s.titleCase {
			return caser.String(v)
		}
		return v
	}

	artist := format(r.PrimaryArtist())
	s.draft[tags.Artist] = artist
	s.draft[tags.AlbumArtist] = artist
	s.draft[tags.Album] = format(r.Title)
	s.draft[tags.Genre] = format(r.PrimaryStyle())
	s.draft[tags.Organization] = format(r.PrimaryLabel())
	if r.Year > 0 {
		s.draft[tags.Date] = strconv.Itoa(r.Year)
	}
	if len(r.Tracks) > 0 {
		s.draft[tags.TrackTotal] = strconv.Itoa(len(r.Tracks))
	}

	titles := make([]string, len(r.Tracks))
	for i, t := range r.Tracks {
		titles[i] = format(t)
	}
	s.pending = NumberTitles(titles)

	s.lookup = LookupLoaded
	s.log.Infof("applied release %d (%s) with %d tracks", r.ID, r.Title, len(r.Tracks))
	return nil
}

// SetDraft sets one album-level draft value.
func (s *Session) SetDraft(field tags.Field, value string) {
	s.draft[field] = strings.TrimSpace(value)
}

func (s *Session) Draft(field tags.Field) string {
	return s.draft[field]
}

// SetPendingTitles replaces the pending tracklist, e.g. for manual entry.
func (s *Session) SetPendingTitles(titles []string) {
	s.pending = nil
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			s.pending = append(s.pending, t)
		}
	}
}

func (s *Session) PendingTitles() []string {
	return append([]string(nil), s.pending...)
}
