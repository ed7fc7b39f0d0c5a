// Package tracklist keeps the loaded files, their display rows and the
// pending track titles of a tagging session in step.
//
// A Session is driven one user action at a time and is not safe for
// concurrent use.
package tracklist

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lc-pierce/discogs-metatagger/tags"
)

var (
	ErrTrackNumberNotNumeric = errors.New("one or more fields does not contain a number")
	ErrColumnNotWritable     = errors.New("column has no writable tag")
	ErrRowOutOfRange         = errors.New("row out of range")
	ErrLookupAlreadyLoaded   = errors.New("reset before attempting to load new data")
)

type FilesState int

const (
	Empty FilesState = iota
	FilesLoaded
)

func (s FilesState) String() string {
	if s == FilesLoaded {
		return "files loaded"
	}
	return "empty"
}

type LookupState int

const (
	NoLookup LookupState = iota
	LookupLoaded
)

func (s LookupState) String() string {
	if s == LookupLoaded {
		return "lookup loaded"
	}
	return "no lookup"
}

// Stripe is the alternating row shading, recomputed from position.
type Stripe int

const (
	EvenRow Stripe = iota
	OddRow
)

func stripeFor(position int) Stripe {
	if position%2 == 0 {
		return EvenRow
	}
	return OddRow
}

// Entry is one loaded file: its path, stable id and display row.
type Entry struct {
	ID     string
	Path   string
	Values map[tags.Field]string
	Stripe Stripe
}

// Value returns the display string for a column ("#1".."#9").
func (e Entry) Value(column string) string {
	if column == tags.FileNameColumn {
		return tags.ShortName(e.Path)
	}
	if f, ok := tags.FieldForColumn(column); ok {
		return e.Values[f]
	}
	return ""
}

func (e *Entry) clone() Entry {
	values := make(map[tags.Field]string, len(e.Values))
	for k, v := range e.Values {
		values[k] = v
	}
	return Entry{ID: e.ID, Path: e.Path, Values: values, Stripe: e.Stripe}
}

type Option func(*Session)

// WithProgress registers a callback invoked after every per-file write of a
// batch.
func WithProgress(fn func(done, total int)) Option {
	return func(s *Session) {
		s.progress = fn
	}
}

func WithLogger(log *logrus.Entry) Option {
	return func(s *Session) {
		s.log = log
	}
}

// WithTitleCase controls whether names taken from a release are title-cased.
func WithTitleCase(enabled bool) Option {
	return func(s *Session) {
		s.titleCase = enabled
	}
}

type Session struct {
	accessor tags.Accessor
	prompter Prompter

	entries []*Entry
	draft   map[tags.Field]string
	pending []string

	lookup LookupState

	progress  func(done, total int)
	log       *logrus.Entry
	titleCase bool
}

func NewSession(accessor tags.Accessor, prompter Prompter, opts ...Option) *Session {
	s := &Session{
		accessor:  accessor,
		prompter:  prompter,
		draft:     make(map[tags.Field]string),
		log:       logrus.WithField("component", "tracklist"),
		titleCase: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) FilesState() FilesState {
	if len(s.entries) == 0 {
		return Empty
	}
	return FilesLoaded
}

func (s *Session) LookupState() LookupState {
	return s.lookup
}

func (s *Session) Len() int {
	return len(s.entries)
}

// Entries returns copies of the entries in display order.
func (s *Session) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.clone()
	}
	return out
}

func (s *Session) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i].clone(), true
}

// Paths returns the loaded file paths in display order.
func (s *Session) Paths() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Path
	}
	return out
}

// AddFiles loads every path and appends the ones that load, in order. Each
// failure is alerted on its own and never becomes an entry.
func (s *Session) AddFiles(paths []string) []string {
	var failed []string
	for _, path := range paths {
		ts, err := s.accessor.Load(path)
		if err != nil {
			s.log.WithError(err).Debugf("failed to load %s", path)
			s.prompter.Alert(fmt.Sprintf("Unable to access %s", path))
			failed = append(failed, path)
			continue
		}
		s.entries = append(s.entries, &Entry{
			ID:     uuid.NewString(),
			Path:   path,
			Values: tags.Row(ts),
			Stripe: stripeFor(len(s.entries)),
		})
	}
	s.log.Infof("loaded %d of %d files", len(paths)-len(failed), len(paths))
	return failed
}

// RemoveFiles asks for confirmation and then drops the entries at the given
// positions, keeping the order of the rest. Out-of-range and repeated
// indices are ignored. It reports whether anything was removed.
func (s *Session) RemoveFiles(indices []int) bool {
	drop := make(map[int]bool, len(indices))
	var valid []int
	for _, i := range indices {
		if i < 0 || i >= len(s.entries) || drop[i] {
			continue
		}
		drop[i] = true
		valid = append(valid, i)
	}
	if len(valid) == 0 {
		return false
	}
	sort.Ints(valid)

	paths := make([]string, len(valid))
	for n, i := range valid {
		paths[n] = s.entries[i].Path
	}
	if !s.prompter.Confirm(Prompt{Kind: PromptRemove, Message: removeMessage, Indices: valid, Paths: paths}) {
		return false
	}

	kept := make([]*Entry, 0, len(s.entries)-len(valid))
	for i, e := range s.entries {
		if !drop[i] {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.restripe()
	s.log.Infof("removed %d files", len(valid))
	return true
}

// SortByTrackNumber orders entries by the integer in their displayed track
// number. Equal numbers keep their relative order. If any row does not hold
// an integer nothing moves.
func (s *Session) SortByTrackNumber() error {
	type keyed struct {
		key   int
		entry *Entry
	}

	rows := make([]keyed, len(s.entries))
	for i, e := range s.entries {
		n, err := strconv.Atoi(strings.TrimSpace(e.Values[tags.TrackNumber]))
		if err != nil {
			return fmt.Errorf("%w: row %d has %q", ErrTrackNumberNotNumeric, i+1, e.Values[tags.TrackNumber])
		}
		rows[i] = keyed{key: n, entry: e}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].key < rows[j].key
	})

	for i, r := range rows {
		s.entries[i] = r.entry
	}
	s.restripe()
	return nil
}

// Reset clears files, draft values, pending titles and lookup state.
func (s *Session) Reset() {
	s.entries = nil
	s.draft = make(map[tags.Field]string)
	s.pending = nil
	s.lookup = NoLookup
}

func (s *Session) restripe() {
	for i, e := range s.entries {
		e.Stripe = stripeFor(i)
	}
}
