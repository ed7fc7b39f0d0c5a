package tracklist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lc-pierce/discogs-metatagger/tags"
)

// DraftFields are the album-level fields UpdateAllFields sends, in order.
var DraftFields = []tags.Field{
	tags.Album,
	tags.AlbumArtist,
	tags.Artist,
	tags.Date,
	tags.Genre,
	tags.Organization,
	tags.TrackTotal,
}

// BatchResult summarizes a write across the loaded files.
type BatchResult struct {
	Field     tags.Field
	Attempted int
	Written   int
	// Failed holds the positions, at write time, of files that could not be
	// written.
	Failed   []int
	Declined bool
	Removed  bool
}

func (r *BatchResult) OK() bool {
	return r != nil && !r.Declined && len(r.Failed) == 0
}

// writeBatch writes valueFor(i) into field for the first n entries. Failed
// files are alerted one by one and then offered for removal together.
func (s *Session) writeBatch(field tags.Field, n int, valueFor func(i int) string) *BatchResult {
	result := &BatchResult{Field: field, Attempted: n}

	for i := 0; i < n; i++ {
		e := s.entries[i]
		value := valueFor(i)
		if err := tags.WriteField(s.accessor, e.Path, field, value); err != nil {
			s.log.WithError(err).WithField("field", field.String()).Warnf("failed to write %s", e.Path)
			s.prompter.Alert(fmt.Sprintf("Unable to access %s", e.Path))
			result.Failed = append(result.Failed, i)
		} else {
			s.setDisplayed(e, field, value)
			result.Written++
		}
		if s.progress != nil {
			s.progress(i+1, n)
		}
	}

	s.log.Infof("wrote %s to %d of %d files", field, result.Written, n)
	if len(result.Failed) > 0 {
		result.Removed = s.RemoveFiles(result.Failed)
	}
	return result
}

func (s *Session) setDisplayed(e *Entry, field tags.Field, value string) {
	if field == tags.TrackNumber {
		value = tags.TrackNumberValue(value)
	}
	e.Values[field] = value
}

// UpdateManyTags writes the same value into field on every loaded file. A
// blank value is a no-op.
func (s *Session) UpdateManyTags(field tags.Field, value string) *BatchResult {
	value = strings.TrimSpace(value)
	if value == "" || len(s.entries) == 0 {
		return &BatchResult{Field: field}
	}
	return s.writeBatch(field, len(s.entries), func(int) string {
		return value
	})
}

// SendDraftField writes the draft value for one field to every loaded file.
func (s *Session) SendDraftField(field tags.Field) *BatchResult {
	return s.UpdateManyTags(field, s.draft[field])
}

// UpdateAllFields sends every non-empty draft field except Title. Each
// field is its own batch, so a file removed after one field is not written
// by the next.
func (s *Session) UpdateAllFields() []*BatchResult {
	var results []*BatchResult
	for _, field := range DraftFields {
		if strings.TrimSpace(s.draft[field]) == "" {
			continue
		}
		results = append(results, s.SendDraftField(field))
	}
	return results
}

// CopyTrackNumbers writes each file's 1-based position as its track number.
func (s *Session) CopyTrackNumbers() *BatchResult {
	if len(s.entries) == 0 {
		return &BatchResult{Field: tags.TrackNumber}
	}
	return s.writeBatch(tags.TrackNumber, len(s.entries), func(i int) string {
		return strconv.Itoa(i + 1)
	})
}

// CopyTracklist writes pending title i, without its "N. " prefix, to the
// file at position i. Extra titles or extra files are left alone. The user
// must confirm first since the pairing is purely positional.
func (s *Session) CopyTracklist() *BatchResult {
	n := len(s.entries)
	if len(s.pending) < n {
		n = len(s.pending)
	}
	if n == 0 {
		return &BatchResult{Field: tags.Title}
	}

	if !s.prompter.Confirm(Prompt{Kind: PromptOverwriteTitles, Message: overwriteTitlesMessage}) {
		return &BatchResult{Field: tags.Title, Declined: true}
	}

	titles := append([]string(nil), s.pending...)
	return s.writeBatch(tags.Title, n, func(i int) string {
		return StripTrackPrefix(titles[i])
	})
}

// UpdateSingleField writes value into the tag behind column for one row.
// Invalid positions or columns are returned as errors; a failed write is
// reported through the result and offered for removal.
func (s *Session) UpdateSingleField(row int, column, value string) (*BatchResult, error) {
	if row < 0 || row >= len(s.entries) {
		return nil, fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	field, ok := tags.FieldForColumn(column)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrColumnNotWritable, column)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return &BatchResult{Field: field}, nil
	}

	e := s.entries[row]
	result := &BatchResult{Field: field, Attempted: 1}
	if err := tags.WriteField(s.accessor, e.Path, field, value); err != nil {
		s.log.WithError(err).WithField("field", field.String()).Warnf("failed to write %s", e.Path)
		s.prompter.Alert(fmt.Sprintf("Unable to access %s", e.Path))
		result.Failed = []int{row}
		result.Removed = s.RemoveFiles(result.Failed)
		return result, nil
	}

	s.setDisplayed(e, field, value)
	result.Written = 1
	return result, nil
}
