package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

var draftLabels = map[tags.Field]string{
	tags.Album:        "Album",
	tags.AlbumArtist:  "Album Artist",
	tags.Artist:       "Artist",
	tags.Date:         "Year",
	tags.Genre:        "Genre",
	tags.Organization: "Label",
	tags.TrackTotal:   "Track Total",
}

var yearPattern = regexp.MustCompile(`^\d{4}`)

// DraftEditor is the cursor over the album-level fields. The values
// themselves live in the session.
type DraftEditor struct {
	editingField  int
	validationErr string
}

func NewDraftEditor() *DraftEditor {
	return &DraftEditor{}
}

func (de *DraftEditor) Fields() []tags.Field {
	return tracklist.DraftFields
}

func (de *DraftEditor) Current() tags.Field {
	return tracklist.DraftFields[de.editingField]
}

func (de *DraftEditor) GetEditingField() int {
	return de.editingField
}

func (de *DraftEditor) MoveToPreviousField() {
	if de.editingField > 0 {
		de.editingField--
	}
}

func (de *DraftEditor) MoveToNextField() {
	if de.editingField < len(tracklist.DraftFields)-1 {
		de.editingField++
	}
}

func (de *DraftEditor) Reset() {
	de.editingField = 0
	de.validationErr = ""
}

func (de *DraftEditor) GetValidationError() string {
	return de.validationErr
}

// Validate checks a value typed for field and remembers the failure for
// display. Blank values are always accepted.
func (de *DraftEditor) Validate(field tags.Field, value string) error {
	de.validationErr = ""
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	var err error
	switch field {
	case tags.Date:
		if !yearPattern.MatchString(value) {
			err = fmt.Errorf("year must start with four digits")
		}
	case tags.TrackTotal:
		if n, convErr := strconv.Atoi(value); convErr != nil || n <= 0 {
			err = fmt.Errorf("track total must be a positive number")
		}
	}
	if err != nil {
		de.validationErr = err.Error()
	}
	return err
}

// commonValues returns, per draft field, the value every entry shares.
// Fields that differ between files or are empty everywhere are left out.
func commonValues(entries []tracklist.Entry) map[tags.Field]string {
	common := make(map[tags.Field]string)
	if len(entries) == 0 {
		return common
	}
	for _, field := range tracklist.DraftFields {
		value := entries[0].Values[field]
		if value == "" {
			continue
		}
		same := true
		for _, e := range entries[1:] {
			if e.Values[field] != value {
				same = false
				break
			}
		}
		if same {
			common[field] = value
		}
	}
	return common
}
