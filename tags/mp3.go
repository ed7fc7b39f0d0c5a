package tags

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
)

// id3 text frames are multi-valued through NUL separators in v2.4.
const id3Separator = "\x00"

var id3Descriptions = map[Field]string{
	TrackNumber:  "Track number/Position in set",
	Title:        "Title/Songname/Content description",
	Artist:       "Lead artist/Lead performer/Soloist/Performing group",
	AlbumArtist:  "Band/Orchestra/Accompaniment",
	Album:        "Album/Movie/Show title",
	Date:         "Year",
	Genre:        "Content type",
	Organization: "Publisher",
}

// mp3Tags reads every frame it cares about on open and closes the file. The
// file is reopened only for Save, so an unsaved TagSet holds no handle.
type mp3Tags struct {
	path    string
	values  map[Field]string
	pending map[Field]string
	// total waits here until a track number exists to carry it.
	total string
}

func openMP3(path string) (*mp3Tags, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer tag.Close()

	mt := &mp3Tags{
		path:    path,
		values:  make(map[Field]string, len(id3Descriptions)),
		pending: make(map[Field]string),
	}
	for field, desc := range id3Descriptions {
		id := tag.CommonID(desc)
		if id == "" {
			continue
		}
		mt.values[field] = strings.TrimRight(tag.GetTextFrame(id).Text, id3Separator)
	}
	return mt, nil
}

func (mt *mp3Tags) Path() string {
	return mt.path
}

func (mt *mp3Tags) raw(field Field) string {
	if v, ok := mt.pending[field]; ok {
		return v
	}
	return mt.values[field]
}

func (mt *mp3Tags) Get(field Field) string {
	values := mt.GetMulti(field)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (mt *mp3Tags) GetMulti(field Field) []string {
	if field == TrackTotal {
		if _, total, ok := strings.Cut(mt.raw(TrackNumber), "/"); ok && total != "" {
			return []string{total}
		}
		if mt.total != "" {
			return []string{mt.total}
		}
		return nil
	}
	text := mt.raw(field)
	if text == "" {
		return nil
	}
	return strings.Split(text, id3Separator)
}

// Set buffers a frame write. ID3 has no track total frame, so TrackTotal is
// folded into TRCK as "number/total", and a bare track number keeps any
// total already stored. A total set while there is no track number is held
// until one is set and is dropped on Save otherwise.
func (mt *mp3Tags) Set(field Field, value string) {
	switch field {
	case TrackTotal:
		number := TrackNumberValue(mt.raw(TrackNumber))
		switch {
		case number == "":
			mt.total = value
		case value == "":
			mt.pending[TrackNumber] = number
		default:
			mt.pending[TrackNumber] = number + "/" + value
		}
	case TrackNumber:
		if !strings.Contains(value, "/") && value != "" {
			if _, total, ok := strings.Cut(mt.raw(TrackNumber), "/"); ok && total != "" {
				value = value + "/" + total
			} else if mt.total != "" {
				value = value + "/" + mt.total
			}
		}
		mt.total = ""
		mt.pending[TrackNumber] = value
	default:
		if _, ok := id3Descriptions[field]; ok {
			mt.pending[field] = value
		}
	}
}

func (mt *mp3Tags) Save() error {
	if len(mt.pending) == 0 {
		return nil
	}

	tag, err := id3v2.Open(mt.path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer tag.Close()

	for field, value := range mt.pending {
		id := tag.CommonID(id3Descriptions[field])
		if id == "" {
			continue
		}
		if value == "" {
			tag.DeleteFrames(id)
			continue
		}
		tag.AddTextFrame(id, id3v2.EncodingUTF8, value)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("failed to save tags: %w", err)
	}

	for field, value := range mt.pending {
		mt.values[field] = value
	}
	mt.pending = make(map[Field]string)
	return nil
}
