package tags

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported file type")

// LoadError reports a file the tagging backends could not open.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to access %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// TagSet is the per-file key/value view of a loaded file's tags. Writes are
// buffered until Save.
type TagSet interface {
	Path() string
	Get(field Field) string
	GetMulti(field Field) []string
	Set(field Field, value string)
	Save() error
}

type Accessor interface {
	Load(path string) (TagSet, error)
}

type accessor struct{}

func NewAccessor() Accessor {
	return &accessor{}
}

func (a *accessor) Load(path string) (TagSet, error) {
	return Load(path)
}

// Format names the tag backend chosen for a path.
type Format int

const (
	FormatUnknown Format = iota
	FormatFLAC
	FormatMP3
)

func (f Format) String() string {
	switch f {
	case FormatFLAC:
		return "FLAC"
	case FormatMP3:
		return "MP3"
	}
	return "unknown"
}

// DetectFormat picks a backend by substring match on the extension, the way
// the file dialog filters do: ".flac"/".FLAC" and ".mp3"/".MP3".
func DetectFormat(path string) Format {
	switch {
	case strings.Contains(path, ".flac") || strings.Contains(path, ".FLAC"):
		return FormatFLAC
	case strings.Contains(path, ".mp3") || strings.Contains(path, ".MP3"):
		return FormatMP3
	}
	return FormatUnknown
}

// Load opens path with the backend matching its extension. Unknown
// extensions fail without touching the file.
func Load(path string) (TagSet, error) {
	var (
		ts  TagSet
		err error
	)
	switch DetectFormat(path) {
	case FormatFLAC:
		ts, err = openFLAC(path)
	case FormatMP3:
		ts, err = openMP3(path)
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ts, nil
}

// Display renders a field the way a table row shows it.
func Display(ts TagSet, field Field) string {
	switch {
	case field == TrackNumber:
		return TrackNumberValue(ts.Get(TrackNumber))
	case field.IsMultiValued():
		return JoinValues(ts.GetMulti(field))
	}
	return ts.Get(field)
}

// Row collects the display value of every field. The filename column is
// derived from the path, see ShortName.
func Row(ts TagSet) map[Field]string {
	row := make(map[Field]string, len(Fields))
	for _, f := range Fields {
		row[f] = Display(ts, f)
	}
	return row
}

// ShortName is the value shown in the filename column.
func ShortName(path string) string {
	return filepath.Base(path)
}

// WriteField loads path, sets one field and saves it.
func WriteField(a Accessor, path string, field Field, value string) error {
	ts, err := a.Load(path)
	if err != nil {
		return err
	}
	ts.Set(field, value)
	if err := ts.Save(); err != nil {
		return &LoadError{Path: path, Err: fmt.Errorf("failed to save tags: %w", err)}
	}
	return nil
}
