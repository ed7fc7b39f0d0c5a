package tags

import (
	"fmt"
	"strings"
)

// Field is one of the metadata fields the tool reads and writes.
type Field int

const (
	TrackNumber Field = iota
	Title
	Artist
	AlbumArtist
	Album
	Date
	Genre
	Organization
	TrackTotal
)

// FileNameColumn is the display column holding the file's base name. It has
// no tag behind it.
const FileNameColumn = "#2"

var fieldNames = map[Field]string{
	TrackNumber:  "TrackNumber",
	Title:        "Title",
	Artist:       "Artist",
	AlbumArtist:  "AlbumArtist",
	Album:        "Album",
	Date:         "Date",
	Genre:        "Genre",
	Organization: "Organization",
	TrackTotal:   "TrackTotal",
}

var columnFields = map[string]Field{
	"#1": TrackNumber,
	"#3": Title,
	"#4": Artist,
	"#5": AlbumArtist,
	"#6": Album,
	"#7": Date,
	"#8": Genre,
	"#9": Organization,
}

// Columns lists the display columns in order, filename included.
var Columns = []string{"#1", "#2", "#3", "#4", "#5", "#6", "#7", "#8", "#9"}

// Fields lists every field in declaration order.
var Fields = []Field{TrackNumber, Title, Artist, AlbumArtist, Album, Date, Genre, Organization, TrackTotal}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// IsMultiValued reports whether the field may carry several values that get
// joined for display.
func (f Field) IsMultiValued() bool {
	return f == Artist || f == AlbumArtist || f == Genre
}

// ParseField resolves a field by name, case-insensitively.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field: %s", name)
}

// FieldForColumn maps a display column ("#1".."#9") to its field. The
// filename column and unknown columns report false.
func FieldForColumn(column string) (Field, bool) {
	f, ok := columnFields[column]
	return f, ok
}

// ColumnForField is the inverse of FieldForColumn. TrackTotal has no column.
func ColumnForField(field Field) (string, bool) {
	for col, f := range columnFields {
		if f == field {
			return col, true
		}
	}
	return "", false
}

// ColumnHeading is the short label a table renders above a column.
func ColumnHeading(column string) string {
	if column == "#1" {
		return "#"
	}
	if column == FileNameColumn {
		return "File"
	}
	if f, ok := FieldForColumn(column); ok {
		switch f {
		case AlbumArtist:
			return "Album Artist"
		case Organization:
			return "Label"
		}
		return f.String()
	}
	return column
}

// TrackNumberValue keeps only the part of a stored track number before the
// optional "/total" suffix.
func TrackNumberValue(raw string) string {
	if i := strings.Index(raw, "/"); i >= 0 {
		return raw[:i]
	}
	return raw
}

// JoinValues renders a multi-valued field as one display string.
func JoinValues(values []string) string {
	if len(values) == 1 {
		return values[0]
	}
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v)
		b.WriteString("; ")
	}
	return strings.TrimRight(strings.TrimSpace(b.String()), ";")
}
