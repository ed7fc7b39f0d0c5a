package tags

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnFieldMapping(t *testing.T) {
	tests := []struct {
		column string
		field  Field
	}{
		{"#1", TrackNumber},
		{"#3", Title},
		{"#4", Artist},
		{"#5", AlbumArtist},
		{"#6", Album},
		{"#7", Date},
		{"#8", Genre},
		{"#9", Organization},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			f, ok := FieldForColumn(tt.column)
			require.True(t, ok)
			assert.Equal(t, tt.field, f)

			col, ok := ColumnForField(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.column, col)
		})
	}
}

func TestFileNameColumnHasNoField(t *testing.T) {
	_, ok := FieldForColumn(FileNameColumn)
	assert.False(t, ok)

	_, ok = FieldForColumn("#10")
	assert.False(t, ok)

	_, ok = ColumnForField(TrackTotal)
	assert.False(t, ok)
}

func TestParseField(t *testing.T) {
	f, err := ParseField("albumartist")
	require.NoError(t, err)
	assert.Equal(t, AlbumArtist, f)

	_, err = ParseField("Composer")
	assert.Error(t, err)
}

func TestTrackNumberValue(t *testing.T) {
	assert.Equal(t, "3", TrackNumberValue("3/12"))
	assert.Equal(t, "7", TrackNumberValue("7"))
	assert.Equal(t, "", TrackNumberValue(""))
	assert.Equal(t, "", TrackNumberValue("/12"))
}

func TestJoinValues(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"none", nil, ""},
		{"single", []string{"Miles Davis"}, "Miles Davis"},
		{"two", []string{"Miles Davis", "John Coltrane"}, "Miles Davis; John Coltrane"},
		{"three", []string{"Rock", "Pop", "Jazz"}, "Rock; Pop; Jazz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinValues(tt.values))
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"/music/01 Intro.flac", FormatFLAC},
		{"/music/01 Intro.FLAC", FormatFLAC},
		{"/music/01 Intro.mp3", FormatMP3},
		{"/music/01 Intro.MP3", FormatMP3},
		{"/music/01 Intro.ogg", FormatUnknown},
		{"/music/01 Intro.Flac", FormatUnknown},
		// Substring match, not suffix match.
		{"/music/album.flac.d/cover.jpg", FormatFLAC},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.path))
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("/does/not/exist/track.wav")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "/does/not/exist/track.wav", loadErr.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist/track.flac")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnsupportedFormat))

	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}
