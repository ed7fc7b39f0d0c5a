package tags

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestFLAC writes a FLAC stream with a single STREAMINFO block and a
// few bytes of frame data. The tag backends never decode audio.
func writeTestFLAC(t *testing.T, name string) string {
	t.Helper()

	streamInfo := make([]byte, 34)
	binary.BigEndian.PutUint16(streamInfo[0:2], 4096)
	binary.BigEndian.PutUint16(streamInfo[2:4], 4096)

	data := []byte("fLaC")
	data = append(data, 0x80, 0x00, 0x00, byte(len(streamInfo)))
	data = append(data, streamInfo...)
	data = append(data, 0xFF, 0xF8, 0x00, 0x00)

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// writeTestMP3 writes an untagged file with an MPEG frame header.
func writeTestMP3(t *testing.T, name string) string {
	t.Helper()

	data := append([]byte{0xFF, 0xFB, 0x90, 0x64}, make([]byte, 128)...)
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFLACRoundTrip(t *testing.T) {
	path := writeTestFLAC(t, "01 Intro.flac")

	ts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", ts.Get(Title), "absent field reads as empty")

	ts.Set(Title, "Intro")
	ts.Set(Album, "Kind of Blue")
	ts.Set(TrackNumber, "1")
	ts.Set(TrackTotal, "5")
	ts.Set(Organization, "Columbia")
	require.NoError(t, ts.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Intro", reloaded.Get(Title))
	assert.Equal(t, "Kind of Blue", reloaded.Get(Album))
	assert.Equal(t, "1", reloaded.Get(TrackNumber))
	assert.Equal(t, "5", reloaded.Get(TrackTotal))
	assert.Equal(t, "Columbia", reloaded.Get(Organization))
}

func TestFLACSetReplacesExistingValues(t *testing.T) {
	path := writeTestFLAC(t, "02.flac")

	ts, err := openFLAC(path)
	require.NoError(t, err)
	ts.comments.Comments = append(ts.comments.Comments, "ARTIST=Miles Davis", "artist=John Coltrane")
	require.NoError(t, ts.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Miles Davis", "John Coltrane"}, reloaded.GetMulti(Artist))
	assert.Equal(t, "Miles Davis; John Coltrane", Display(reloaded, Artist))

	// Writing the joined display string back stores one value: the
	// join/split is lossy.
	reloaded.Set(Artist, Display(reloaded, Artist))
	require.NoError(t, reloaded.Save())

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Miles Davis; John Coltrane"}, again.GetMulti(Artist))
}

func TestMP3RoundTrip(t *testing.T) {
	path := writeTestMP3(t, "01 Intro.mp3")

	ts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", ts.Get(Title))

	ts.Set(Title, "So What")
	ts.Set(Artist, "Miles Davis")
	ts.Set(Genre, "Modal")
	ts.Set(Date, "1959")
	ts.Set(TrackNumber, "1")
	require.NoError(t, ts.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "So What", reloaded.Get(Title))
	assert.Equal(t, "Miles Davis", reloaded.Get(Artist))
	assert.Equal(t, "Modal", reloaded.Get(Genre))
	assert.Equal(t, "1959", reloaded.Get(Date))
	assert.Equal(t, "1", reloaded.Get(TrackNumber))
}

func TestMP3TrackTotalFoldsIntoTrackNumber(t *testing.T) {
	path := writeTestMP3(t, "03.mp3")

	ts, err := Load(path)
	require.NoError(t, err)
	ts.Set(TrackNumber, "3")
	ts.Set(TrackTotal, "12")
	require.NoError(t, ts.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "3/12", reloaded.Get(TrackNumber))
	assert.Equal(t, "12", reloaded.Get(TrackTotal))
	assert.Equal(t, "3", Display(reloaded, TrackNumber))

	// Renumbering keeps the stored total.
	reloaded.Set(TrackNumber, "4")
	require.NoError(t, reloaded.Save())

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4/12", again.Get(TrackNumber))
}

func TestMP3TrackTotalWithoutTrackNumber(t *testing.T) {
	path := writeTestMP3(t, "04.mp3")

	ts, err := Load(path)
	require.NoError(t, err)
	ts.Set(TrackTotal, "12")
	assert.Equal(t, "", ts.Get(TrackNumber))
	assert.Equal(t, "12", ts.Get(TrackTotal))
	require.NoError(t, ts.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "", reloaded.Get(TrackNumber), "no bare /total frame")
	assert.Equal(t, "", reloaded.Get(TrackTotal))

	// A number set afterwards picks up the held total.
	reloaded.Set(TrackTotal, "12")
	reloaded.Set(TrackNumber, "4")
	require.NoError(t, reloaded.Save())

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "4/12", again.Get(TrackNumber))
	assert.Equal(t, "12", again.Get(TrackTotal))
}

func TestWriteField(t *testing.T) {
	path := writeTestFLAC(t, "04.flac")

	require.NoError(t, WriteField(NewAccessor(), path, Album, "Blue Train"))

	ts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Blue Train", ts.Get(Album))
	assert.Equal(t, "", ts.Get(Title))
}

func TestRowAndShortName(t *testing.T) {
	path := writeTestFLAC(t, "05 Blue.flac")

	ts, err := Load(path)
	require.NoError(t, err)
	ts.Set(TrackNumber, "5/9")
	ts.Set(Title, "Blue in Green")
	require.NoError(t, ts.Save())

	ts, err = Load(path)
	require.NoError(t, err)
	row := Row(ts)
	assert.Equal(t, "5", row[TrackNumber])
	assert.Equal(t, "Blue in Green", row[Title])
	assert.Equal(t, "", row[Genre])
	assert.Equal(t, "05 Blue.flac", ShortName(path))
}

func TestProbe(t *testing.T) {
	path := writeTestFLAC(t, "06.flac")

	info, err := Probe(path)
	require.NoError(t, err)
	assert.Equal(t, "FLAC", info.Backend)
	assert.Equal(t, "audio/x-flac", info.MIME)
	assert.Greater(t, info.Size, int64(0))

	_, err = Probe(filepath.Join(t.TempDir(), "missing.flac"))
	assert.Error(t, err)
}
