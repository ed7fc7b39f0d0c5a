package tracklist

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lc-pierce/discogs-metatagger/tags"
)

func writeFLAC(t *testing.T, dir, name string) string {
	t.Helper()

	streamInfo := make([]byte, 34)
	binary.BigEndian.PutUint16(streamInfo[0:2], 4096)
	binary.BigEndian.PutUint16(streamInfo[2:4], 4096)

	data := []byte("fLaC")
	data = append(data, 0x80, 0x00, 0x00, byte(len(streamInfo)))
	data = append(data, streamInfo...)
	data = append(data, 0xFF, 0xF8, 0x00, 0x00)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeMP3(t *testing.T, dir, name string) string {
	t.Helper()

	data := append([]byte{0xFF, 0xFB, 0x90, 0x64}, make([]byte, 128)...)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func reload(t *testing.T, path string) tags.TagSet {
	t.Helper()
	ts, err := tags.Load(path)
	require.NoError(t, err)
	return ts
}

func TestUpdateAllFieldsSkipsRemovedFiles(t *testing.T) {
	acc := newMemAccessor("a.flac", "b.flac", "c.flac")
	acc.failSave["a.flac"] = true
	p := &scriptedPrompter{Default: true}
	s := newTestSession(acc, p)
	s.AddFiles([]string{"a.flac", "b.flac", "c.flac"})
	s.SetDraft(tags.Album, "Blue Train")
	s.SetDraft(tags.Genre, "Hard Bop")

	results := s.UpdateAllFields()

	require.Len(t, results, 2)
	assert.Equal(t, 3, results[0].Attempted)
	assert.Equal(t, []int{0}, results[0].Failed)
	assert.True(t, results[0].Removed)
	assert.Equal(t, 2, results[1].Attempted)
	assert.True(t, results[1].OK())
	require.Len(t, p.prompts, 1)
	assert.Equal(t, []string{"b.flac", "c.flac"}, s.Paths())
	assert.Equal(t, "Hard Bop", acc.files["c.flac"][tags.Genre])
	assert.Empty(t, acc.files["a.flac"][tags.Genre])
	checkAligned(t, s)
}

func TestUpdateAllFieldsKeptFileIsRetried(t *testing.T) {
	acc := newMemAccessor("a.flac", "b.flac")
	acc.failSave["a.flac"] = true
	p := &scriptedPrompter{Default: false}
	s := newTestSession(acc, p)
	s.AddFiles([]string{"a.flac", "b.flac"})
	s.SetDraft(tags.Album, "Blue Train")
	s.SetDraft(tags.Genre, "Hard Bop")

	results := s.UpdateAllFields()

	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, 2, r.Attempted)
		assert.Equal(t, []int{0}, r.Failed)
		assert.False(t, r.Removed)
	}
	assert.Len(t, p.prompts, 2)
	assert.Equal(t, []string{"a.flac", "b.flac"}, s.Paths())
}

func TestCopyTrackNumbersOverwritesExisting(t *testing.T) {
	acc := newMemAccessor("a.flac", "b.flac", "c.flac").
		with("a.flac", tags.TrackNumber, "7").
		with("b.flac", tags.TrackNumber, "2/9")
	s := newTestSession(acc, &scriptedPrompter{})
	s.AddFiles([]string{"a.flac", "b.flac", "c.flac"})

	result := s.CopyTrackNumbers()

	assert.True(t, result.OK())
	assert.Equal(t, 3, result.Written)
	for i, e := range s.Entries() {
		assert.Equal(t, []string{"1", "2", "3"}[i], e.Values[tags.TrackNumber])
	}
}

func TestSessionWritesAudioFiles(t *testing.T) {
	dir := t.TempDir()
	flacPath := writeFLAC(t, dir, "01.flac")
	mp3Path := writeMP3(t, dir, "02.mp3")

	s := NewSession(tags.NewAccessor(), &scriptedPrompter{}, WithLogger(quietLogger()))
	require.Empty(t, s.AddFiles([]string{flacPath, mp3Path}))

	require.True(t, s.CopyTrackNumbers().OK())
	require.True(t, s.UpdateManyTags(tags.TrackTotal, "2").OK())
	require.True(t, s.UpdateManyTags(tags.Album, "Moanin'").OK())
	result, err := s.UpdateSingleField(1, "#3", "Blues March")
	require.NoError(t, err)
	require.True(t, result.OK())

	flac := reload(t, flacPath)
	assert.Equal(t, "1", flac.Get(tags.TrackNumber))
	assert.Equal(t, "2", flac.Get(tags.TrackTotal))
	assert.Equal(t, "Moanin'", flac.Get(tags.Album))
	assert.Empty(t, flac.Get(tags.Title))

	mp3 := reload(t, mp3Path)
	assert.Equal(t, "2", tags.TrackNumberValue(mp3.Get(tags.TrackNumber)))
	assert.Equal(t, "2", mp3.Get(tags.TrackTotal))
	assert.Equal(t, "Moanin'", mp3.Get(tags.Album))
	assert.Equal(t, "Blues March", mp3.Get(tags.Title))

	entries := s.Entries()
	assert.Equal(t, "2", entries[1].Values[tags.TrackNumber])
	assert.Equal(t, "Blues March", entries[1].Values[tags.Title])
}

func TestAutoPrompter(t *testing.T) {
	acc := newMemAccessor("a.flac", "b.flac")
	var notes []string
	s := NewSession(acc, AutoPrompter{Notify: func(msg string) { notes = append(notes, msg) }}, WithLogger(quietLogger()))

	s.AddFiles([]string{"a.flac", "missing.flac", "b.flac"})
	assert.Equal(t, []string{"Unable to access missing.flac"}, notes)

	assert.False(t, s.RemoveFiles([]int{0}))
	assert.Len(t, s.Entries(), 2)

	yes := NewSession(acc, AutoPrompter{Answer: true}, WithLogger(quietLogger()))
	yes.AddFiles([]string{"a.flac", "missing.flac", "b.flac"})
	assert.True(t, yes.RemoveFiles([]int{0}))
	assert.Equal(t, []string{"b.flac"}, yes.Paths())
}
