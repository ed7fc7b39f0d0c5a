package tags

import (
	"fmt"
	"strings"

	"github.com/go-flac/flacvorbis"
	flac "github.com/go-flac/go-flac"
)

var vorbisKeys = map[Field]string{
	TrackNumber:  flacvorbis.FIELD_TRACKNUMBER,
	Title:        flacvorbis.FIELD_TITLE,
	Artist:       flacvorbis.FIELD_ARTIST,
	AlbumArtist:  "ALBUMARTIST",
	Album:        flacvorbis.FIELD_ALBUM,
	Date:         flacvorbis.FIELD_DATE,
	Genre:        flacvorbis.FIELD_GENRE,
	Organization: flacvorbis.FIELD_ORGANIZATION,
	TrackTotal:   "TRACKTOTAL",
}

type flacTags struct {
	path     string
	file     *flac.File
	comments *flacvorbis.MetaDataBlockVorbisComment
	blockIdx int
}

func openFLAC(path string) (*flacTags, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse FLAC file: %w", err)
	}

	ft := &flacTags{path: path, file: f, blockIdx: -1}
	for idx, block := range f.Meta {
		if block.Type != flac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			return nil, fmt.Errorf("failed to parse vorbis comments: %w", err)
		}
		ft.comments = cmts
		ft.blockIdx = idx
		break
	}
	if ft.comments == nil {
		ft.comments = flacvorbis.New()
	}
	return ft, nil
}

func (ft *flacTags) Path() string {
	return ft.path
}

func (ft *flacTags) Get(field Field) string {
	values := ft.GetMulti(field)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (ft *flacTags) GetMulti(field Field) []string {
	key, ok := vorbisKeys[field]
	if !ok {
		return nil
	}
	var values []string
	for _, cmt := range ft.comments.Comments {
		k, v, found := strings.Cut(cmt, "=")
		if found && strings.EqualFold(k, key) {
			values = append(values, v)
		}
	}
	return values
}

// Set replaces every existing comment for the field with a single value.
func (ft *flacTags) Set(field Field, value string) {
	key, ok := vorbisKeys[field]
	if !ok {
		return
	}
	kept := ft.comments.Comments[:0]
	for _, cmt := range ft.comments.Comments {
		k, _, found := strings.Cut(cmt, "=")
		if found && strings.EqualFold(k, key) {
			continue
		}
		kept = append(kept, cmt)
	}
	ft.comments.Comments = append(kept, key+"="+value)
}

func (ft *flacTags) Save() error {
	block := ft.comments.Marshal()
	if ft.blockIdx >= 0 {
		ft.file.Meta[ft.blockIdx] = &block
	} else {
		ft.file.Meta = append(ft.file.Meta, &block)
		ft.blockIdx = len(ft.file.Meta) - 1
	}
	return ft.file.Save(ft.path)
}
