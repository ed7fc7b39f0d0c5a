package tags

import (
	"fmt"
	"io"
	"os"

	"github.com/dhowden/tag"
	"github.com/h2non/filetype"
)

// ProbeInfo is a read-only technical summary of a file, independent of the
// writable TagSet backends.
type ProbeInfo struct {
	Path      string `json:"path"`
	Backend   string `json:"backend"`
	MIME      string `json:"mime,omitempty"`
	TagFormat string `json:"tagFormat,omitempty"`
	FileType  string `json:"fileType,omitempty"`
	Size      int64  `json:"size"`
}

// Probe sniffs the file's content type and tag container. A file without a
// readable tag still yields its MIME type.
func Probe(path string) (*ProbeInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	info := &ProbeInfo{Path: path, Backend: DetectFormat(path).String()}
	if st, err := f.Stat(); err == nil {
		info.Size = st.Size()
	}

	head := make([]byte, 261)
	n, _ := f.Read(head)
	if kind, err := filetype.Match(head[:n]); err == nil && kind.MIME.Value != "" {
		info.MIME = kind.MIME.Value
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return info, nil
	}
	if m, err := tag.ReadFrom(f); err == nil {
		info.TagFormat = string(m.Format())
		info.FileType = string(m.FileType())
	}
	return info, nil
}
