package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lc-pierce/discogs-metatagger/utils"
)

type FileBrowser struct {
	currentDir    string
	entries       []FileEntry
	selectedIndex int
	selectedFiles map[string]bool
	showHidden    bool
}

type FileEntry struct {
	Name    string
	Path    string
	IsDir   bool
	Size    int64
	IsAudio bool
}

func NewFileBrowser(startDir string) *FileBrowser {
	absDir, err := filepath.Abs(startDir)
	if err != nil || absDir == "" {
		absDir = startDir
	}
	absDir = filepath.Clean(absDir)

	fb := &FileBrowser{
		currentDir:    absDir,
		entries:       make([]FileEntry, 0),
		selectedFiles: make(map[string]bool),
	}
	fb.LoadDirectory()
	return fb
}

// LoadDirectory lists subdirectories and FLAC/MP3 files of the current
// directory, directories first.
func (fb *FileBrowser) LoadDirectory() error {
	items, err := os.ReadDir(fb.currentDir)
	if err != nil {
		return err
	}

	fb.entries = make([]FileEntry, 0)

	parentDir := filepath.Dir(fb.currentDir)
	if parentDir != fb.currentDir {
		fb.entries = append(fb.entries, FileEntry{
			Name:  "..",
			Path:  parentDir,
			IsDir: true,
		})
	}

	for _, item := range items {
		if !fb.showHidden && strings.HasPrefix(item.Name(), ".") {
			continue
		}

		fullPath := filepath.Join(fb.currentDir, item.Name())
		info, err := item.Info()
		if err != nil {
			continue
		}

		entry := FileEntry{
			Name:    item.Name(),
			Path:    fullPath,
			IsDir:   item.IsDir(),
			Size:    info.Size(),
			IsAudio: !item.IsDir() && utils.IsAudioFile(item.Name()),
		}

		if entry.IsDir || entry.IsAudio {
			fb.entries = append(fb.entries, entry)
		}
	}

	sort.SliceStable(fb.entries, func(i, j int) bool {
		if fb.entries[i].Name == ".." || fb.entries[j].Name == ".." {
			return fb.entries[i].Name == ".."
		}
		if fb.entries[i].IsDir != fb.entries[j].IsDir {
			return fb.entries[i].IsDir
		}
		return strings.ToLower(fb.entries[i].Name) < strings.ToLower(fb.entries[j].Name)
	})

	if fb.selectedIndex >= len(fb.entries) {
		fb.selectedIndex = max(len(fb.entries)-1, 0)
	}
	return nil
}

// Navigate enters the directory under the cursor. It does nothing on files.
func (fb *FileBrowser) Navigate() error {
	if len(fb.entries) == 0 {
		return nil
	}

	selected := fb.entries[fb.selectedIndex]
	if !selected.IsDir {
		return nil
	}

	previous := fb.currentDir
	fb.currentDir = selected.Path
	fb.selectedIndex = 0
	if err := fb.LoadDirectory(); err != nil {
		fb.currentDir = previous
		fb.LoadDirectory()
		return err
	}
	return nil
}

func (fb *FileBrowser) GetSelectedFile() *FileEntry {
	if fb.selectedIndex >= len(fb.entries) || len(fb.entries) == 0 {
		return nil
	}

	selected := &fb.entries[fb.selectedIndex]
	if selected.IsAudio {
		return selected
	}

	return nil
}

func (fb *FileBrowser) ToggleSelection() {
	file := fb.GetSelectedFile()
	if file == nil {
		return
	}
	if fb.selectedFiles[file.Path] {
		delete(fb.selectedFiles, file.Path)
	} else {
		fb.selectedFiles[file.Path] = true
	}
}

// SelectAll marks every audio file in the current directory.
func (fb *FileBrowser) SelectAll() {
	for _, e := range fb.entries {
		if e.IsAudio {
			fb.selectedFiles[e.Path] = true
		}
	}
}

// GetSelectedFiles returns the marked files sorted by path.
func (fb *FileBrowser) GetSelectedFiles() []string {
	files := make([]string, 0, len(fb.selectedFiles))
	for path := range fb.selectedFiles {
		files = append(files, path)
	}
	sort.Strings(files)
	return files
}

func (fb *FileBrowser) ClearSelection() {
	fb.selectedFiles = make(map[string]bool)
}

func (fb *FileBrowser) MoveUp() {
	if fb.selectedIndex > 0 {
		fb.selectedIndex--
	}
}

func (fb *FileBrowser) MoveDown() {
	if fb.selectedIndex < len(fb.entries)-1 {
		fb.selectedIndex++
	}
}

func (fb *FileBrowser) PageUp(pageSize int) {
	fb.selectedIndex -= pageSize
	if fb.selectedIndex < 0 {
		fb.selectedIndex = 0
	}
}

func (fb *FileBrowser) PageDown(pageSize int) {
	fb.selectedIndex += pageSize
	if fb.selectedIndex >= len(fb.entries) {
		fb.selectedIndex = len(fb.entries) - 1
	}
	if fb.selectedIndex < 0 {
		fb.selectedIndex = 0
	}
}

func (fb *FileBrowser) GetCurrentDir() string {
	return fb.currentDir
}

func (fb *FileBrowser) GetEntries() []FileEntry {
	return fb.entries
}

func (fb *FileBrowser) GetSelectedIndex() int {
	return fb.selectedIndex
}

func (fb *FileBrowser) ToggleHidden() {
	fb.showHidden = !fb.showHidden
	fb.LoadDirectory()
}

func (fb *FileBrowser) IsSelected(path string) bool {
	return fb.selectedFiles[path]
}
