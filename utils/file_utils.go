package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/h2non/filetype"

	"github.com/lc-pierce/discogs-metatagger/tags"
)

// IsAudioFile reports whether path has an extension a tag backend handles.
func IsAudioFile(path string) bool {
	return tags.DetectFormat(path) != tags.FormatUnknown
}

// FindAudioFiles lists FLAC and MP3 files in dir whose base name matches
// pattern ("*" when empty), sorted by path.
func FindAudioFiles(dir, pattern string, recursive bool) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsAudioFile(path) {
			return nil
		}
		if ok, _ := filepath.Match(pattern, d.Name()); ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}

// ValidateAudioFile checks that path exists and that its content sniffs as
// FLAC or MP3.
func ValidateAudioFile(filePath string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", filePath)
	}

	kind, err := filetype.MatchFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	switch kind.Extension {
	case "flac", "mp3":
		return nil
	}
	return fmt.Errorf("file is not FLAC or MP3: %s", filePath)
}

// FilterAudioFiles keeps the paths that pass ValidateAudioFile, in order,
// and returns the reason for each one it drops.
func FilterAudioFiles(paths []string) ([]string, []error) {
	var valid []string
	var rejected []error
	for _, path := range paths {
		if err := ValidateAudioFile(path); err != nil {
			rejected = append(rejected, err)
			continue
		}
		valid = append(valid, path)
	}
	return valid, rejected
}

// ExpandPaths turns a mix of files and directories into a file list.
// Directories are scanned with FindAudioFiles; files are kept as given so
// the session can report the ones it cannot load.
func ExpandPaths(args []string, pattern string, recursive bool) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			found, err := FindAudioFiles(arg, pattern, recursive)
			if err != nil {
				return nil, err
			}
			out = append(out, found...)
			continue
		}
		out = append(out, arg)
	}
	return out, nil
}
