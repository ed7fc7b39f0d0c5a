package cmd

import (
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
	"github.com/lc-pierce/discogs-metatagger/utils"
)

func newSession(opts ...tracklist.Option) *tracklist.Session {
	opts = append([]tracklist.Option{tracklist.WithTitleCase(cfg.TitleCase)}, opts...)
	return tracklist.NewSession(tags.NewAccessor(), newPrompter(), opts...)
}

// withProgressBar draws one bar per batch write.
func withProgressBar() tracklist.Option {
	var bar *progressbar.ProgressBar
	return tracklist.WithProgress(func(done, total int) {
		if bar == nil {
			bar = progressbar.Default(int64(total), "writing tags")
		}
		_ = bar.Set(done)
		if done == total {
			_ = bar.Finish()
			bar = nil
		}
	})
}

// recursiveFlag returns the --recursive flag when it was given and the
// configured default otherwise.
func recursiveFlag(cmd *cobra.Command, flag bool) bool {
	if cmd.Flags().Changed("recursive") {
		return flag
	}
	return cfg.Recursive
}

// loadFiles expands directories and adds everything to the session. It
// exits when nothing could be loaded.
func loadFiles(session *tracklist.Session, args []string, pattern string, recursive bool) {
	paths, err := utils.ExpandPaths(args, pattern, recursive)
	if err != nil {
		logrus.Fatalf("Failed to find audio files: %v", err)
	}
	paths, rejected := utils.FilterAudioFiles(paths)
	for _, err := range rejected {
		logrus.Warnf("Skipping: %v", err)
	}
	if len(paths) == 0 {
		logrus.Fatal("No FLAC or MP3 files found")
	}

	session.AddFiles(paths)
	if session.FilesState() == tracklist.Empty {
		logrus.Fatal("None of the given files could be loaded")
	}
	logrus.Infof("Loaded %d files", session.Len())
}

func reportBatch(result *tracklist.BatchResult) {
	switch {
	case result == nil || result.Attempted == 0:
		return
	case result.Declined:
		logrus.Infof("Skipped %s", result.Field)
	case len(result.Failed) > 0:
		logrus.Warnf("Wrote %s to %d of %d files", result.Field, result.Written, result.Attempted)
	default:
		logrus.Infof("Wrote %s to %d files", result.Field, result.Written)
	}
}
