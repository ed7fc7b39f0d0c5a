package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lc-pierce/discogs-metatagger/tags"
)

var (
	batchDir       string
	batchPattern   string
	batchRecursive bool
	batchNumber    bool
	batchSort      bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [files or directories...]",
	Short: "Write shared tags to many files",
	Long: `Load a set of FLAC/MP3 files and write album-level fields to all of them.

Examples:
  discogs-metatagger batch ./album/ --artist "Miles Davis" --album "Kind of Blue" --date 1959
  discogs-metatagger batch --dir ./album/ --sort --number
  discogs-metatagger batch ./album/ --pattern "*.flac" --recursive --genre Jazz`,
	Run: func(cmd *cobra.Command, args []string) {
		if batchDir != "" {
			args = append(args, batchDir)
		}
		if len(args) == 0 {
			logrus.Fatal("No files given (pass files, directories or --dir)")
		}

		session := newSession(withProgressBar())
		loadFiles(session, args, batchPattern, recursiveFlag(cmd, batchRecursive))

		if batchSort {
			if err := session.SortByTrackNumber(); err != nil {
				logrus.Fatalf("Failed to sort: %v", err)
			}
			logrus.Info("Sorted files by track number")
		}

		for _, ff := range fieldFlags {
			if ff.field == tags.TrackNumber || ff.field == tags.Title {
				continue
			}
			if value, _ := cmd.Flags().GetString(ff.name); value != "" {
				session.SetDraft(ff.field, value)
			}
		}

		results := session.UpdateAllFields()
		for _, result := range results {
			reportBatch(result)
		}

		if batchNumber {
			reportBatch(session.CopyTrackNumbers())
		}

		if len(results) == 0 && !batchNumber {
			logrus.Info("No action flags provided (use field flags and/or --number)")
			return
		}

		logrus.Infof("Batch complete: %d files", session.Len())
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchDir, "dir", "", "Directory containing FLAC/MP3 files")
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "*", "File pattern to match inside directories")
	batchCmd.Flags().BoolVar(&batchRecursive, "recursive", false, "Search recursively in subdirectories")
	batchCmd.Flags().BoolVar(&batchNumber, "number", false, "Number tracks by their position")
	batchCmd.Flags().BoolVar(&batchSort, "sort", false, "Sort by existing track numbers first")
	for _, ff := range fieldFlags {
		if ff.field == tags.TrackNumber || ff.field == tags.Title {
			continue
		}
		batchCmd.Flags().String(ff.name, "", ff.usage+" on every file")
	}
}
