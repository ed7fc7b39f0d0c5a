package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lc-pierce/discogs-metatagger/fetcher"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

var (
	fetchApply     bool
	fetchNumber    bool
	fetchSort      bool
	fetchPattern   string
	fetchRecursive bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [release url] [files or directories...]",
	Short: "Look up a Discogs release and optionally tag files with it",
	Long: `Look up a release on Discogs and print the album fields and tracklist it
would write. With --apply the given files receive the album fields and the
titles in list order.

Examples:
  discogs-metatagger fetch https://www.discogs.com/release/249504-Rick-Astley-Never-Gonna-Give-You-Up
  discogs-metatagger fetch https://www.discogs.com/release/249504 ./album/ --apply --sort --number`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !cfg.HasToken() {
			logrus.Fatal("No Discogs token configured (run: discogs-metatagger config set-token)")
		}

		id, err := fetcher.ParseReleaseURL(args[0])
		if err != nil {
			logrus.Fatalf("Invalid release URL: %v", err)
		}

		rf := fetcher.NewReleaseFetcher(cfg.DiscogsToken, cfg.UserAgent, cfg.Timeout())
		release, err := rf.Fetch(cmd.Context(), id)
		if err != nil {
			logrus.Fatal(fetcher.UserMessage(err))
		}

		session := newSession(withProgressBar())
		if err := session.ApplyRelease(release); err != nil {
			logrus.Fatal(err)
		}
		printDraft(os.Stdout, session)

		if !fetchApply {
			return
		}
		if len(args) < 2 {
			logrus.Fatal("--apply needs files or directories to tag")
		}

		loadFiles(session, args[1:], fetchPattern, recursiveFlag(cmd, fetchRecursive))
		if fetchSort {
			if err := session.SortByTrackNumber(); err != nil {
				logrus.Warnf("Not sorted: %v", err)
			}
		}
		if n, want := session.Len(), len(session.PendingTitles()); n != want {
			logrus.Warnf("Release has %d tracks but %d files are loaded", want, n)
		}

		for _, result := range session.UpdateAllFields() {
			reportBatch(result)
		}
		reportBatch(session.CopyTracklist())
		if fetchNumber {
			reportBatch(session.CopyTrackNumbers())
		}
	},
}

func printDraft(w io.Writer, session *tracklist.Session) {
	table := newTable(w, "Field", "Value")
	for _, f := range tracklist.DraftFields {
		table.Append([]string{f.String(), session.Draft(f)})
	}
	table.Render()

	fmt.Fprintln(w)
	for _, title := range session.PendingTitles() {
		fmt.Fprintln(w, title)
	}
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().BoolVar(&fetchApply, "apply", false, "Write the release to the given files")
	fetchCmd.Flags().BoolVar(&fetchNumber, "number", false, "Also number tracks by position")
	fetchCmd.Flags().BoolVar(&fetchSort, "sort", false, "Sort files by existing track numbers before writing titles")
	fetchCmd.Flags().StringVar(&fetchPattern, "pattern", "*", "File pattern to match inside directories")
	fetchCmd.Flags().BoolVar(&fetchRecursive, "recursive", false, "Search directories recursively")
}
