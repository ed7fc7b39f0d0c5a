package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lc-pierce/discogs-metatagger/tags"
)

var (
	showJSON      bool
	showProbe     bool
	showPattern   string
	showRecursive bool
)

type showRecord struct {
	File  string            `json:"file"`
	Path  string            `json:"path"`
	Tags  map[string]string `json:"tags"`
	Probe *tags.ProbeInfo   `json:"probe,omitempty"`
}

var showCmd = &cobra.Command{
	Use:   "show [files or directories...]",
	Short: "Show the tag rows of FLAC/MP3 files",
	Long: `Loads the files the same way the editor does and prints one row per file.

Examples:
  discogs-metatagger show ./album/
  discogs-metatagger show track01.flac track02.flac --json --probe`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session := newSession()
		loadFiles(session, args, showPattern, recursiveFlag(cmd, showRecursive))

		var records []showRecord
		for _, e := range session.Entries() {
			rec := showRecord{File: tags.ShortName(e.Path), Path: e.Path, Tags: make(map[string]string)}
			for _, f := range tags.Fields {
				rec.Tags[f.String()] = e.Values[f]
			}
			if showProbe {
				info, err := tags.Probe(e.Path)
				if err != nil {
					logrus.Warnf("Failed to probe %s: %v", rec.File, err)
				}
				rec.Probe = info
			}
			records = append(records, rec)
		}

		if showJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(records); err != nil {
				logrus.Fatal(err)
			}
			return
		}

		headings := make([]string, len(tags.Columns))
		for i, col := range tags.Columns {
			headings[i] = tags.ColumnHeading(col)
		}
		table := newTable(os.Stdout, headings...)
		for _, e := range session.Entries() {
			cells := make([]string, len(tags.Columns))
			for i, col := range tags.Columns {
				cells[i] = e.Value(col)
			}
			table.Append(cells)
		}
		table.Render()

		if showProbe {
			fmt.Println()
			table = newTable(os.Stdout, "File", "Backend", "MIME", "Tag Format", "Size")
			for _, rec := range records {
				if rec.Probe == nil {
					continue
				}
				table.Append([]string{rec.File, rec.Probe.Backend, rec.Probe.MIME, rec.Probe.TagFormat, fmt.Sprintf("%d bytes", rec.Probe.Size)})
			}
			table.Render()
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showProbe, "probe", false, "Include detected content type and tag container")
	showCmd.Flags().StringVar(&showPattern, "pattern", "*", "File pattern to match inside directories")
	showCmd.Flags().BoolVar(&showRecursive, "recursive", false, "Search directories recursively")
}
