package cmd

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

var (
	editColumn string
	editValue  string
	editSet    []string
)

// fieldFlags maps flag names to the fields they set. Shared by edit and batch.
var fieldFlags = []struct {
	name  string
	field tags.Field
	usage string
}{
	{"track", tags.TrackNumber, "Set track number"},
	{"title", tags.Title, "Set title"},
	{"artist", tags.Artist, "Set artist"},
	{"album-artist", tags.AlbumArtist, "Set album artist"},
	{"album", tags.Album, "Set album"},
	{"date", tags.Date, "Set year"},
	{"genre", tags.Genre, "Set genre"},
	{"label", tags.Organization, "Set label (organization)"},
	{"total", tags.TrackTotal, "Set track total"},
}

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edit the tags of one file",
	Long: `Edit one FLAC or MP3 file, either by table column or by field flags.

Columns: #1 track, #3 title, #4 artist, #5 album artist, #6 album,
#7 year, #8 genre, #9 label. #2 is the filename and cannot be written.

Examples:
  discogs-metatagger edit song.flac --column "#6" --value "Kind of Blue"
  discogs-metatagger edit song.mp3 --title "So What" --track 1 --total 5
  discogs-metatagger edit song.flac --set AlbumArtist="Miles Davis" --set Organization=Columbia`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session := newSession()
		if failed := session.AddFiles(args); len(failed) > 0 {
			logrus.Fatalf("Unable to access %s", failed[0])
		}

		edited := 0
		if cmd.Flags().Changed("column") {
			result, err := session.UpdateSingleField(0, editColumn, editValue)
			if err != nil {
				logrus.Fatal(err)
			}
			checkEdit(result)
			edited++
		}

		for _, ff := range fieldFlags {
			if !cmd.Flags().Changed(ff.name) {
				continue
			}
			value, _ := cmd.Flags().GetString(ff.name)
			checkEdit(session.UpdateManyTags(ff.field, value))
			edited++
		}

		for _, assignment := range editSet {
			field, value, err := parseAssignment(assignment)
			if err != nil {
				logrus.Fatal(err)
			}
			checkEdit(session.UpdateManyTags(field, value))
			edited++
		}

		if edited == 0 {
			logrus.Info("No changes requested (use --column/--value, --set or a field flag)")
			return
		}

		logrus.Infof("Successfully updated tags for %s", tags.ShortName(args[0]))
	},
}

// parseAssignment splits "Field=value" and resolves the field by name.
func parseAssignment(s string) (tags.Field, string, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, "", fmt.Errorf("invalid assignment %q (want Field=value)", s)
	}
	field, err := tags.ParseField(name)
	if err != nil {
		return 0, "", err
	}
	return field, value, nil
}

func checkEdit(result *tracklist.BatchResult) {
	if len(result.Failed) > 0 {
		logrus.Fatalf("Failed to write %s", result.Field)
	}
	if result.Attempted == 0 {
		logrus.Warnf("Empty value for %s ignored", result.Field)
	}
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVar(&editColumn, "column", "", `Table column to write ("#1", "#3".."#9")`)
	editCmd.Flags().StringVar(&editValue, "value", "", "Value for --column")
	editCmd.Flags().StringArrayVar(&editSet, "set", nil, "Set a field by name, e.g. --set TrackTotal=12 (repeatable)")
	for _, ff := range fieldFlags {
		editCmd.Flags().String(ff.name, "", ff.usage)
	}
}
