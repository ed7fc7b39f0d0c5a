package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lc-pierce/discogs-metatagger/config"
	"github.com/lc-pierce/discogs-metatagger/fetcher"
	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	saved, savedYes := cfg, assumeYes
	cfg = c
	t.Cleanup(func() {
		cfg, assumeYes = saved, savedYes
	})
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer

	table := newTable(&buf, "#", "Album Artist", "Title")
	table.Append([]string{"1", "Miles Davis", "So What"})
	table.Append([]string{"2", "Miles Davis", "Freddie Freeloader"})
	table.Render()

	out := buf.String()
	assert.Contains(t, out, "Album Artist")
	assert.NotContains(t, out, "ALBUM ARTIST")
	assert.Contains(t, out, "Freddie Freeloader")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.Index(lines[len(lines)-1], "Freddie") == strings.Index(lines[len(lines)-2], "So What"),
		"title column is aligned")
}

func TestPrintDraft(t *testing.T) {
	withConfig(t, config.DefaultConfig())

	session := newSession()
	require.NoError(t, session.ApplyRelease(&fetcher.Release{
		Title:   "kind of blue",
		Artists: []string{"miles davis"},
		Labels:  []string{"columbia"},
		Year:    1959,
		Tracks:  []string{"so what", "blue in green"},
	}))

	var buf bytes.Buffer
	printDraft(&buf, session)

	out := buf.String()
	assert.Contains(t, out, "Field")
	assert.Contains(t, out, "Kind Of Blue")
	assert.Contains(t, out, "Organization")
	assert.Contains(t, out, "1959")
	assert.Contains(t, out, "1. So What\n2. Blue In Green\n")
}

func TestRecursiveFlag(t *testing.T) {
	tests := []struct {
		name       string
		configured bool
		flag       string
		want       bool
	}{
		{"config default on", true, "", true},
		{"config default off", false, "", false},
		{"flag turns recursion off", true, "false", false},
		{"flag turns recursion on", false, "true", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.DefaultConfig()
			c.Recursive = tt.configured
			withConfig(t, c)

			var recursive bool
			command := &cobra.Command{Use: "test"}
			command.Flags().BoolVar(&recursive, "recursive", false, "")
			if tt.flag != "" {
				require.NoError(t, command.Flags().Set("recursive", tt.flag))
			}

			assert.Equal(t, tt.want, recursiveFlag(command, recursive))
		})
	}
}

func TestNewPrompter(t *testing.T) {
	withConfig(t, config.DefaultConfig())

	assumeYes = false
	assert.IsType(t, &surveyPrompter{}, newPrompter())

	assumeYes = true
	p := newPrompter()
	require.IsType(t, tracklist.AutoPrompter{}, p)
	assert.True(t, p.Confirm(tracklist.Prompt{Kind: tracklist.PromptOverwriteTitles}))

	assumeYes = false
	cfg.AssumeYes = true
	assert.IsType(t, tracklist.AutoPrompter{}, newPrompter())
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in        string
		wantField tags.Field
		wantValue string
		wantErr   bool
	}{
		{"AlbumArtist=Miles Davis", tags.AlbumArtist, "Miles Davis", false},
		{"tracktotal=12", tags.TrackTotal, "12", false},
		{"Title=a=b", tags.Title, "a=b", false},
		{"Genre=", tags.Genre, "", false},
		{"Composer=Bill Evans", 0, "", true},
		{"Album", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			field, value, err := parseAssignment(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
