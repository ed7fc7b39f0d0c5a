package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lc-pierce/discogs-metatagger/fetcher"
	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

// startLookup asks for a token first when none is configured.
func (a *App) startLookup() tea.Cmd {
	if a.session.LookupState() == tracklist.LookupLoaded {
		a.setError("Reset window before attempting to load new data", "press r")
		return nil
	}
	if a.isLoading {
		return a.setStatus("Lookup already running", 2)
	}
	if !a.config.HasToken() {
		a.lookupAfterToken = true
		return a.openInput(TokenInputMode, "Discogs user token", "", true)
	}
	return a.openInput(URLInputMode, "https://www.discogs.com/release/...", "", false)
}

func (a *App) storeToken(value string) tea.Cmd {
	a.closeInput(a.previousMode)
	token := strings.TrimSpace(value)
	if token == "" {
		a.lookupAfterToken = false
		return nil
	}

	a.config.DiscogsToken = token
	var status tea.Cmd
	if err := a.saveConfig(a.config); err != nil {
		a.log.WithError(err).Warn("failed to save discogs token")
		a.setError("Token kept for this session only", err.Error())
	} else {
		status = a.setStatus(IconCheck+" Discogs token saved", 2)
	}

	if a.lookupAfterToken {
		a.lookupAfterToken = false
		return tea.Batch(status, a.openInput(URLInputMode, "https://www.discogs.com/release/...", "", false))
	}
	return status
}

// fetchRelease runs the lookup off the update loop; the result comes back
// as a ReleaseFetchedMsg.
func (a *App) fetchRelease(id int) tea.Cmd {
	rf := a.newFetcher(a.config.DiscogsToken)
	a.isLoading = true
	status := a.setStatus(fmt.Sprintf("Looking up release %d...", id), 30)

	return tea.Batch(status, func() tea.Msg {
		release, err := rf.Fetch(context.Background(), id)
		return ReleaseFetchedMsg{ID: id, Release: release, Err: err}
	})
}

func (a *App) applyRelease(msg ReleaseFetchedMsg) tea.Cmd {
	a.isLoading = false

	if msg.Err != nil {
		a.log.WithError(msg.Err).Warnf("lookup of release %d failed", msg.ID)
		a.setError(fetcher.UserMessage(msg.Err), "")
		return nil
	}

	if err := a.session.ApplyRelease(msg.Release); err != nil {
		if errors.Is(err, tracklist.ErrLookupAlreadyLoaded) {
			a.setError("Reset window before attempting to load new data", "")
		} else {
			a.setError("Failed to apply release", err.Error())
		}
		return nil
	}

	return a.setStatus(fmt.Sprintf("%s Loaded %s - %s (%d tracks)", IconCheck,
		a.session.Draft(tags.Artist), a.session.Draft(tags.Album), len(msg.Release.Tracks)), 3)
}
