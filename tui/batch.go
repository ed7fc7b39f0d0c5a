package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

func (a *App) addFiles(paths []string) tea.Cmd {
	before := a.session.Len()
	a.session.AddFiles(paths)
	a.fileBrowser.ClearSelection()
	a.currentMode = TrackListMode
	a.loadCommonTagsForDraft()
	a.afterAction()

	added := a.session.Len() - before
	if added == 0 {
		return nil
	}
	if strings.HasPrefix(a.statusMessage, IconCross) {
		return nil
	}
	return a.setStatus(fmt.Sprintf("%s Added %d file(s)", IconCheck, added), 2)
}

func (a *App) sortTracks() tea.Cmd {
	if err := a.session.SortByTrackNumber(); err != nil {
		if errors.Is(err, tracklist.ErrTrackNumberNotNumeric) {
			a.setError("One or more fields does not contain a number", "")
		} else {
			a.setError("Sort failed", err.Error())
		}
		return nil
	}
	return a.setStatus(IconCheck+" Sorted by track number", 2)
}

func (a *App) copyTrackNumbers() tea.Cmd {
	result := a.session.CopyTrackNumbers()
	a.afterAction()
	return a.reportResult(result)
}

func (a *App) copyTracklist() tea.Cmd {
	if len(a.session.PendingTitles()) == 0 {
		a.setError("No tracklist loaded", "press f to look up a release")
		return nil
	}
	result := a.session.CopyTracklist()
	a.afterAction()
	if a.currentMode == ConfirmMode {
		return nil
	}
	return a.reportResult(result)
}

func (a *App) sendDraftField(field tags.Field) tea.Cmd {
	if a.session.Draft(field) == "" {
		a.setError(draftLabels[field]+" is empty", "")
		return nil
	}
	if a.session.FilesState() == tracklist.Empty {
		a.setError("No files loaded", "press o to add files")
		return nil
	}
	result := a.session.SendDraftField(field)
	a.afterAction()
	return a.reportResult(result)
}

// sendAllFields queues every non-blank album field. Each field is its own
// batch, so a removal prompt after one field is answered before the next
// field is written.
func (a *App) sendAllFields() tea.Cmd {
	if a.session.FilesState() == tracklist.Empty {
		a.setError("No files loaded", "press o to add files")
		return nil
	}

	a.sendQueue = nil
	for _, field := range tracklist.DraftFields {
		if strings.TrimSpace(a.session.Draft(field)) != "" {
			a.sendQueue = append(a.sendQueue, field)
		}
	}
	if len(a.sendQueue) == 0 {
		a.setError("Album fields are empty", "")
		return nil
	}
	a.sentFields, a.sentWrites = 0, 0
	return a.continueSendAll()
}

// continueSendAll writes queued fields until one of them needs an answer.
func (a *App) continueSendAll() tea.Cmd {
	for len(a.sendQueue) > 0 {
		if a.session.FilesState() == tracklist.Empty {
			a.sendQueue = nil
			break
		}
		field := a.sendQueue[0]
		a.sendQueue = a.sendQueue[1:]

		result := a.session.SendDraftField(field)
		a.sentFields++
		a.sentWrites += result.Written
		a.afterAction()
		if a.currentMode == ConfirmMode {
			return nil
		}
	}
	return a.setStatus(fmt.Sprintf("%s Sent %d album field(s) (%d writes)", IconCheck, a.sentFields, a.sentWrites), 2)
}

func (a *App) writeCell(row int, column, value string) tea.Cmd {
	result, err := a.session.UpdateSingleField(row, column, value)
	if err != nil {
		a.setError("Edit failed", err.Error())
		return nil
	}
	a.afterAction()
	if result.Attempted == 0 {
		return a.setStatus("Empty value ignored", 2)
	}
	return a.reportResult(result)
}

func (a *App) resetSession() tea.Cmd {
	a.session.Reset()
	a.sendQueue = nil
	a.table.Reset()
	a.draft.Reset()
	return a.setStatus("Reset", 2)
}

// reportResult shows the outcome of a batch unless an error is already on
// screen.
func (a *App) reportResult(result *tracklist.BatchResult) tea.Cmd {
	if result == nil || result.Declined || result.Attempted == 0 || len(result.Failed) > 0 {
		return nil
	}
	return a.setStatus(fmt.Sprintf("%s Wrote %s to %d file(s)", IconCheck, result.Field, result.Written), 2)
}

// loadCommonTagsForDraft pre-fills empty album fields with values every
// loaded file already shares.
func (a *App) loadCommonTagsForDraft() {
	for field, value := range commonValues(a.session.Entries()) {
		if a.session.Draft(field) == "" {
			a.session.SetDraft(field, value)
		}
	}
}
