package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lc-pierce/discogs-metatagger/fetcher"
	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

func (a *App) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	// Text entry gets every key, including q and ?.
	if a.currentMode.textInputMode() {
		return a.handleInputKeys(msg)
	}

	switch a.currentMode {
	case ConfirmMode:
		return a.handleConfirmKeys(msg)
	case HelpMode:
		return a.handleHelpKeys(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Help):
		return a.toggleHelp()
	case msg.String() == "esc":
		return a.handleEscape()
	}

	switch a.currentMode {
	case TrackListMode:
		return a.handleTrackListKeys(msg)
	case FileBrowserMode:
		return a.handleFileBrowserKeys(msg)
	case DraftMode:
		return a.handleDraftKeys(msg)
	}

	return nil
}

func (a *App) handleTrackListKeys(msg tea.KeyMsg) tea.Cmd {
	rows := a.session.Len()

	switch {
	case key.Matches(msg, keys.Up):
		a.table.MoveUp()
	case key.Matches(msg, keys.Down):
		a.table.MoveDown(rows)
	case key.Matches(msg, keys.Left):
		a.table.MoveLeft()
	case key.Matches(msg, keys.Right):
		a.table.MoveRight()
	case key.Matches(msg, keys.PageUp):
		a.table.PageUp(10)
	case key.Matches(msg, keys.PageDown):
		a.table.PageDown(10, rows)
	case key.Matches(msg, keys.Tab):
		a.currentMode = DraftMode
	case key.Matches(msg, keys.Open):
		a.currentMode = FileBrowserMode
	case key.Matches(msg, keys.Fetch):
		return a.startLookup()
	case key.Matches(msg, keys.Token):
		a.lookupAfterToken = false
		return a.openInput(TokenInputMode, "Discogs user token", "", true)
	case key.Matches(msg, keys.Reset):
		return a.resetSession()
	}

	if rows == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Sort):
		return a.sortTracks()
	case key.Matches(msg, keys.Number):
		return a.copyTrackNumbers()
	case key.Matches(msg, keys.Titles):
		return a.copyTracklist()
	case key.Matches(msg, keys.SendAll):
		return a.sendAllFields()
	case key.Matches(msg, keys.Edit):
		return a.startCellEdit()
	case key.Matches(msg, keys.Remove):
		a.session.RemoveFiles([]int{a.table.Row()})
		a.afterAction()
	}

	return nil
}

func (a *App) handleFileBrowserKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		a.fileBrowser.MoveUp()
	case key.Matches(msg, keys.Down):
		a.fileBrowser.MoveDown()
	case key.Matches(msg, keys.PageUp):
		a.fileBrowser.PageUp(10)
	case key.Matches(msg, keys.PageDown):
		a.fileBrowser.PageDown(10)
	case key.Matches(msg, keys.Select):
		a.fileBrowser.ToggleSelection()
		return a.setStatus(fmt.Sprintf("Selected: %d file(s)", len(a.fileBrowser.GetSelectedFiles())), 1)
	case key.Matches(msg, keys.SelectAll):
		a.fileBrowser.SelectAll()
		return a.setStatus(fmt.Sprintf("Selected: %d file(s)", len(a.fileBrowser.GetSelectedFiles())), 1)
	case key.Matches(msg, keys.Hidden):
		a.fileBrowser.ToggleHidden()
	case key.Matches(msg, keys.Enter):
		if a.fileBrowser.GetSelectedFile() == nil {
			if err := a.fileBrowser.Navigate(); err != nil {
				a.setError("Navigation failed", err.Error())
			}
			return nil
		}
		paths := a.fileBrowser.GetSelectedFiles()
		if len(paths) == 0 {
			if file := a.fileBrowser.GetSelectedFile(); file != nil {
				paths = []string{file.Path}
			}
		}
		if len(paths) > 0 {
			return a.addFiles(paths)
		}
	case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Open):
		a.currentMode = TrackListMode
	}

	return nil
}

func (a *App) handleDraftKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		a.draft.MoveToPreviousField()
	case key.Matches(msg, keys.Down):
		a.draft.MoveToNextField()
	case key.Matches(msg, keys.Tab):
		a.currentMode = TrackListMode
	case key.Matches(msg, keys.Edit):
		field := a.draft.Current()
		return a.openInput(DraftEditMode, draftLabels[field], a.session.Draft(field), false)
	case key.Matches(msg, keys.SendField):
		return a.sendDraftField(a.draft.Current())
	case key.Matches(msg, keys.SendAll):
		return a.sendAllFields()
	case key.Matches(msg, keys.Fetch):
		return a.startLookup()
	}
	return nil
}

func (a *App) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.cancelInput()
		return nil
	case "enter":
		return a.submitInput(a.input.Value())
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return cmd
}

func (a *App) cancelInput() {
	switch a.currentMode {
	case DraftEditMode:
		a.draft.validationErr = ""
		a.closeInput(DraftMode)
	default:
		a.closeInput(a.previousMode)
	}
	a.lookupAfterToken = false
}

func (a *App) submitInput(value string) tea.Cmd {
	switch a.currentMode {
	case CellEditMode:
		a.closeInput(TrackListMode)
		return a.writeCell(a.table.Row(), a.table.Column(), value)

	case DraftEditMode:
		field := a.draft.Current()
		if err := a.draft.Validate(field, value); err != nil {
			a.setError("Invalid "+draftLabels[field], err.Error())
			return nil
		}
		a.session.SetDraft(field, value)
		a.closeInput(DraftMode)
		a.draft.MoveToNextField()

	case TokenInputMode:
		return a.storeToken(value)

	case URLInputMode:
		a.closeInput(a.previousMode)
		id, err := fetcher.ParseReleaseURL(value)
		if errors.Is(err, fetcher.ErrEmptyInput) {
			return nil
		}
		if err != nil {
			a.setError("Invalid Discogs release URL", err.Error())
			return nil
		}
		return a.fetchRelease(id)
	}
	return nil
}

func (a *App) handleConfirmKeys(msg tea.KeyMsg) tea.Cmd {
	asked := a.confirm
	var cmd tea.Cmd
	switch {
	case key.Matches(msg, keys.Yes):
		a.confirm = nil
		a.currentMode = a.previousMode
		cmd = a.replay(asked)
	case key.Matches(msg, keys.No):
		a.confirm = nil
		a.currentMode = a.previousMode
		cmd = a.setStatus("Cancelled", 2)
	default:
		return nil
	}

	if len(a.sendQueue) > 0 && a.currentMode != ConfirmMode {
		return tea.Batch(cmd, a.continueSendAll())
	}
	return cmd
}

// replay reruns the action behind an approved prompt.
func (a *App) replay(asked *tracklist.Prompt) tea.Cmd {
	if asked == nil {
		return nil
	}

	a.prompter.approve = true
	defer func() { a.prompter.approve = false }()

	switch asked.Kind {
	case tracklist.PromptRemove:
		before := a.session.Len()
		a.session.RemoveFiles(asked.Indices)
		a.afterAction()
		return a.setStatus(fmt.Sprintf("Removed %d file(s)", before-a.session.Len()), 2)
	case tracklist.PromptOverwriteTitles:
		result := a.session.CopyTracklist()
		a.afterAction()
		return a.reportResult(result)
	}
	return nil
}

func (a *App) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	a.currentMode = a.previousMode
	return nil
}

func (a *App) toggleHelp() tea.Cmd {
	if a.currentMode == HelpMode {
		a.currentMode = a.previousMode
	} else {
		a.previousMode = a.currentMode
		a.currentMode = HelpMode
	}
	return nil
}

func (a *App) handleEscape() tea.Cmd {
	if strings.HasPrefix(a.statusMessage, IconCross) {
		a.statusMessage = ""
		return nil
	}

	switch a.currentMode {
	case FileBrowserMode, DraftMode:
		a.currentMode = TrackListMode
	}
	return nil
}

func (a *App) startCellEdit() tea.Cmd {
	column := a.table.Column()
	if _, ok := tags.FieldForColumn(column); !ok {
		a.setError("The filename column cannot be edited", "")
		return nil
	}
	entry, ok := a.session.Entry(a.table.Row())
	if !ok {
		return nil
	}
	return a.openInput(CellEditMode, tags.ColumnHeading(column), entry.Value(column), false)
}
