package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

func (a *App) View() string {
	if !a.layout.IsMinimumSize() {
		return "Terminal too small. Minimum size: 60x20"
	}

	layout := a.layout.Calculate()

	switch a.currentMode {
	case HelpMode:
		return a.renderHelp()
	case ConfirmMode:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.Place(a.layout.WindowWidth, layout.ContentHeight+1, lipgloss.Center, lipgloss.Center, a.renderConfirm()),
			a.renderStatusBar(),
		)
	}

	return a.renderMainView(layout)
}

func (a *App) renderMainView(layout AdaptiveLayout) string {
	height := layout.ContentHeight
	if a.currentMode.textInputMode() {
		height -= 3
	}

	var left string
	if a.currentMode == FileBrowserMode {
		left = a.renderFileBrowser(layout.TablePanelWidth, height)
	} else {
		left = a.renderTrackTable(layout.TablePanelWidth, height)
	}

	mainContent := left
	if layout.ShowSidePanel {
		draftHeight := min(layout.DraftHeight, height/2)
		side := lipgloss.JoinVertical(
			lipgloss.Left,
			a.renderDraftPanel(layout.SidePanelWidth, draftHeight),
			a.renderTitlesPanel(layout.SidePanelWidth, height-draftHeight),
		)
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top, left, side)
	}

	parts := []string{mainContent}
	if a.currentMode.textInputMode() {
		parts = append(parts, a.renderInput(a.layout.WindowWidth))
	}
	parts = append(parts, a.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) panel(width, height int, focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(a.theme.PanelBorder).
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		Padding(0, 1)
	if focused {
		return style.BorderForeground(ColorPrimary)
	}
	return style.BorderForeground(ColorBorder)
}

func (a *App) renderTrackTable(width, height int) string {
	theme := a.theme
	entries := a.session.Entries()
	inner := width - 4

	header := IconMusic + " Tracks"
	if len(entries) > 0 {
		header += fmt.Sprintf(" (%d)", len(entries))
	}
	if a.session.LookupState() == tracklist.LookupLoaded {
		header += "  " + theme.HighlightStyle.Render("release loaded")
	}

	lines := []string{theme.HeaderStyle.Render(header)}

	widths := ColumnWidths(inner)
	var headings []string
	for _, col := range tags.Columns {
		headings = append(headings, theme.ColumnStyle.Render(pad(tags.ColumnHeading(col), widths[col])))
	}
	lines = append(lines, strings.Join(headings, " "))

	bodyHeight := max(height-5, 1)
	if len(entries) == 0 {
		lines = append(lines, "", theme.MutedTextStyle.Render("No files loaded. Press o to add FLAC/MP3 files."))
	}

	start, end := a.table.Window(len(entries), bodyHeight)
	focused := a.currentMode == TrackListMode || a.currentMode == CellEditMode
	for i := start; i < end; i++ {
		e := entries[i]
		rowStyle := theme.EvenRowStyle
		if e.Stripe == tracklist.OddRow {
			rowStyle = theme.OddRowStyle
		}
		if i == a.table.Row() && focused {
			rowStyle = theme.CursorRowStyle
		}

		var cells []string
		for _, col := range tags.Columns {
			cell := pad(e.Value(col), widths[col])
			if i == a.table.Row() && col == a.table.Column() && focused {
				cells = append(cells, theme.CursorCell.Render(cell))
			} else {
				cells = append(cells, rowStyle.Render(cell))
			}
		}
		lines = append(lines, strings.Join(cells, rowStyle.Render(" ")))
	}

	return a.panel(width, height, focused).Render(strings.Join(lines, "\n"))
}

func (a *App) renderFileBrowser(width, height int) string {
	theme := a.theme
	entries := a.fileBrowser.GetEntries()
	selectedIndex := a.fileBrowser.GetSelectedIndex()

	header := IconFolder + " Add files"
	if n := len(a.fileBrowser.GetSelectedFiles()); n > 0 {
		header += fmt.Sprintf(" (%d selected)", n)
	}

	lines := []string{
		theme.HeaderStyle.Render(header),
		theme.MutedTextStyle.Render(truncate(a.fileBrowser.GetCurrentDir(), width-6)),
		Separator(width-6, "─", ColorBorderLight),
	}

	contentHeight := max(height-6, 1)
	startIdx := 0
	if selectedIndex >= contentHeight {
		startIdx = selectedIndex - contentHeight + 1
	}
	endIdx := min(startIdx+contentHeight, len(entries))

	for i := startIdx; i < endIdx; i++ {
		entry := entries[i]

		lineContent := "  "
		if i == selectedIndex {
			lineContent = IconArrowRight + " "
		}

		if entry.IsAudio {
			if a.fileBrowser.IsSelected(entry.Path) {
				lineContent += theme.SuccessStyle.Render("[✓] ")
			} else {
				lineContent += theme.MutedTextStyle.Render("[ ] ")
			}
		}

		icon := IconMusic
		name := entry.Name
		if entry.IsDir {
			icon = IconFolder
			name = theme.HighlightStyle.Render(truncate(name+"/", width-20))
		} else {
			name = theme.NormalTextStyle.Render(truncate(name, width-30)) +
				" " + theme.MutedTextStyle.Render(formatFileSize(entry.Size))
		}
		lineContent += icon + " " + name

		if i == selectedIndex {
			lineContent = theme.SelectedItemStyle.Render(lineContent)
		}
		lines = append(lines, lineContent)
	}

	if len(entries) == 0 {
		lines = append(lines, theme.MutedTextStyle.Render("No FLAC or MP3 files here"))
	}

	return a.panel(width, height, a.currentMode == FileBrowserMode).Render(strings.Join(lines, "\n"))
}

func (a *App) renderDraftPanel(width, height int) string {
	theme := a.theme
	focused := a.currentMode == DraftMode || a.currentMode == DraftEditMode

	lines := []string{theme.HeaderStyle.Render("Album")}
	for i, field := range a.draft.Fields() {
		prefix := "  "
		if focused && i == a.draft.GetEditingField() {
			prefix = IconArrowRight + " "
		}

		value := a.session.Draft(field)
		if value == "" {
			value = theme.MutedTextStyle.Render("(empty)")
		} else {
			value = theme.FieldValueStyle.Render(truncate(value, width-22))
		}
		line := prefix + theme.FieldLabelStyle.Render(draftLabels[field]+":") + " " + value
		if a.currentMode == DraftEditMode && i == a.draft.GetEditingField() {
			line = theme.EditingStyle.Render(prefix+draftLabels[field]+":") + " " + a.input.Value()
		}
		lines = append(lines, line)
	}

	if err := a.draft.GetValidationError(); err != "" {
		lines = append(lines, theme.ErrorStyle.Render(IconCross+" "+err))
	}

	return a.panel(width, height, focused).Render(strings.Join(lines, "\n"))
}

func (a *App) renderTitlesPanel(width, height int) string {
	theme := a.theme
	titles := a.session.PendingTitles()

	lines := []string{theme.HeaderStyle.Render("Tracklist")}
	if len(titles) == 0 {
		lines = append(lines, theme.MutedTextStyle.Render("Press f to look up a release"))
	}

	visible := max(height-4, 1)
	for i, title := range titles {
		if i == visible-1 && len(titles) > visible {
			lines = append(lines, theme.MutedTextStyle.Render(fmt.Sprintf("… %d more", len(titles)-i)))
			break
		}
		style := theme.NormalTextStyle
		if i >= a.session.Len() {
			style = theme.MutedTextStyle
		}
		lines = append(lines, style.Render(truncate(title, width-6)))
	}

	return a.panel(width, height, false).Render(strings.Join(lines, "\n"))
}

func (a *App) renderInput(width int) string {
	label := ""
	switch a.currentMode {
	case CellEditMode:
		label = fmt.Sprintf("Edit %s, row %d", tags.ColumnHeading(a.table.Column()), a.table.Row()+1)
	case DraftEditMode:
		label = "Edit " + draftLabels[a.draft.Current()]
	case URLInputMode:
		label = "Discogs release URL"
	case TokenInputMode:
		label = "Discogs user token"
	}

	content := a.theme.EditingStyle.Render(label+":") + " " + a.input.View()
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, true, false).
		BorderForeground(ColorAccent).
		Width(width).
		Render(content)
}

func (a *App) renderConfirm() string {
	theme := a.theme
	if a.confirm == nil {
		return ""
	}

	lines := []string{
		theme.WarningStyle.Render(IconWarning + " Confirm"),
		"",
		lipgloss.NewStyle().Width(min(a.layout.WindowWidth-12, 70)).Render(a.confirm.Message),
	}
	if len(a.confirm.Paths) > 0 {
		lines = append(lines, "")
		for i, path := range a.confirm.Paths {
			if i == 8 {
				lines = append(lines, theme.MutedTextStyle.Render(fmt.Sprintf("  … %d more", len(a.confirm.Paths)-i)))
				break
			}
			lines = append(lines, theme.MutedTextStyle.Render("  "+tags.ShortName(path)))
		}
	}
	lines = append(lines, "", hint(keys.Yes, theme)+"   "+hint(keys.No, theme))

	return theme.ModalStyle.Render(strings.Join(lines, "\n"))
}

func (a *App) renderStatusBar() string {
	theme := a.theme
	separator := theme.MutedTextStyle.Render(" │ ")

	if a.statusMessage != "" {
		if strings.HasPrefix(a.statusMessage, IconCross) {
			return theme.ErrorStyle.Render(a.statusMessage) + theme.MutedTextStyle.Render(" │ Press ESC to dismiss")
		}
		if strings.HasPrefix(a.statusMessage, IconCheck) {
			return theme.SuccessStyle.Render(a.statusMessage)
		}
		return theme.NormalTextStyle.Render(a.statusMessage)
	}

	var hints []string
	switch a.currentMode {
	case TrackListMode:
		hints = []string{
			hint(keys.Open, theme),
			hint(keys.Fetch, theme),
			hint(keys.Edit, theme),
			hint(keys.Sort, theme),
			hint(keys.Number, theme),
			hint(keys.Titles, theme),
			hint(keys.SendAll, theme),
			hint(keys.Remove, theme),
			hint(keys.Tab, theme),
			hint(keys.Help, theme),
		}
	case FileBrowserMode:
		hints = []string{
			hint(keys.Select, theme),
			hint(keys.SelectAll, theme),
			hint(keys.Enter, theme),
			hint(keys.Hidden, theme),
			KeyHelp("esc", "back", theme),
		}
	case DraftMode:
		hints = []string{
			hint(keys.Edit, theme),
			hint(keys.SendField, theme),
			hint(keys.SendAll, theme),
			hint(keys.Fetch, theme),
			KeyHelp("tab", "tracks", theme),
		}
	case CellEditMode, DraftEditMode, URLInputMode, TokenInputMode:
		hints = []string{
			KeyHelp("enter", "save", theme),
			KeyHelp("esc", "cancel", theme),
		}
	}
	if a.isLoading {
		hints = append([]string{theme.HighlightStyle.Render("looking up…")}, hints...)
	}

	return strings.Join(hints, separator)
}

func (a *App) renderHelp() string {
	return `╔══════════════════════════════════════════════════════════════╗
║                   discogs-metatagger help                    ║
╠══════════════════════════════════════════════════════════════╣
║ Tracks:                                                      ║
║   ↑/↓ ←/→     Move between rows and columns                  ║
║   e, Enter    Edit the cell under the cursor                 ║
║   s           Sort rows by track number                      ║
║   n           Number files by their position                 ║
║   t           Copy the release tracklist into Title          ║
║   a           Send every album field to all files            ║
║   d           Remove the file under the cursor               ║
║   o           Add files                                      ║
║   f           Look up a Discogs release                      ║
║   T           Set the Discogs token                          ║
║   r           Reset everything                               ║
║   Tab         Album fields                                   ║
║                                                              ║
║ Add files:                                                   ║
║   Space       Select file      A   Select all                ║
║   Enter       Open directory / add selection                 ║
║   .           Toggle hidden files                            ║
║                                                              ║
║ Album fields:                                                ║
║   e, Enter    Edit field       s   Send field to all files   ║
║   a           Send all fields                                ║
║                                                              ║
║ Global:                                                      ║
║   ?           Show/hide this help                            ║
║   Esc         Dismiss error / go back                        ║
║   q, Ctrl+C   Quit application                               ║
╚══════════════════════════════════════════════════════════════╝

Press any key to return...`
}
