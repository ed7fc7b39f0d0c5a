package tui

type Layout struct {
	WindowWidth  int
	WindowHeight int
	Breakpoints  LayoutBreakpoints
}

type LayoutBreakpoints struct {
	MinWidth      int
	MinHeight     int
	SideBySideMin int
}

type AdaptiveLayout struct {
	TablePanelWidth int
	SidePanelWidth  int
	ContentHeight   int
	DraftHeight     int
	TitlesHeight    int
	ShowSidePanel   bool
}

func NewLayout() *Layout {
	return &Layout{
		Breakpoints: LayoutBreakpoints{
			MinWidth:      60,
			MinHeight:     20,
			SideBySideMin: 110,
		},
	}
}

func (l *Layout) Update(width, height int) {
	l.WindowWidth = width
	l.WindowHeight = height
}

// Calculate splits the window into the track table and a side column with
// the album draft over the pending titles. Narrow windows drop the side
// column.
func (l *Layout) Calculate() AdaptiveLayout {
	contentHeight := l.WindowHeight - 3

	sideWidth := 0
	if l.WindowWidth >= l.Breakpoints.SideBySideMin {
		sideWidth = min(max(l.WindowWidth/3, 36), 56)
	}
	tableWidth := l.WindowWidth - sideWidth

	draftHeight := min(len(draftLabels)+5, contentHeight/2)

	return AdaptiveLayout{
		TablePanelWidth: tableWidth,
		SidePanelWidth:  sideWidth,
		ContentHeight:   contentHeight,
		DraftHeight:     draftHeight,
		TitlesHeight:    contentHeight - draftHeight,
		ShowSidePanel:   sideWidth > 0,
	}
}

func (l *Layout) IsMinimumSize() bool {
	return l.WindowWidth >= l.Breakpoints.MinWidth &&
		l.WindowHeight >= l.Breakpoints.MinHeight
}
