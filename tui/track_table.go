package tui

import (
	"github.com/lc-pierce/discogs-metatagger/tags"
)

// TrackTable is the cursor over the session's rows and columns.
type TrackTable struct {
	row    int
	col    int
	offset int
}

// columnWeights share the width left over after the fixed columns.
var columnWeights = map[string]int{
	"#2": 4,
	"#3": 4,
	"#4": 3,
	"#5": 3,
	"#6": 3,
	"#8": 2,
	"#9": 2,
}

var fixedColumnWidths = map[string]int{
	"#1": 4,
	"#7": 6,
}

func NewTrackTable() *TrackTable {
	return &TrackTable{col: 2}
}

func (tt *TrackTable) Row() int {
	return tt.row
}

func (tt *TrackTable) Column() string {
	return tags.Columns[tt.col]
}

func (tt *TrackTable) MoveUp() {
	if tt.row > 0 {
		tt.row--
	}
}

func (tt *TrackTable) MoveDown(rows int) {
	if tt.row < rows-1 {
		tt.row++
	}
}

func (tt *TrackTable) MoveLeft() {
	if tt.col > 0 {
		tt.col--
	}
}

func (tt *TrackTable) MoveRight() {
	if tt.col < len(tags.Columns)-1 {
		tt.col++
	}
}

func (tt *TrackTable) PageUp(pageSize int) {
	tt.row = max(tt.row-pageSize, 0)
}

func (tt *TrackTable) PageDown(pageSize, rows int) {
	tt.row = max(min(tt.row+pageSize, rows-1), 0)
}

// Clamp keeps the cursor inside a table of the given size.
func (tt *TrackTable) Clamp(rows int) {
	if tt.row >= rows {
		tt.row = rows - 1
	}
	if tt.row < 0 {
		tt.row = 0
	}
}

func (tt *TrackTable) Reset() {
	tt.row = 0
	tt.offset = 0
}

// Window returns the first and one-past-last rows to draw so the cursor
// stays visible.
func (tt *TrackTable) Window(rows, height int) (int, int) {
	height = max(height, 1)
	if tt.row < tt.offset {
		tt.offset = tt.row
	}
	if tt.row >= tt.offset+height {
		tt.offset = tt.row - height + 1
	}
	if tt.offset > max(rows-height, 0) {
		tt.offset = max(rows-height, 0)
	}
	return tt.offset, min(tt.offset+height, rows)
}

// ColumnWidths fits tags.Columns into width cells with one space between
// columns.
func ColumnWidths(width int) map[string]int {
	widths := make(map[string]int, len(tags.Columns))
	remaining := width - (len(tags.Columns) - 1)
	totalWeight := 0
	for _, col := range tags.Columns {
		if w, ok := fixedColumnWidths[col]; ok {
			widths[col] = w
			remaining -= w
			continue
		}
		totalWeight += columnWeights[col]
	}
	remaining = max(remaining, totalWeight*3)
	for _, col := range tags.Columns {
		if weight, ok := columnWeights[col]; ok {
			widths[col] = remaining * weight / totalWeight
		}
	}
	return widths
}
