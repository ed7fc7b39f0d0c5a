package tui

import "github.com/lc-pierce/discogs-metatagger/fetcher"

type Mode int

const (
	TrackListMode Mode = iota
	FileBrowserMode
	DraftMode
	CellEditMode
	DraftEditMode
	URLInputMode
	TokenInputMode
	ConfirmMode
	HelpMode
)

func (m Mode) String() string {
	switch m {
	case TrackListMode:
		return "tracks"
	case FileBrowserMode:
		return "files"
	case DraftMode, DraftEditMode:
		return "album"
	case CellEditMode:
		return "edit"
	case URLInputMode:
		return "discogs"
	case TokenInputMode:
		return "token"
	case ConfirmMode:
		return "confirm"
	case HelpMode:
		return "help"
	}
	return "unknown"
}

// textInputMode reports whether keys go to the text input.
func (m Mode) textInputMode() bool {
	switch m {
	case CellEditMode, DraftEditMode, URLInputMode, TokenInputMode:
		return true
	}
	return false
}

type ReleaseFetchedMsg struct {
	ID      int
	Release *fetcher.Release
	Err     error
}

type StatusTickMsg struct {
	id int
}
