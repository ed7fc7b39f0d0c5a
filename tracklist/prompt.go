package tracklist

type PromptKind int

const (
	// PromptRemove asks whether inaccessible files should leave the session.
	PromptRemove PromptKind = iota
	// PromptOverwriteTitles guards CopyTracklist, which rewrites every Title.
	PromptOverwriteTitles
)

const (
	removeMessage = "Inaccessible files were found in the files list. Would you like to remove these files from the program?"

	overwriteTitlesMessage = "This action will copy the track titles to the listed files in the order shown. " +
		"Before proceeding, make sure the tracks are in correct order. " +
		"Track numbers can be edited directly and the list can be sorted by track number. Proceed?"
)

// Prompt is a yes/no question the session needs answered before mutating.
type Prompt struct {
	Kind    PromptKind
	Message string
	// Indices and Paths describe the affected entries for PromptRemove.
	Indices []int
	Paths   []string
}

// Prompter is the user-facing side of a session: confirmations for
// destructive steps and per-file alerts.
type Prompter interface {
	Confirm(p Prompt) bool
	Alert(msg string)
}

// AutoPrompter answers every prompt with Answer. Alerts go to Notify when
// it is set and are dropped otherwise.
type AutoPrompter struct {
	Answer bool
	Notify func(msg string)
}

func (p AutoPrompter) Confirm(Prompt) bool {
	return p.Answer
}

func (p AutoPrompter) Alert(msg string) {
	if p.Notify != nil {
		p.Notify(msg)
	}
}
