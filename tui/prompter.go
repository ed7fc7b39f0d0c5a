package tui

import "github.com/lc-pierce/discogs-metatagger/tracklist"

// modalPrompter answers session prompts in two passes. The first call
// records the question and declines; once the user says yes in the modal
// the action is replayed with approve set, and that Confirm returns true.
type modalPrompter struct {
	approve bool
	asked   *tracklist.Prompt
	alerts  []string
}

func (p *modalPrompter) Confirm(pr tracklist.Prompt) bool {
	if p.approve {
		p.approve = false
		return true
	}
	// Declined removals change nothing, so indices from an earlier batch in
	// the same action still point at the same entries.
	if p.asked != nil && p.asked.Kind == tracklist.PromptRemove && pr.Kind == tracklist.PromptRemove {
		p.asked = mergeRemoval(p.asked, &pr)
		return false
	}
	asked := pr
	p.asked = &asked
	return false
}

func mergeRemoval(a, b *tracklist.Prompt) *tracklist.Prompt {
	merged := &tracklist.Prompt{Kind: a.Kind, Message: a.Message}
	seen := make(map[int]bool)
	add := func(p *tracklist.Prompt) {
		for i, idx := range p.Indices {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			merged.Indices = append(merged.Indices, idx)
			if i < len(p.Paths) {
				merged.Paths = append(merged.Paths, p.Paths[i])
			}
		}
	}
	add(a)
	add(b)
	return merged
}

func (p *modalPrompter) Alert(msg string) {
	p.alerts = append(p.alerts, msg)
}

// takePrompt returns and clears the pending question.
func (p *modalPrompter) takePrompt() *tracklist.Prompt {
	asked := p.asked
	p.asked = nil
	return asked
}

func (p *modalPrompter) takeAlerts() []string {
	alerts := p.alerts
	p.alerts = nil
	return alerts
}
