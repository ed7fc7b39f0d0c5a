package cmd

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"

	"github.com/lc-pierce/discogs-metatagger/tags"
	"github.com/lc-pierce/discogs-metatagger/tracklist"
)

// surveyPrompter answers session prompts on the terminal.
type surveyPrompter struct{}

// newPrompter asks on the terminal unless --yes or assume_yes is set.
func newPrompter() tracklist.Prompter {
	if assumeYes || cfg.AssumeYes {
		return tracklist.AutoPrompter{Answer: true, Notify: warn}
	}
	return &surveyPrompter{}
}

func warn(msg string) {
	logrus.Warn(msg)
}

func (p *surveyPrompter) Confirm(pr tracklist.Prompt) bool {
	ok := false
	prompt := &survey.Confirm{Message: pr.Message, Default: false}
	if len(pr.Paths) > 0 {
		names := make([]string, len(pr.Paths))
		for i, path := range pr.Paths {
			names[i] = tags.ShortName(path)
		}
		prompt.Help = strings.Join(names, "\n")
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		logrus.Warnf("Confirmation aborted: %v", err)
		return false
	}
	return ok
}

func (p *surveyPrompter) Alert(msg string) {
	warn(msg)
}
