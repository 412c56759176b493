package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// confirmOverwrite asks whether an existing gitignore file should be
// overwritten.
func confirmOverwrite(path string) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("File '%s' already exists. Overwrite it?", path),
		Default: false,
	}
	var overwrite bool
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return overwrite, nil
}

// confirmReplace asks whether an existing template section should be
// replaced.
func confirmReplace(name string) (bool, error) {
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Template '%s' already exists in the gitignore file. Replace it?", name),
		Default: true,
	}
	var replace bool
	if err := survey.AskOne(prompt, &replace); err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return replace, nil
}
