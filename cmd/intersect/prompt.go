package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/zephyrtronium/intersect"
)

// errAborted means the user interrupted a prompt.
var errAborted = errors.New("aborted")

var formulaPrompts = [2]*survey.Input{
	{Message: "f1(x) =", Help: "Enter first function of x, e.g., 5*x^3 + 2*x"},
	{Message: "f2(x) =", Help: "Enter second function of x, e.g., 3*x^2 - 4*x"},
}

// askOne is survey.AskOne, replaced in tests.
var askOne = survey.AskOne

// askFormulas returns the formulas given as arguments, prompting for any
// that are missing.
func askFormulas(args []string) ([2]string, error) {
	var fs [2]string
	if len(args) > len(fs) {
		return fs, fmt.Errorf("want at most two formulas, got %d", len(args))
	}
	copy(fs[:], args)
	for i := len(args); i < len(fs); i++ {
		err := askOne(formulaPrompts[i], &fs[i], survey.WithValidator(validateFormula))
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return fs, errAborted
			}
			return fs, err
		}
	}
	return fs, nil
}

// validateFormula rejects prompt answers that Solve would reject.
func validateFormula(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("formula must be text, not %T", ans)
	}
	if strings.TrimSpace(s) == "" {
		return errors.New(intersect.StatusEmptyInput)
	}
	if _, err := intersect.Compile(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("%s (%w)", intersect.StatusInvalidSyntax, err)
	}
	return nil
}
