// Package cli holds the terminal prompts used by sortbench's interactive mode.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

var (
	ErrEmptyInput = errors.New("you must enter something")
	ErrOutOfRange = errors.New("value out of range")
)

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptInt asks for an integer in [lo, hi], offering dflt as the default.
// Underscores may be used as digit separators.
func PromptInt(label string, dflt, lo, hi int64) (int64, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.FormatInt(dflt, 10),
		Validate: intValidator(lo, hi),
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return parseInt(txt, lo, hi)
}

func intValidator(lo, hi int64) promptui.ValidateFunc {
	return func(s string) error {
		_, err := parseInt(s, lo, hi)

		return err
	}
}

func parseInt(s string, lo, hi int64) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	if s == "" {
		return 0, ErrEmptyInput
	}

	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	if val < lo || val > hi {
		return 0, fmt.Errorf("%w: %d is not in [%d, %d]", ErrOutOfRange, val, lo, hi)
	}

	return val, nil
}
