package cli

import (
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
)

const doneItem = "[Done]"

// Select asks the user to pick one of choices and returns it.
func Select(label string, choices ...string) (string, error) {
	sel := &promptui.Select{
		Label:    label,
		Items:    choices,
		Searcher: prefixSearcher(choices, false),
	}

	_, value, err := sel.Run()

	return value, err
}

// MultiSelect lets the user pick choices one at a time until they choose
// [Done] or nothing is left. The result keeps the order of choices, not the
// order of picking. Picking [Done] straight away returns nil.
func MultiSelect(label string, choices ...string) ([]string, error) {
	remaining := dedupe(choices)
	picked := make(map[string]bool, len(remaining))

	for len(remaining) > 0 {
		items := append([]string{doneItem}, remaining...)

		sel := &promptui.Select{
			Label:    label,
			Items:    items,
			Searcher: prefixSearcher(items, true),
		}

		idx, value, err := sel.Run()
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			break
		}

		picked[value] = true
		remaining = slices.DeleteFunc(remaining, func(s string) bool { return s == value })
	}

	return ordered(choices, picked), nil
}

// prefixSearcher matches items starting with the typed input. With skipFirst
// the leading [Done] item never matches a search.
func prefixSearcher(items []string, skipFirst bool) func(input string, index int) bool {
	return func(input string, index int) bool {
		if skipFirst && index == 0 {
			return false
		}

		if len(input) == 0 {
			return false
		}

		return strings.HasPrefix(strings.ToLower(items[index]), strings.ToLower(input))
	}
}

func dedupe(choices []string) []string {
	out := make([]string, 0, len(choices))

	for _, c := range choices {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}

	return out
}

func ordered(choices []string, picked map[string]bool) []string {
	var out []string

	for _, c := range dedupe(choices) {
		if picked[c] {
			out = append(out, c)
		}
	}

	return out
}
