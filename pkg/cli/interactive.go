package cli

import (
	"errors"
	"io"
	"strconv"

	"github.com/charmbracelet/huh"
)

// runInteractive prompts for a template, seed, and count, then renders.
func runInteractive(w io.Writer) error {
	var (
		formTemplate string
		formSeed     string
		formCount    = "1"
		formUnique   bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Template to render").
				Placeholder("{first_name} {last_name} <{email}>").
				Value(&formTemplate).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("template is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Seed (empty for random)").
				Value(&formSeed),
			huh.NewInput().
				Title("How many values?").
				Value(&formCount).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 {
						return errors.New("enter a positive number")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Require unique values?").
				Value(&formUnique),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	count, _ := strconv.Atoi(formCount)
	opts := fakeOptions{
		seed:    formSeed,
		count:   count,
		unique:  formUnique,
		retries: cfg.Retries,
		dicts:   cfg.Dicts,
	}
	return runFake(w, formTemplate, opts)
}
