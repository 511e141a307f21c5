package applicant

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// runPrompt is swapped out in tests.
var runPrompt = func(p promptui.Prompt) (string, error) {
	return p.Run()
}

func validInt(input string) error {
	if _, err := strconv.Atoi(input); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validFloat(input string) error {
	if _, err := strconv.ParseFloat(input, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func askInt(label string) (int, error) {
	answer, err := runPrompt(promptui.Prompt{Label: label, Validate: validInt})
	if err != nil {
		return 0, fmt.Errorf("prompt %q: %w", label, err)
	}
	return strconv.Atoi(answer)
}

func askFloat(label string) (float64, error) {
	answer, err := runPrompt(promptui.Prompt{Label: label, Validate: validFloat})
	if err != nil {
		return 0, fmt.Errorf("prompt %q: %w", label, err)
	}
	return strconv.ParseFloat(answer, 64)
}

// PromptProfile gathers the five profile fields interactively. The
// prompts refuse non-numeric input; the returned profile is validated,
// so a zero income or home value surfaces here as a typed error instead
// of a division failure later. The caller decides whether to exit or
// retry.
func PromptProfile() (*Profile, error) {
	score, err := askInt("What's your credit score?")
	if err != nil {
		return nil, err
	}

	debt, err := askFloat("What's your current amount of monthly debt?")
	if err != nil {
		return nil, err
	}

	income, err := askFloat("What's your total monthly income?")
	if err != nil {
		return nil, err
	}

	loan, err := askFloat("What's your desired loan amount?")
	if err != nil {
		return nil, err
	}

	home, err := askFloat("What's your home value?")
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		CreditScore:   score,
		MonthlyDebt:   debt,
		MonthlyIncome: income,
		LoanAmount:    loan,
		HomeValue:     home,
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}
