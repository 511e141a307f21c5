package applicant

import (
	"errors"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileValidate(t *testing.T) {
	t.Parallel()

	valid := Profile{
		CreditScore:   650,
		MonthlyDebt:   2000,
		MonthlyIncome: 6000,
		LoanAmount:    300000,
		HomeValue:     400000,
	}

	tests := []struct {
		name   string
		mutate func(*Profile)
		err    error
	}{
		{
			name:   "valid profile",
			mutate: func(*Profile) {},
		},
		{
			name:   "zero debt is allowed",
			mutate: func(p *Profile) { p.MonthlyDebt = 0 },
		},
		{
			name:   "negative credit score",
			mutate: func(p *Profile) { p.CreditScore = -1 },
			err:    ErrNegativeCreditScore,
		},
		{
			name:   "negative debt",
			mutate: func(p *Profile) { p.MonthlyDebt = -100 },
			err:    ErrNegativeDebt,
		},
		{
			name:   "zero income",
			mutate: func(p *Profile) { p.MonthlyIncome = 0 },
			err:    ErrNonPositiveIncome,
		},
		{
			name:   "zero loan amount",
			mutate: func(p *Profile) { p.LoanAmount = 0 },
			err:    ErrNonPositiveLoan,
		},
		{
			name:   "zero home value",
			mutate: func(p *Profile) { p.HomeValue = 0 },
			err:    ErrNonPositiveHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)
			if tt.err == nil {
				assert.NoError(t, p.Validate())
				return
			}
			assert.ErrorIs(t, p.Validate(), tt.err)
		})
	}
}

func TestPromptValidators(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validInt("650"))
	assert.Error(t, validInt("650.5"))
	assert.Error(t, validInt("six hundred"))

	assert.NoError(t, validFloat("2000"))
	assert.NoError(t, validFloat("0.35"))
	assert.Error(t, validFloat("a lot"))
}

func TestPromptProfile(t *testing.T) {
	answers := []string{"650", "2000", "6000", "300000", "400000"}
	runPrompt = func(promptui.Prompt) (string, error) {
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
	t.Cleanup(func() { runPrompt = func(p promptui.Prompt) (string, error) { return p.Run() } })

	profile, err := PromptProfile()
	require.NoError(t, err)

	assert.Equal(t, 650, profile.CreditScore)
	assert.Equal(t, 2000.0, profile.MonthlyDebt)
	assert.Equal(t, 6000.0, profile.MonthlyIncome)
	assert.Equal(t, 300000.0, profile.LoanAmount)
	assert.Equal(t, 400000.0, profile.HomeValue)
}

func TestPromptProfileZeroIncome(t *testing.T) {
	answers := []string{"650", "2000", "0", "300000", "400000"}
	runPrompt = func(promptui.Prompt) (string, error) {
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
	t.Cleanup(func() { runPrompt = func(p promptui.Prompt) (string, error) { return p.Run() } })

	_, err := PromptProfile()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonPositiveIncome))
}
