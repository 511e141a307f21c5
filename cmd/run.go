package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/finqualify/loan-qualifier/internal/applicant"
	"github.com/finqualify/loan-qualifier/internal/calc"
	"github.com/finqualify/loan-qualifier/internal/filtering"
	"github.com/finqualify/loan-qualifier/internal/logger"
	"github.com/finqualify/loan-qualifier/internal/ratesheet"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	defaultOutputPath = "qualifying_loans.csv"
)

var savePrompt = promptui.Select{
	Label: "Would you like to save the qualifying loans?",
	Items: []string{PromptYes, PromptNo},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the loan-qualifier main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-save", "y", false, "do not ask for confirmation before saving qualifying loans")
	runCmd.Flags().StringP("ratesheet", "r", "", "path to the rate-sheet csv. Asked interactively when unset.")
	runCmd.Flags().StringP("output", "o", "", "destination path for the qualifying loans csv. Asked interactively when unset.")

	viper.BindPFlag("ratesheet", runCmd.Flags().Lookup("ratesheet"))
	viper.BindPFlag("output", runCmd.Flags().Lookup("output"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the loan-qualifier", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	records := loadRateSheet(logger)

	profile, err := applicant.PromptProfile()
	if err != nil {
		logger.Fatal("gathering applicant information", zap.Error(err))
	}

	qualified := findQualifyingLoans(logger, records, profile)

	if qualified.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "sorry, there are no qualifying loans"))
		os.Exit(1)
	}

	logger.Info("found qualifying loans",
		zap.Int("count", qualified.Len()),
		zap.Strings("lenders", qualified.Lenders()),
	)

	saveQualifyingLoans(cmd, logger, qualified)
}

// loadRateSheet resolves the rate-sheet path from the flag or config,
// falling back to an interactive prompt, and loads it.
func loadRateSheet(logger *zap.Logger) *ratesheet.Records {
	path := strings.TrimSpace(viper.GetString("ratesheet"))
	if path == "" {
		prompt := promptui.Prompt{Label: "Enter a file path to a rate-sheet (.csv)"}
		answer, err := prompt.Run()
		if err != nil {
			logger.Fatal("asking for the rate-sheet path", zap.Error(err))
		}
		path = strings.TrimSpace(answer)
	}

	records, err := ratesheet.Load(path)
	if err != nil {
		if errors.Is(err, ratesheet.ErrNotFound) {
			logger.Fatal("oops! can't find this path", zap.String("path", path))
		}
		logger.Fatal("loading the rate sheet", zap.String("path", path), zap.Error(err))
	}

	logger.Info("loaded the rate sheet", zap.String("path", path), zap.Int("count", records.Len()))

	return records
}

// findQualifyingLoans computes the applicant's ratios and runs the four
// qualification filters in their fixed order.
func findQualifyingLoans(logger *zap.Logger, records *ratesheet.Records, profile *applicant.Profile) *ratesheet.Records {
	debtRatio, err := calc.MonthlyDebtRatio(profile.MonthlyDebt, profile.MonthlyIncome)
	if err != nil {
		logger.Fatal("calculating the monthly debt ratio", zap.Error(err))
	}

	loanToValue, err := calc.LoanToValueRatio(profile.LoanAmount, profile.HomeValue)
	if err != nil {
		logger.Fatal("calculating the loan to value ratio", zap.Error(err))
	}

	// Two decimals is display formatting only; the filters compare the
	// unrounded values.
	logger.Info("computed applicant ratios",
		zap.String("monthly_debt_to_income", fmt.Sprintf("%.2f", debtRatio)),
		zap.String("loan_to_value", fmt.Sprintf("%.2f", loanToValue)),
	)

	steps := []filtering.Filter{
		filtering.NewMaxLoanSize(profile.LoanAmount),
		filtering.NewCreditScore(profile.CreditScore),
		filtering.NewDebtToIncome(debtRatio),
		filtering.NewLoanToValue(loanToValue),
	}

	qualified, err := filtering.Run(logger, steps, records)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	return qualified
}

// saveQualifyingLoans asks for confirmation and a destination path, then
// writes the qualifying subset back to csv.
func saveQualifyingLoans(cmd *cobra.Command, logger *zap.Logger, qualified *ratesheet.Records) {
	if cmd.Flag("auto-save").Value.String() == "false" {
		_, action, err := savePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if action == PromptNo {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	path := strings.TrimSpace(viper.GetString("output"))
	if path == "" {
		prompt := promptui.Prompt{
			Label:   "Please enter a file path for the saved data",
			Default: defaultOutputPath,
		}
		answer, err := prompt.Run()
		if err != nil {
			logger.Fatal("asking for the output path", zap.Error(err))
		}
		path = strings.TrimSpace(answer)
	}

	if err := ratesheet.Save(path, qualified); err != nil {
		logger.Fatal("saving qualifying loans", zap.String("path", path), zap.Error(err))
	}

	logger.Info("saved qualifying loans", zap.String("path", path), zap.Int("count", qualified.Len()))
}
