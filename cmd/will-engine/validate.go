// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/will-engine/internal/rules"
	"github.com/meshintel/will-engine/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate <facts.yaml>",
	Short: "Validate drafting facts against the statutory rule set",
	Long: `Validate runs the field, structural, and compliance rule stages over a
facts file and reports every finding. Blocking findings must be resolved
before a document can be assembled; advisory findings need not be.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("json", false, "output the report as JSON")
	rootCmd.AddCommand(validateCmd)
}

// loadWillData reads a facts YAML file into the WillData aggregate.
func loadWillData(path string) (*types.WillData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading facts file: %w", err)
	}
	var w types.WillData
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing facts file %s: %w", path, err)
	}
	return &w, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	w, err := loadWillData(args[0])
	if err != nil {
		return err
	}

	report := rules.NewEngine().ValidateFacts(w)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printReport(report)
	}

	if report.HasBlocking() {
		return fmt.Errorf("validation found blocking issues")
	}
	return nil
}

// printReport renders a report grouped by stage, blocking findings in
// red, advisory in yellow.
func printReport(report types.Report) {
	if len(report.Issues) == 0 {
		color.Green("No issues found.")
		return
	}

	blocking := color.New(color.FgRed, color.Bold)
	advisory := color.New(color.FgYellow)

	for _, stage := range []types.Stage{types.StageField, types.StageStructural, types.StageCompliance, types.StagePost} {
		issues := report.ByStage(stage)
		if len(issues) == 0 {
			continue
		}
		fmt.Printf("\nStage %d (%s):\n", int(stage), stage)
		for _, is := range issues {
			c := advisory
			if is.Severity == types.SeverityBlocking {
				c = blocking
			}
			c.Printf("  [%s] %s %s\n", is.Severity, is.Kind, is.Message)
			if is.FieldPath != "" {
				fmt.Printf("        at %s\n", is.FieldPath)
			}
		}
	}
	fmt.Printf("\n%d issue(s) total (report %s)\n", len(report.Issues), report.ID)
}
