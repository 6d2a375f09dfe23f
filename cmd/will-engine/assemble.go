// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/meshintel/will-engine/internal/engine"
	"github.com/meshintel/will-engine/internal/genai"
)

var assembleCmd = &cobra.Command{
	Use:   "assemble <facts.yaml>",
	Short: "Validate facts and assemble the draft will",
	Long: `Assemble runs the full drafting workflow: the facts are validated, and
when no blocking issue is found the engine retrieves legal passages per
section, generates the clause text, and compiles the document in
canonical order. The draft and its provenance manifest are written to the
output directory. A blocking finding stops before generation.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssemble,
}

func init() {
	assembleCmd.Flags().Bool("stub-generator", false, "use the deterministic offline generator (dry run)")
	assembleCmd.Flags().Bool("local-embedder", false, "use the offline deterministic embedder instead of the API")
	assembleCmd.Flags().String("out", "", "output directory (overrides assembly.output_dir)")
	rootCmd.AddCommand(assembleCmd)
}

func runAssemble(cmd *cobra.Command, args []string) error {
	w, err := loadWillData(args[0])
	if err != nil {
		return err
	}

	cfg := engineConfig(cmd)
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Assembly.OutputDir = out
	}
	stub, _ := cmd.Flags().GetBool("stub-generator")
	forceLocal, _ := cmd.Flags().GetBool("local-embedder")
	// The stub generator implies offline retrieval as well.
	if stub {
		forceLocal = true
	}

	c, ix, err := buildIndex(cmd.Context(), cfg, forceLocal)
	if err != nil {
		return err
	}

	var gen genai.Capability
	if stub {
		gen = genai.NewStub()
	} else {
		gen = genai.NewOpenAIBackend(cfg.Generation)
	}

	eng := engine.New(c, ix, gen, cfg)
	res, err := eng.Draft(cmd.Context(), w)
	if err != nil {
		printReport(res.FactsReport)
		return err
	}

	printReport(res.FactsReport)
	if res.Document == nil {
		return fmt.Errorf("facts have blocking issues; document not assembled")
	}

	if res.PostReport != nil && len(res.PostReport.Issues) > 0 {
		color.Red("Post-generation checks found %d defect(s):", len(res.PostReport.Issues))
		printReport(*res.PostReport)
	}

	willPath, manifestPath, err := writeOutputs(cfg.Assembly.OutputDir, w.Testator.FullName, res)
	if err != nil {
		return err
	}
	color.Green("Draft will written to %s", willPath)
	fmt.Printf("Provenance manifest: %s\n", manifestPath)
	fmt.Printf("Corpus version: %s, session %s\n", res.Document.Manifest.CorpusVersion, res.Document.Manifest.SessionID)
	return nil
}

// writeOutputs writes the rendered will and its manifest, named after the
// testator and timestamped.
func writeOutputs(dir, testatorName string, res *engine.Result) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("creating output directory: %w", err)
	}
	base := fmt.Sprintf("will_%s_%s", slugify(testatorName), time.Now().Format("20060102_150405"))

	willPath := filepath.Join(dir, base+".txt")
	if err := os.WriteFile(willPath, []byte(res.Document.Render()), 0o644); err != nil {
		return "", "", fmt.Errorf("writing will: %w", err)
	}

	manifestPath := filepath.Join(dir, base+"_manifest.yaml")
	data, err := yaml.Marshal(res.Document.Manifest)
	if err != nil {
		return "", "", fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return "", "", fmt.Errorf("writing manifest: %w", err)
	}
	return willPath, manifestPath, nil
}

func slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_")
}
