// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve <query>",
	Short: "Query the corpus for the most relevant legal passages",
	Long: `Retrieve embeds the query, ranks every corpus fragment by cosine
similarity, and prints the top-k passages with their scores and source
references. Ties rank by ascending fragment ID, so results are stable for
a given corpus version.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRetrieve,
}

func init() {
	retrieveCmd.Flags().Int("k", 4, "number of fragments to return")
	retrieveCmd.Flags().Bool("json", false, "output results as JSON")
	retrieveCmd.Flags().Bool("local-embedder", false, "use the offline deterministic embedder instead of the API")
	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	cfg := engineConfig(cmd)
	forceLocal, _ := cmd.Flags().GetBool("local-embedder")
	k, _ := cmd.Flags().GetInt("k")

	_, ix, err := buildIndex(cmd.Context(), cfg, forceLocal)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	res, err := ix.Query(cmd.Context(), query, k)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	for i, sf := range res.Fragments {
		fmt.Printf("%d. [%s] score %.4f", i+1, sf.Fragment.ID, sf.Score)
		if sf.Fragment.SourceRef != "" {
			fmt.Printf("  (%s)", sf.Fragment.SourceRef)
		}
		fmt.Println()
		fmt.Println(indent(excerpt(sf.Fragment.Text, 300), "   "))
	}
	return nil
}

func excerpt(text string, max int) string {
	text = strings.TrimSpace(text)
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
