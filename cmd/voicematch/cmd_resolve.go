package main

import (
	"fmt"
	"strings"

	"github.com/pantrylist/backend/internal/infrastructure/catalogfile"
	"github.com/pantrylist/backend/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	catalogPath     string
	suggestionLimit int
)

// resolveCmd matches a phrase against a catalog file
var resolveCmd = &cobra.Command{
	Use:   "resolve <phrase...>",
	Short: "Find the catalog product a phrase refers to",
	Long: `Resolve a spoken phrase against a YAML or JSON catalog.

Prints "<id>\t<name>\t<score>" on a match. On no match prints "no match",
optionally followed by suggestions, and exits with status 1.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

// normalizeCmd prints the comparison form of a string
var normalizeCmd = &cobra.Command{
	Use:   "normalize <text...>",
	Short: "Print the normalized comparison form of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), usecase.NormalizeString(strings.Join(args, " ")))
		return nil
	},
}

// similarityCmd prints the edit-distance similarity of two strings
var similarityCmd = &cobra.Command{
	Use:   "similarity <a> <b>",
	Short: "Print the similarity of two normalized strings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score := usecase.SimilarityScore(usecase.NormalizeString(args[0]), usecase.NormalizeString(args[1]))
		fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", score)
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "catalog.yaml", "catalog file (YAML or JSON)")
	resolveCmd.Flags().IntVarP(&suggestionLimit, "suggest", "s", 0, "number of suggestions to print when nothing matches")
}

func runResolve(cmd *cobra.Command, args []string) error {
	products, err := catalogfile.Load(catalogPath)
	if err != nil {
		return err
	}

	phrase := strings.Join(args, " ")
	entries := usecase.DedupeEntries(usecase.CatalogEntries(products))
	result := usecase.ResolveVoiceCommand(phrase, entries)

	out := cmd.OutOrStdout()
	if result.Matched {
		fmt.Fprintf(out, "%s\t%s\t%.2f\n", result.Entry.ID, result.Entry.DisplayName, result.Score)
		return nil
	}

	fmt.Fprintln(out, "no match")
	for _, s := range usecase.Suggest(phrase, entries, suggestionLimit) {
		fmt.Fprintf(out, "  did you mean %s (%s)?\n", s.DisplayName, s.ID)
	}
	return errNoMatch
}
