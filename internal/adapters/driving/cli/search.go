package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DiengWinz/acl-chatbot-api/internal/core/domain"
	"github.com/DiengWinz/acl-chatbot-api/internal/core/services"
)

var (
	searchLimit  int
	searchFilter string
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the knowledge base",
	Long: `Scores every knowledge base passage by keyword overlap with the query
and prints the best matches. Accents and case are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default top_k_results)")
	searchCmd.Flags().StringVar(&searchFilter, "filter", "", "restrict to a country folder or file name")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

// searchResultJSON is the JSON shape of one result.
type searchResultJSON struct {
	SourceFile string  `json:"source_file"`
	Folder     string  `json:"folder,omitempty"`
	Page       int     `json:"page,omitempty"`
	Score      float64 `json:"score"`
	Content    string  `json:"content"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}
	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	opts := domain.SearchOptions{
		Limit:  searchLimit,
		Filter: searchFilter,
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	out := make([]searchResultJSON, len(results))
	for i := range results {
		chunk := results[i].Chunk
		page, _ := chunk.Page()
		out[i] = searchResultJSON{
			SourceFile: chunk.SourceFile,
			Folder:     chunk.Folder(),
			Page:       page,
			Score:      services.RoundScore(results[i].Score),
			Content:    chunk.Content,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		// Format: [N] file (score)
		chunk := results[i].Chunk
		location := chunk.SourceFile
		if page, ok := chunk.Page(); ok {
			location = fmt.Sprintf("%s p.%d", location, page)
		}

		cmd.Printf("  [%d] %s (%.3f)\n", i+1, location, results[i].Score)
		if folder := chunk.Folder(); folder != "" {
			cmd.Printf("      Folder: %s\n", folder)
		}
		snippet := strings.Join(strings.Fields(services.Snippet(chunk.Content, 200)), " ")
		if snippet != "" {
			cmd.Printf("      %s\n", snippet)
		}
		cmd.Println()
	}

	return nil
}
