package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base statistics",
	Long:  `Loads the knowledge base and prints chunk counts per file.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output stats as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	stats := searchService.Stats()

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Knowledge Base")
	cmd.Println("==============")
	cmd.Printf("  Chunks: %d\n", stats.TotalChunks)
	cmd.Printf("  Files:  %d\n", stats.FilesLoaded)
	if len(stats.FileDetails) == 0 {
		return nil
	}

	cmd.Println()
	files := make([]string, 0, len(stats.FileDetails))
	for f := range stats.FileDetails {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		cmd.Printf("  %6d  %s\n", stats.FileDetails[f], f)
	}
	return nil
}
