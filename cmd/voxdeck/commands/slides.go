package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var slidesDeckPath string

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Print the loaded slide deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck(slidesDeckPath)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tBULLETS\tNARRATION")
		for _, s := range d.Slides() {
			narration := s.Narration
			if len(narration) > 60 {
				narration = narration[:57] + "..."
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", s.ID, s.Title, len(s.Content), narration)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if verbose {
			for _, s := range d.Slides() {
				fmt.Printf("\n[%d] %s\n", s.ID, s.Title)
				for _, line := range s.Content {
					fmt.Printf("  - %s\n", line)
				}
				fmt.Printf("  %s\n", strings.TrimSpace(s.Narration))
			}
		}
		return nil
	},
}

func init() {
	slidesCmd.Flags().StringVar(&slidesDeckPath, "deck", "", "slide deck YAML file (built-in deck if unset)")
	rootCmd.AddCommand(slidesCmd)
}
