package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jgrunert/amaze/pkg/maze/algo"
)

// algorithmsCommand creates the algorithms command listing the registry.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List available maze algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, d := range algo.List() {
				rows = append(rows, []string{string(d.ID), d.Name, d.Complexity, d.Description})
			}

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == table.HeaderRow {
						return headerStyle
					}
					if col == 0 {
						return StyleTitle
					}
					return StyleValue
				}).
				Headers("ID", "Name", "Complexity", "Description").
				Rows(rows...)

			fmt.Println(t)
			printNextStep("Try one", fmt.Sprintf("%s generate -a prim --solve", appName))
			return nil
		},
	}
}
