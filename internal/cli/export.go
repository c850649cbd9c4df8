package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/workasana/workasana/internal/app"
	"github.com/workasana/workasana/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Dump the workspace as JSON or YAML",
		GroupID: groupView,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd, c); err != nil {
				return err
			}

			out, err := c.ExportSnapshotUseCase().Execute(cmd.Context(), usecase.ExportSnapshotInput{
				Format: format,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), string(out.Data))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", usecase.ExportFormatJSON, "Output format (json or yaml)")

	return cmd
}
