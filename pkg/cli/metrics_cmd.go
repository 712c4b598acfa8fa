package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"governance-explorer/internal/service/bundle"
)

func newMetricsCmd(sess *session) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Rank bundles by days spent in their current stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := sess.bundles().MetricsRows(cmd.Context(), time.Now().UTC())
			if err != nil {
				return err
			}
			if top > 0 {
				rows = bundle.TopByDays(rows, top)
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, rows)
			}

			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{
					r.BundleName,
					r.ProjectName,
					r.CurrentStage,
					r.CurrentStageAssignee,
					daysString(r.DaysInStage),
				})
			}
			return printTable(os.Stdout,
				[]string{"NAME", "PROJECT", "STAGE", "ASSIGNEE", "DAYS"},
				table,
			)
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Only the top N bundles with a determinate day count")

	return cmd
}
