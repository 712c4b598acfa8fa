package cli

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"governance-explorer/internal/domain"
)

func newBundlesCmd(sess *session) *cobra.Command {
	return &cobra.Command{
		Use:   "bundles",
		Short: "List governance bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := sess.bundles().ListRows(cmd.Context(), time.Now().UTC())
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, rows)
			}

			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{
					r.BundleName,
					r.State,
					r.CurrentStage,
					r.CurrentStageAssignee,
					daysString(r.DaysInStage),
					r.ProjectName,
					r.PolicyName,
					r.Owner,
				})
			}
			return printTable(os.Stdout,
				[]string{"NAME", "STATE", "STAGE", "ASSIGNEE", "DAYS", "PROJECT", "POLICY", "OWNER"},
				table,
			)
		},
	}
}

func daysString(days int) string {
	if days == domain.DaysUnknown {
		return "-"
	}
	return strconv.Itoa(days)
}
