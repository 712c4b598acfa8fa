package cli

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"governance-explorer/internal/service/audit"
)

// addWindowFlags registers the shared time-window flags.
func addWindowFlags(fs *pflag.FlagSet, since, until *string) {
	fs.StringVar(since, "since", "", "Only events at or after this date (YYYY-MM-DD or full timestamp)")
	fs.StringVar(until, "until", "", "Only events at or before this date (YYYY-MM-DD or full timestamp)")
}

func newHistoryCmd(sess *session) *cobra.Command {
	var (
		actions  []string
		projects []string
		since    string
		until    string
	)

	cmd := &cobra.Command{
		Use:   "history <bundle-name>",
		Short: "Show the audit trail for a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := sess.bundles().FindByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			rows, err := sess.history().History(cmd.Context(), b.ID, audit.HistoryQuery{
				ActionNames:  actions,
				ProjectNames: projects,
				Since:        since,
				Until:        until,
			})
			if err != nil {
				return err
			}

			if getOutputFormat(cmd) == "json" {
				return printJSON(os.Stdout, rows)
			}

			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{
					r.Time,
					r.Action,
					r.Stage,
					r.User,
					r.Before,
					r.After,
					r.Change,
				})
			}
			return printTable(os.Stdout,
				[]string{"TIME", "ACTION", "STAGE", "USER", "BEFORE", "AFTER", "CHANGE"},
				table,
			)
		},
	}

	cmd.Flags().StringSliceVar(&actions, "action", nil, "Only these action names (repeatable)")
	cmd.Flags().StringSliceVar(&projects, "project", nil, "Only these project names (repeatable)")
	addWindowFlags(cmd.Flags(), &since, &until)

	return cmd
}
