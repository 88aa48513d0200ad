package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"quizadmin/internal/domain"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream catalog changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			return appCtx.API.Watch(ctx, func(ev domain.Event) error {
				at := time.UnixMilli(ev.At).Format(time.RFC3339)
				path := ""
				if ev.DomainID != 0 {
					path = ev.DomainID.String()
				}
				if ev.CategoryID != 0 {
					path += "/" + ev.CategoryID.String()
				}
				if ev.QuestionID != 0 {
					path += "/" + ev.QuestionID.String()
				}
				_, err := fmt.Fprintf(out, "%s %-17s %s\n", at, ev.Type, path)
				return err
			})
		},
	}
}
