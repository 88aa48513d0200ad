package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func domainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "domain",
		Short: "Add, rename or remove domains",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Create a domain",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := appCtx.Mirror.AddDomain(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created domain %d\n", d.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename <domainId> <name>",
			Short: "Rename a domain",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseDomainID(args[0])
				if err != nil {
					return err
				}
				d, err := appCtx.Mirror.UpdateDomain(cmd.Context(), id, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated domain %d\n", d.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <domainId>",
			Short: "Delete a domain and everything under it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseDomainID(args[0])
				if err != nil {
					return err
				}
				if err := appCtx.Mirror.DeleteDomain(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted domain %d\n", id)
				return nil
			},
		},
	)
	return cmd
}
