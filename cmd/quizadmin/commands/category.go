package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func categoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Add, rename or remove categories of a domain",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <domainId> <name>",
			Short: "Create a category",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				domainID, err := parseDomainID(args[0])
				if err != nil {
					return err
				}
				c, err := appCtx.Mirror.AddCategory(cmd.Context(), domainID, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created category %d\n", c.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rename <domainId> <categoryId> <name>",
			Short: "Rename a category",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				domainID, err := parseDomainID(args[0])
				if err != nil {
					return err
				}
				id, err := parseCategoryID(args[1])
				if err != nil {
					return err
				}
				c, err := appCtx.Mirror.UpdateCategory(cmd.Context(), domainID, id, args[2])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated category %d\n", c.ID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <domainId> <categoryId>",
			Short: "Delete a category and its questions",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				domainID, err := parseDomainID(args[0])
				if err != nil {
					return err
				}
				id, err := parseCategoryID(args[1])
				if err != nil {
					return err
				}
				if err := appCtx.Mirror.DeleteCategory(cmd.Context(), domainID, id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted category %d\n", id)
				return nil
			},
		},
	)
	return cmd
}
