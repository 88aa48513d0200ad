package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quizadmin/internal/domain"
)

func treeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print every domain with its categories and questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Mirror.Fetch(cmd.Context()); err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), appCtx.Mirror.Domains())
			return nil
		},
	}
}

func printTree(w io.Writer, domains []domain.Domain) {
	if len(domains) == 0 {
		fmt.Fprintln(w, "no domains")
		return
	}
	for _, d := range domains {
		fmt.Fprintf(w, "%s [%d]\n", d.Name, d.ID)
		for _, c := range d.Categories {
			fmt.Fprintf(w, "  %s [%d]\n", c.Name, c.ID)
			for _, q := range c.Questions {
				printQuestion(w, "    ", q)
			}
		}
	}
}

func printQuestion(w io.Writer, indent string, q domain.Question) {
	fmt.Fprintf(w, "%s%s [%d]\n", indent, q.Text, q.ID)
	for _, o := range q.Options {
		mark := " "
		if o.IsCorrect {
			mark = "*"
		}
		fmt.Fprintf(w, "%s  %s %d. %s\n", indent, mark, o.ID, o.Text)
	}
}
