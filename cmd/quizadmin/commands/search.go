package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const searchLong = `Without --where, prints the domains whose name, category names or
question texts contain the query (case-insensitive).

With --where, evaluates an expression against every question and prints the
matches. The expression sees domain, category, text, options (each with text
and isCorrect) and correct (the number of correct options), e.g.

  quizadmin search --where 'domain == "Math" && correct == 0'`

func searchCmd() *cobra.Command {
	var where string
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Find domains by name, category or question text",
		Long:  searchLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if where != "" {
				matches, err := appCtx.API.FilterQuestions(cmd.Context(), where)
				if err != nil {
					return err
				}
				for _, m := range matches {
					fmt.Fprintf(out, "%s / %s [%d/%d]\n", m.DomainName, m.CategoryName, m.DomainID, m.CategoryID)
					printQuestion(out, "  ", m.Question)
				}
				return nil
			}

			domains, err := appCtx.API.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printTree(out, domains)
			return nil
		},
	}
	cmd.Flags().StringVar(&where, "where", "", "filter questions with an expression")
	return cmd
}
