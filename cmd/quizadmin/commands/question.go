package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizadmin/internal/domain"
)

func questionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Add, update or remove questions of a category",
	}
	cmd.AddCommand(questionAddCmd(), questionUpdateCmd(), questionRmCmd())
	return cmd
}

// question add <domainId> <categoryId> <text> [option...]
func questionAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <domainId> <categoryId> <text> [option...]",
		Short: "Create a question; prefix correct options with *",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			domainID, categoryID, err := parseParents(args)
			if err != nil {
				return err
			}
			q, err := appCtx.Mirror.AddQuestion(cmd.Context(), domainID, categoryID, domain.QuestionInput{
				Text:    args[2],
				Options: parseOptions(args[3:]),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created question %d\n", q.ID)
			return nil
		},
	}
}

// question update <domainId> <categoryId> <questionId> <text> [option...]
// replaces the text and the whole option list.
func questionUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <domainId> <categoryId> <questionId> <text> [option...]",
		Short: "Replace a question's text and options",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			domainID, categoryID, err := parseParents(args)
			if err != nil {
				return err
			}
			id, err := parseQuestionID(args[2])
			if err != nil {
				return err
			}
			q, err := appCtx.Mirror.UpdateQuestion(cmd.Context(), domainID, categoryID, id, domain.QuestionInput{
				Text:    args[3],
				Options: parseOptions(args[4:]),
			})
			if err != nil {
				return err
			}
			printQuestion(cmd.OutOrStdout(), "", q)
			return nil
		},
	}
}

func questionRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <domainId> <categoryId> <questionId>",
		Short: "Delete a question",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			domainID, categoryID, err := parseParents(args)
			if err != nil {
				return err
			}
			id, err := parseQuestionID(args[2])
			if err != nil {
				return err
			}
			if err := appCtx.Mirror.DeleteQuestion(cmd.Context(), domainID, categoryID, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted question %d\n", id)
			return nil
		},
	}
}

func parseParents(args []string) (domain.DomainID, domain.CategoryID, error) {
	domainID, err := parseDomainID(args[0])
	if err != nil {
		return 0, 0, err
	}
	categoryID, err := parseCategoryID(args[1])
	if err != nil {
		return 0, 0, err
	}
	return domainID, categoryID, nil
}
