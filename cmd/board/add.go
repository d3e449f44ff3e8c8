package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/todoboard/internal/editor"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a todo to the Todo column",
	Long: `Add a todo to the Todo column.

The title may be given as arguments or written in $EDITOR together with the
description. The editor opens when --edit is given, or when no title is given
and the command runs interactively; --no-edit never opens it. Use
--description - to read the description from stdin.`,
	Aliases: []string{"create", "new"},
	RunE:    runAdd,
}

var (
	addDescription string
	addEdit        bool
	addNoEdit      bool
	addJSON        bool
)

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Write the todo in $EDITOR")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")
	addCmd.MarkFlagsMutuallyExclusive("edit", "no-edit")
	addCmd.Flags().BoolVar(&addJSON, "json", false, "Output the new todo as JSON")
	addFlagAliases(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) (err error) {
	title := strings.Join(args, " ")
	description, err := resolveDescriptionFromStdin(addDescription, os.Stdin)
	if err != nil {
		return err
	}

	if shouldUseEditor(strings.TrimSpace(title) != "", addEdit, addNoEdit, editor.IsInteractive()) {
		draft, err := editor.EditDraft(editor.Draft{Title: title, Description: description})
		if err != nil {
			return err
		}
		title, description = draft.Title, draft.Description
	} else if strings.TrimSpace(title) == "" {
		return errors.New("title is required (use --edit to open an editor)")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close(&err)

	created, err := s.store.Add(title, description)
	if err != nil {
		return err
	}

	if addJSON {
		return encodeJSON(cmd.OutOrStdout(), created)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added todo %d: %s\n", created.ID, created.Title)
	return nil
}

func shouldUseEditor(hasTitle, editFlag, noEditFlag, interactive bool) bool {
	if editFlag {
		return true
	}
	if noEditFlag || hasTitle {
		return false
	}
	return interactive
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}
