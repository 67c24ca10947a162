package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/ignorecat/internal/output"
	"github.com/gorewood/ignorecat/internal/settings"
)

// newUserCmd creates the user command group.
func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user templates",
		Long: `Manage templates stored in the settings file.

A user template with the same name as a bundled template replaces it in
listings.`,
	}
	cmd.AddCommand(newUserAddCmd(), newUserRemoveCmd())
	return cmd
}

func newUserAddCmd() *cobra.Command {
	var fileFlag, contentFlag string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or replace a user template",
		Long: `Add a user template, replacing any user template with the same name.

Examples:
  ignorecat user add Scratch --content 'tmp/'
  ignorecat user add Company --file ~/company.gitignore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserAdd(cmd, args[0], fileFlag, contentFlag)
		},
	}

	cmd.Flags().StringVar(&fileFlag, "file", "", "Read template content from a file")
	cmd.Flags().StringVar(&contentFlag, "content", "", "Template content")
	cmd.MarkFlagsMutuallyExclusive("file", "content")
	cmd.MarkFlagsOneRequired("file", "content")

	return cmd
}

func runUserAdd(cmd *cobra.Command, name, file, content string) error {
	printer := newPrinter(cmd)

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			userErr := output.NewUserError("reading template file: " + err.Error())
			printer.Error(userErr)
			return userErr
		}
		content = string(data)
	}

	a, err := openApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	added, err := a.settings.AddUserTemplate(settings.UserTemplate{Name: name, Content: content})
	if err != nil {
		err = settingsError(err)
		printer.Error(err)
		return err
	}

	message := "Updated user template " + name
	if added {
		message = "Added user template " + name
	}
	return printer.Success(map[string]any{
		"name":    name,
		"added":   added,
		"message": message,
	})
}

func newUserRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a user template",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUserRemove(cmd, args[0])
		},
	}
}

func runUserRemove(cmd *cobra.Command, name string) error {
	printer := newPrinter(cmd)

	a, err := openApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := a.settings.RemoveUserTemplate(name); err != nil {
		err = settingsError(err)
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"name":    name,
		"message": "Removed user template " + name,
	})
}
