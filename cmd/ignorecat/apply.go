package main

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gorewood/ignorecat/internal/git"
	"github.com/gorewood/ignorecat/internal/ignorefile"
	"github.com/gorewood/ignorecat/internal/output"
)

// targetFlags selects the ignore file apply and diff work on.
type targetFlags struct {
	target string
	global bool
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.target, "target", "", "Ignore file to update (default: .gitignore at the repository root)")
	cmd.Flags().BoolVar(&f.global, "global", false, "Use git's global excludes file")
	cmd.MarkFlagsMutuallyExclusive("target", "global")
}

// resolve returns the ignore file path.
func (f *targetFlags) resolve(cmd *cobra.Command) (string, error) {
	switch {
	case f.target != "":
		return f.target, nil
	case f.global:
		return git.GlobalExcludesFile(cmd.Context())
	default:
		root, err := git.RepoRoot(cmd.Context())
		if err != nil {
			return "", output.NewUserError("not in a git repository; use --target or --global")
		}
		return filepath.Join(root, ".gitignore"), nil
	}
}

// newApplyCmd creates the apply command.
func newApplyCmd() *cobra.Command {
	var flags targetFlags

	cmd := &cobra.Command{
		Use:   "apply <name>",
		Short: "Append a template to an ignore file",
		Long: `Append a template to an ignore file under a "### <name> ###" header.

The template is applied at most once per file: when the header is already
present the file is left alone and the command exits with code 3.

Examples:
  ignorecat apply Go                      # .gitignore at the repository root
  ignorecat apply macOS --global          # git's global excludes file
  ignorecat apply Node --target web/.gitignore`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], &flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func runApply(cmd *cobra.Command, name string, flags *targetFlags) error {
	printer := newPrinter(cmd)

	a, err := openApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := a.lookupTemplate(name)
	if err != nil {
		printer.Error(err)
		return err
	}

	path, err := flags.resolve(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := ignorefile.Apply(path, tmpl); err != nil {
		if errors.Is(err, ignorefile.ErrAlreadyApplied) {
			err = output.NewConflictError(tmpl.Name + " is already applied to " + path)
		} else {
			err = output.NewSystemErrorWithCause("applying template: "+err.Error(), err)
		}
		printer.Error(err)
		return err
	}
	a.logger.Debug("applied template", "name", tmpl.Name, "target", path)

	return printer.Success(map[string]any{
		"name":    tmpl.Name,
		"target":  path,
		"message": "Applied " + tmpl.Name + " to " + path,
	})
}

// newDiffCmd creates the diff command.
func newDiffCmd() *cobra.Command {
	var flags targetFlags

	cmd := &cobra.Command{
		Use:   "diff <name>",
		Short: "Preview what apply would change",
		Long: `Show a line diff between an ignore file and the same file with the
template applied. Nothing is written.

Examples:
  ignorecat diff Go
  ignorecat diff macOS --global`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, args[0], &flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func runDiff(cmd *cobra.Command, name string, flags *targetFlags) error {
	printer := newPrinter(cmd)

	a, err := openApp(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := a.lookupTemplate(name)
	if err != nil {
		printer.Error(err)
		return err
	}

	path, err := flags.resolve(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	diff, err := ignorefile.Diff(path, tmpl)
	if err != nil {
		err = output.NewSystemErrorWithCause("diffing template: "+err.Error(), err)
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"name":    tmpl.Name,
			"target":  path,
			"applied": diff == "",
			"diff":    diff,
		})
	}

	if diff == "" {
		printer.Println(tmpl.Name + " is already applied to " + path)
		return nil
	}
	printer.Print("%s", diff)
	return nil
}
