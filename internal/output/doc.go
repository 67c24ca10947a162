// Package output provides structured output handling for the ignorecat CLI.
//
// Every command renders through a Printer, which switches between
// human-readable and JSON output based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Starred Go"})
//	printer.Error(err)
//
// # JSON Mode
//
//	// Success: {"message": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Styling
//
// Human output uses lipgloss styles that are cleared when output is piped.
// Template classifications get their own badge colors (see Printer.Badge).
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Unknown template, bad flags
//	output.ExitSystemError // 2: I/O error, git failed, settings unreadable
//	output.ExitConflict    // 3: Template already applied to the target
package output
