package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/healthlog/internal/logger"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Logged records err under msg and hands it back, so a call site can log
// and propagate in a single return statement. A nil err is passed through.
func Logged(msg string, err error, keyvals ...interface{}) error {
	if err == nil {
		return nil
	}
	logger.Error(msg, append([]interface{}{"error", err}, keyvals...)...)
	return err
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
