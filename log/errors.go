package log

import (
	"fmt"
	"strings"
)

// Error codes for all application errors
const (
	// Configuration errors (1xx)
	ErrConfigReadFailed  = "E101" // Error reading configuration file
	ErrConfigParseFailed = "E102" // Error parsing configuration file
	ErrConfigInvalidRepo = "E103" // Repository path cannot be resolved
	ErrLogInitFailed     = "E104" // Debug log file cannot be opened

	// Git operation errors (2xx)
	ErrGitStatusFailed = "E201" // Failed to read working tree status
	ErrGitBranchFailed = "E202" // Failed to resolve current branch

	// Repository errors (3xx)
	ErrRepoNotFound    = "E301" // Repository not found
	ErrRepoInvalidPath = "E302" // Invalid repository path
	ErrRepoNotGit      = "E303" // Not a git repository

	// Journal errors (4xx)
	ErrJournalOpenFailed  = "E401" // Failed to open the run journal
	ErrJournalWriteFailed = "E402" // Failed to record a run in the journal
	ErrJournalReadFailed  = "E403" // Failed to read runs from the journal

	// General errors (9xx)
	ErrInvalidArgument = "E901" // Invalid argument passed
	ErrOperationFailed = "E999" // Generic operation failed
)

// FormatError formats an error with a consistent structure including the error code
func FormatError(code string, description string, err error) string {
	if err != nil {
		return fmt.Sprintf("[%s] %s: %v", code, description, err)
	}
	return fmt.Sprintf("[%s] %s", code, description)
}

// GetErrorCode extracts the error code from a formatted error message
func GetErrorCode(errorMsg string) string {
	if strings.HasPrefix(errorMsg, "[E") && len(errorMsg) >= 6 {
		return errorMsg[1:5]
	}
	return ""
}
