package status

import (
	"fmt"
	"strings"
)

// FileFormatter defines how file outcomes and progress should be formatted
type FileFormatter interface {
	// FormatFileOperation formats the outcome of one file
	FormatFileOperation(info FileInfo) string

	// FormatProgress formats a progress message
	FormatProgress(current, total int) string

	// FormatError formats a per-file error message
	FormatError(path string, err error) string

	// FormatSummary formats the end-of-run totals
	FormatSummary(total, changed, unchanged, failed int) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatFileOperation formats a file outcome with emojis
func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo) string {
	switch info.Status {
	case StatusModified:
		return fmt.Sprintf("📝 Updated %s%s", info.Path, details(info))
	case StatusPending:
		return fmt.Sprintf("🔍 Would update %s%s", info.Path, details(info))
	case StatusFailed:
		return fmt.Sprintf("❌ Failed %s", info.Path)
	default:
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	}
}

func details(info FileInfo) string {
	var parts []string
	if info.Replacements > 0 {
		parts = append(parts, plural(info.Replacements, "call"))
	}
	if info.RemovedImports > 0 {
		parts = append(parts, plural(info.RemovedImports, "import"))
	}
	if info.RemovedDeclarations > 0 {
		parts = append(parts, plural(info.RemovedDeclarations, "declaration"))
	}
	if info.BackupPath != "" {
		parts = append(parts, "backup "+info.BackupPath)
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// FormatProgress formats a progress message with percentage
func (f *DefaultFileFormatter) FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(path string, err error) string {
	if err == nil {
		return ""
	}
	if path == "" {
		return fmt.Sprintf("❌ Error: %v", err)
	}
	return fmt.Sprintf("❌ Error: %s: %v", path, err)
}

// FormatSummary formats the final counts of a run
func (f *DefaultFileFormatter) FormatSummary(total, changed, unchanged, failed int) string {
	icon := "🏁"
	if failed > 0 {
		icon = "⚠️ "
	}
	return fmt.Sprintf("%s Done: %d files, %d changed, %d unchanged, %d failed", icon, total, changed, unchanged, failed)
}
