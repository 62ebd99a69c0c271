package demo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Gaurav-Gosain/toast"
	"github.com/Gaurav-Gosain/toast/internal/config"
	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

// snippetSavedMsg reports the outcome of an export.
type snippetSavedMsg struct {
	path string
	err  error
}

// ExportSnippet writes a standalone builder snippet for the notification
// into the XDG state directory and returns the file path.
func ExportSnippet(n *toast.Notification) (string, error) {
	name := filepath.Join(config.SnippetDirName, uuid.NewString()+".go")
	path, err := xdg.StateFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve snippet path: %w", err)
	}

	content := "// Snippet exported from the toast demo.\n" +
		"// Drop the chain into your program and handle the error from Build.\n\n" +
		toast.GenerateCode(*n) + "\n"

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return "", fmt.Errorf("failed to write snippet: %w", err)
	}

	return path, nil
}
