package app

import (
	"fmt"
	"os"

	"github.com/kk-code-lab/rdrive/internal/logging"
)

// WriteLastDir records the directory shown at exit so a shell wrapper can cd
// into it. The file is left empty when the volume list was showing.
func (app *Application) WriteLastDir(file string) error {
	dir := app.state.CurrentPath
	// Owner-only; the file usually lives in a shared temp directory.
	if err := os.WriteFile(file, []byte(dir), 0o600); err != nil {
		return fmt.Errorf("write last directory: %w", err)
	}
	logging.Debug("last directory written", logging.String("file", file), logging.String("dir", dir))
	return nil
}
