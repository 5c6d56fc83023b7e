//go:build !windows

package shellsetup

// DetectParentShellName is not needed outside Windows, where $SHELL is reliable.
func DetectParentShellName() string {
	return ""
}
