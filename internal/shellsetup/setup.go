// Package shellsetup prints shell functions that run rdrive and change the
// calling shell's directory to wherever the user quit.
package shellsetup

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strings"
)

// ParentShellFunc names the shell that started the process, or returns "".
type ParentShellFunc func() string

// Config controls shell detection.
type Config struct {
	// Shell overrides detection when set.
	Shell        string
	Getenv       func(string) string
	DetectParent ParentShellFunc
}

// WriteSetup writes the wrapper for the configured or detected shell.
// exe is the rdrive binary the wrapper should call.
func WriteSetup(w io.Writer, exe string, cfg Config) error {
	shell := canonicalShellName(normalizeShellName(cfg.Shell))
	if shell == "" {
		shell = detectShellInternal(runtime.GOOS, cfg.Getenv, cfg.DetectParent)
	}

	script, err := Script(shell, exe)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, script)
	return err
}

// Script returns the wrapper function for shell.
func Script(shell, exe string) (string, error) {
	switch canonicalShellName(normalizeShellName(shell)) {
	case "bash", "zsh", "sh", "ksh", "dash":
		q := posixQuote(exe)
		return fmt.Sprintf(posixScript, q, q), nil
	case "fish":
		q := fishQuote(exe)
		return fmt.Sprintf(fishScript, q, q), nil
	case "pwsh":
		q := pwshQuote(exe)
		return fmt.Sprintf(pwshScript, q, q), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (supported: bash, zsh, sh, ksh, fish, pwsh)", shell)
	}
}

const posixScript = `rdrive() {
    if [ "$#" -gt 0 ]; then
        command %s "$@"
        return $?
    fi

    rdrive_cd_file=$(mktemp "${TMPDIR:-/tmp}/rdrive.XXXXXX") || return 1
    command %s --cd-file "$rdrive_cd_file"
    rdrive_dest=$(cat "$rdrive_cd_file" 2>/dev/null)
    rm -f "$rdrive_cd_file"
    if [ -n "$rdrive_dest" ] && [ -d "$rdrive_dest" ]; then
        cd "$rdrive_dest" || return 1
    fi
}
`

const fishScript = `function rdrive
    if test (count $argv) -gt 0
        command %s $argv
        return $status
    end

    set -l cd_file (mktemp)
    command %s --cd-file $cd_file
    set -l dest (cat $cd_file 2>/dev/null)
    rm -f $cd_file
    if test -n "$dest" -a -d "$dest"
        builtin cd $dest
    end
end
`

const pwshScript = `function rdrive {
    if ($args.Count -gt 0) {
        & %s @args
        return
    }

    $cdFile = New-TemporaryFile
    try {
        & %s --cd-file $cdFile.FullName
        $dest = Get-Content $cdFile.FullName -Raw -ErrorAction SilentlyContinue
        if ($dest -and (Test-Path $dest.Trim() -PathType Container)) {
            Set-Location $dest.Trim()
        }
    } finally {
        Remove-Item $cdFile.FullName -ErrorAction SilentlyContinue
    }
}
`

func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fishQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func pwshQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func detectShellInternal(goos string, getenv func(string) string, parent ParentShellFunc) string {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	if shell := canonicalShellName(normalizeShellName(getenv("SHELL"))); shell != "" {
		return shell
	}

	if parent != nil {
		if shell := canonicalShellName(normalizeShellName(parent())); shell != "" {
			return shell
		}
	}

	if strings.EqualFold(goos, "windows") {
		return "pwsh"
	}
	return "bash"
}

func canonicalShellName(name string) string {
	if name == "powershell" {
		return "pwsh"
	}
	return name
}

// normalizeShellName reduces a path or command line to a lower-case program name.
func normalizeShellName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if quote := value[0]; quote == '"' || quote == '\'' {
		value = value[1:]
		if idx := strings.IndexByte(value, quote); idx >= 0 {
			value = value[:idx]
		}
	} else if idx := strings.IndexAny(value, " \t"); idx >= 0 {
		value = value[:idx]
	}

	value = strings.ReplaceAll(value, `\`, "/")
	base := strings.ToLower(path.Base(value))
	return strings.TrimSuffix(base, ".exe")
}
