package textutil

import (
	"strconv"
	"time"
)

// ModTimeLayout is used for modification times in listings.
const ModTimeLayout = "2006-01-02 15:04"

// FormatSize returns a short human readable size such as 512B or 4KB.
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	units := []string{"KB", "MB", "GB", "TB"}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}
	val := (size + div/2) / div
	if val >= unit && exp < len(units)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + units[exp]
}

// FormatModTime renders t in local time, or "" for the zero time.
func FormatModTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(ModTimeLayout)
}
