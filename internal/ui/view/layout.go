// Package view turns navigation state into a backend independent description
// of the screen. It never draws and never touches the filesystem.
package view

// HomeLabel is shown in the path region at the volume list.
const HomeLabel = "Home"

// EmptyPlaceholder is the single non-selectable line of an empty directory.
const EmptyPlaceholder = "(empty)"

type RegionKind int

const (
	RegionPath RegionKind = iota
	RegionListing
	RegionStatus
)

func (k RegionKind) String() string {
	switch k {
	case RegionPath:
		return "path"
	case RegionListing:
		return "listing"
	case RegionStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Border marks which edge of a region carries a separator line.
type Border int

const (
	BorderNone Border = iota
	BorderTop
	BorderBottom
)

type LineStyle int

const (
	StylePlain LineStyle = iota
	StyleDirectory
	StyleFile
	StyleVolume
	StylePlaceholder
	StyleHelp
	StyleInfo
	StyleError
)

// Line is one row of text with an optional right aligned detail column.
type Line struct {
	Text   string
	Detail string
	Style  LineStyle
	Hidden bool
}

// Region is a horizontal band of the screen. Height zero means the region
// takes whatever rows the fixed regions leave.
type Region struct {
	Kind       RegionKind
	Height     int
	Border     Border
	Lines      []Line
	Selectable bool
	// Selected indexes Lines, or is -1.
	Selected int
}

// Layout lists regions top to bottom.
type Layout struct {
	Regions []Region
}

// Region returns the first region of the given kind.
func (l Layout) Region(kind RegionKind) (Region, bool) {
	for _, region := range l.Regions {
		if region.Kind == kind {
			return region, true
		}
	}
	return Region{}, false
}

// FixedHeight sums the rows used by fixed height regions and their borders.
func (l Layout) FixedHeight() int {
	total := 0
	for _, region := range l.Regions {
		total += region.Height
		if region.Border != BorderNone {
			total++
		}
	}
	return total
}
