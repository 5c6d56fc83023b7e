package view

import (
	fsutil "github.com/kk-code-lab/rdrive/internal/fs"
	statepkg "github.com/kk-code-lab/rdrive/internal/state"
	"github.com/kk-code-lab/rdrive/internal/textutil"
	"github.com/kk-code-lab/rdrive/internal/tree"
)

// DirDetail is the detail column for directories.
const DirDetail = "<DIR>"

// UnknownDetail stands in for metadata that could not be read.
const UnknownDetail = "?"

// Build describes the screen for state. It is pure: the same state always
// yields the same layout.
func Build(state *statepkg.NavState) Layout {
	return Layout{Regions: []Region{
		buildPath(state),
		buildListing(state),
		buildStatus(state),
	}}
}

func buildPath(state *statepkg.NavState) Region {
	text := HomeLabel
	if !state.AtRoot() {
		text = state.CurrentPath
	}
	return Region{
		Kind:     RegionPath,
		Height:   1,
		Border:   BorderBottom,
		Lines:    []Line{{Text: text, Style: StylePlain}},
		Selected: -1,
	}
}

func buildListing(state *statepkg.NavState) Region {
	region := Region{
		Kind:       RegionListing,
		Selectable: true,
		Selected:   state.Selection,
	}

	if state.AtRoot() {
		for i := 0; i < state.Volumes.Len(); i++ {
			vol, _ := state.Volumes.At(i)
			region.Lines = append(region.Lines, Line{Text: vol.Label, Style: StyleVolume})
		}
	} else {
		for _, node := range state.CurrentDir.Entries() {
			region.Lines = append(region.Lines, entryLine(node))
		}
	}

	if len(region.Lines) == 0 {
		region.Selectable = false
		region.Selected = -1
		if !state.AtRoot() {
			region.Lines = []Line{{Text: EmptyPlaceholder, Style: StylePlaceholder}}
		}
	}
	return region
}

func entryLine(node tree.Node) Line {
	line := Line{Text: node.Name(), Hidden: node.Hidden()}
	if node.IsDir() {
		line.Style = StyleDirectory
		line.Detail = DirDetail
		return line
	}
	line.Style = StyleFile
	line.Detail = fileDetail(node.Meta())
	return line
}

func fileDetail(meta *fsutil.Meta) string {
	if meta == nil {
		return UnknownDetail
	}
	detail := textutil.FormatSize(meta.Size)
	if modified := textutil.FormatModTime(meta.Modified); modified != "" {
		detail += "  " + modified
	}
	return detail
}

func buildStatus(state *statepkg.NavState) Region {
	line := Line{Text: helpText(state), Style: StyleHelp}
	switch state.Status.Kind {
	case statepkg.StatusError:
		line = Line{Text: state.Status.Text, Style: StyleError}
	case statepkg.StatusInfo:
		line = Line{Text: state.Status.Text, Style: StyleInfo}
	}
	return Region{
		Kind:     RegionStatus,
		Height:   1,
		Border:   BorderTop,
		Lines:    []Line{line},
		Selected: -1,
	}
}
