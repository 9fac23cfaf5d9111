package main

import (
	"os"
	"path/filepath"

	"github.com/iafilius/HealthScatter/src/dataset"
)

// Preference keys.
const (
	prefRecent   = "recentFiles"
	prefLastFile = "lastFile"
	prefXMetric  = "xMetric"
	prefYMetric  = "yMetric"
)

const maxRecent = 10

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// recentFiles lists remembered data files, newest first. Entries whose file
// has since disappeared are skipped.
func recentFiles(state *uiState) []string {
	if state == nil || state.app == nil {
		return nil
	}
	var out []string
	for _, p := range state.app.Preferences().StringList(prefRecent) {
		if p != "" && exists(p) {
			out = append(out, p)
		}
	}
	return out
}

// addRecentFile moves path to the front of the list, capped at maxRecent.
func addRecentFile(state *uiState, path string) {
	if state == nil || state.app == nil || path == "" {
		return
	}
	list := []string{path}
	for _, p := range recentFiles(state) {
		if len(list) == maxRecent {
			break
		}
		if p != path {
			list = append(list, p)
		}
	}
	state.app.Preferences().SetStringList(prefRecent, list)
}

func clearRecentFiles(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	state.app.Preferences().RemoveValue(prefRecent)
}

// savePrefs remembers the open file and the chosen metric pair.
func savePrefs(state *uiState) {
	if state == nil || state.app == nil {
		return
	}
	p := state.app.Preferences()
	p.SetString(prefLastFile, state.filePath)
	p.SetString(prefXMetric, state.chosenX.String())
	p.SetString(prefYMetric, state.chosenY.String())
}

// savedMetric reads a remembered metric, ok only if it still belongs to axis.
func savedMetric(state *uiState, key string, axis dataset.Axis) (dataset.Metric, bool) {
	m, err := dataset.ParseMetric(state.app.Preferences().String(key))
	if err != nil || m.Axis() != axis {
		return 0, false
	}
	return m, true
}

// loadPrefs restores the last file unless one was given on the command line,
// and the last axes unless -x / -y were given.
func loadPrefs(state *uiState, fileFromFlag, xFromFlag, yFromFlag bool) {
	if state == nil || state.app == nil {
		return
	}
	if f := state.app.Preferences().String(prefLastFile); !fileFromFlag && f != "" && exists(f) {
		state.filePath = f
	}
	if m, ok := savedMetric(state, prefXMetric, dataset.AxisX); ok && !xFromFlag {
		state.chosenX = m
	}
	if m, ok := savedMetric(state, prefYMetric, dataset.AxisY); ok && !yFromFlag {
		state.chosenY = m
	}
}

// truncatePath shortens p to at most n bytes for menus and the status label,
// keeping the file name and as much of the leading directory as fits.
func truncatePath(p string, n int) string {
	if len(p) <= n {
		return p
	}
	const ellipsis = "..."
	base := filepath.Base(p)
	room := n - len(base) - len(ellipsis) - 1
	if room <= 0 {
		return ellipsis + base
	}
	dir := filepath.Dir(p)
	if len(dir) > room {
		dir = dir[:room]
	}
	return dir + "/" + ellipsis + base
}
