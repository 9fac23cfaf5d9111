package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/iafilius/HealthScatter/src/config"
	"github.com/iafilius/HealthScatter/src/dataset"
	"github.com/iafilius/HealthScatter/src/logging"
	"github.com/iafilius/HealthScatter/src/render"
	"github.com/iafilius/HealthScatter/src/scatter"
)

// exportName is the file name of one axis combination, e.g. poverty_obesity.png.
func exportName(x, y dataset.Metric, ext string) string {
	return fmt.Sprintf("%s_%s.%s", x, y, ext)
}

func caption(path string) string {
	if path == "" {
		return ""
	}
	return "Source: " + filepath.Base(path)
}

// RunExportMode renders every X/Y metric combination as PNG and SVG under
// outDir. It runs headlessly without creating a UI window.
func RunExportMode(cfg config.Config, outDir string) error {
	defer logging.TimeTrack(time.Now(), "[export] all combinations")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}
	recs, err := dataset.Load(cfg.DataFile)
	if err != nil {
		return err
	}
	opts, err := cfg.ToOptions()
	if err != nil {
		return err
	}
	s, err := scatter.NewSession(recs, opts)
	if err != nil {
		return err
	}
	ro := render.Options{Caption: caption(cfg.DataFile)}
	n := 0
	for _, x := range dataset.XMetrics {
		if _, err := s.SelectX(x); err != nil {
			return err
		}
		for _, y := range dataset.YMetrics {
			if _, err := s.SelectY(y); err != nil {
				return err
			}
			sc := s.Scene()
			if err := render.SavePNG(filepath.Join(outDir, exportName(x, y, "png")), sc, ro); err != nil {
				return fmt.Errorf("png %s/%s: %w", x, y, err)
			}
			if err := render.SaveSVG(filepath.Join(outDir, exportName(x, y, "svg")), sc, ro); err != nil {
				return fmt.Errorf("svg %s/%s: %w", x, y, err)
			}
			n += 2
		}
	}
	logging.Infof("[export] wrote %d files to %s", n, outDir)
	return nil
}

// exportChart saves the current target scene through a save dialog.
func exportChart(state *uiState, format string) {
	if state == nil || state.window == nil {
		return
	}
	if state.session == nil {
		dialog.ShowInformation("Export", "No chart to export.", state.window)
		return
	}
	sc := state.session.Scene()
	ro := render.Options{Caption: caption(state.filePath)}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		var werr error
		switch format {
		case "svg":
			werr = render.WriteSVG(wc, sc, ro)
		default:
			werr = render.WritePNG(wc, sc, ro)
		}
		if werr != nil {
			logging.Errorf("[export] %s: %v", wc.URI().Path(), werr)
			dialog.ShowError(werr, state.window)
			return
		}
		logging.Infof("[export] wrote %s", wc.URI().Path())
	}, state.window)
	fs.SetFileName(exportName(sc.X.Metric, sc.Y.Metric, format))
	fs.Show()
}
