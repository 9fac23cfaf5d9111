package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/iafilius/HealthScatter/src/config"
	"github.com/iafilius/HealthScatter/src/dataset"
	"github.com/iafilius/HealthScatter/src/logging"
	"github.com/iafilius/HealthScatter/src/scatter"
)

// light theme wrapper; the chart is drawn on white
type lightTheme struct{}

func (d *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}
func (d *lightTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *lightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *lightTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

type uiState struct {
	app      fyne.App
	window   fyne.Window
	cfg      config.Config
	filePath string

	// preferred axes, applied on every load and persisted
	chosenX, chosenY dataset.Metric

	session *scatter.Session
	engine  *scatter.Engine
	anim    *fyne.Animation

	view      *chartView
	xLabels   [3]*axisLabel
	yLabels   [3]*axisLabel
	fileLabel *widget.Label
}

func main() {
	var (
		fileFlag   string
		configFlag string
		levelFlag  string
		exportFlag string
		xFlag      string
		yFlag      string
	)
	flag.StringVar(&fileFlag, "file", "", "Path to the state data CSV")
	flag.StringVar(&configFlag, "config", "", "Optional YAML config file")
	flag.StringVar(&levelFlag, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&exportFlag, "export", "", "Write every axis combination as PNG and SVG into this directory and exit")
	flag.StringVar(&xFlag, "x", "", "Initial X metric: poverty, age, income")
	flag.StringVar(&yFlag, "y", "", "Initial Y metric: obesity, smokes, healthcare")
	flag.Parse()

	cfg, err := config.Load(configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	cfg.ApplyEnv()
	if fileFlag != "" {
		cfg.DataFile = fileFlag
	}
	if levelFlag != "" {
		cfg.LogLevel = levelFlag
	}
	if xFlag != "" {
		cfg.InitialX = xFlag
	}
	if yFlag != "" {
		cfg.InitialY = yFlag
	}
	opts, err := cfg.ToOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	logging.SetLogLevel(cfg.LogLevel)

	if exportFlag != "" {
		if err := RunExportMode(cfg, exportFlag); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	a := app.NewWithID("com.healthscatter.viewer")
	a.Settings().SetTheme(&lightTheme{})
	w := a.NewWindow("Health Scatter")
	w.Resize(fyne.NewSize(1100, 680))

	state := &uiState{
		app:      a,
		window:   w,
		cfg:      cfg,
		filePath: cfg.DataFile,
		chosenX:  opts.InitialX,
		chosenY:  opts.InitialY,
		engine:   scatter.NewEngine(opts.Transition),
	}
	loadPrefs(state, fileFlag != "", xFlag != "", yFlag != "")

	state.fileLabel = widget.NewLabel(truncatePath(state.filePath, 60))
	state.view = newChartView(state)
	yBox := container.NewVBox(layout.NewSpacer())
	for i, m := range dataset.YMetrics {
		state.yLabels[i] = newAxisLabel(m, func(m dataset.Metric) { selectMetric(state, dataset.AxisY, m) })
		yBox.Add(state.yLabels[i])
	}
	yBox.Add(layout.NewSpacer())
	xBox := container.NewVBox()
	for i, m := range dataset.XMetrics {
		state.xLabels[i] = newAxisLabel(m, func(m dataset.Metric) { selectMetric(state, dataset.AxisX, m) })
		xBox.Add(state.xLabels[i])
	}

	top := container.NewHBox(
		widget.NewButton("Open…", func() { openFileDialog(state) }),
		widget.NewButton("Reload", func() { loadAll(state) }),
		widget.NewLabel("File:"), state.fileLabel,
	)
	content := container.NewBorder(top, xBox, yBox, nil, state.view)
	w.SetContent(content)
	w.SetOnClosed(func() { savePrefs(state) })

	buildMenus(state)
	loadAll(state)

	w.ShowAndRun()
}

// menus and dialogs
func buildMenus(state *uiState) {
	if state == nil || state.window == nil || state.app == nil {
		return
	}
	var items []*fyne.MenuItem
	for _, f := range recentFiles(state) {
		f := f
		items = append(items, fyne.NewMenuItem(truncatePath(f, 60), func() {
			state.filePath = f
			savePrefs(state)
			loadAll(state)
		}))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { clearRecentFiles(state); buildMenus(state) })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { openFileDialog(state) }),
		fyne.NewMenuItem("Reload", func() { loadAll(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PNG…", func() { exportChart(state, "png") }),
		fyne.NewMenuItem("Export SVG…", func() { exportChart(state, "svg") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := state.window.Canvas()
	if canv != nil {
		for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { openFileDialog(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { loadAll(state) })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: mod}, func(fyne.Shortcut) { exportChart(state, "png") })
			canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { state.window.Close() })
		}
	}
}

// file open dialog
func openFileDialog(state *uiState) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		defer rc.Close()
		state.filePath = rc.URI().Path()
		addRecentFile(state, state.filePath)
		savePrefs(state)
		buildMenus(state)
		loadAll(state)
	}, state.window)
	d.Show()
}

// loadAll reads the data file and starts a new session. On failure the error
// is shown and no chart is drawn.
func loadAll(state *uiState) {
	if state.fileLabel != nil {
		state.fileLabel.SetText(truncatePath(state.filePath, 60))
	}
	stopAnimation(state)
	state.session = nil
	recs, err := dataset.Load(state.filePath)
	if err == nil {
		state.session, err = newSession(state, recs)
	}
	if err != nil {
		logging.Errorf("[viewer] load %s: %v", state.filePath, err)
		syncLabels(state)
		if state.view != nil {
			state.view.Refresh()
		}
		if state.window != nil {
			dialog.ShowError(err, state.window)
		}
		return
	}
	logging.Infof("[viewer] loaded %d states from %s", len(recs), state.filePath)
	syncLabels(state)
	if state.view != nil {
		state.view.Refresh()
	}
}

func newSession(state *uiState, recs []dataset.Record) (*scatter.Session, error) {
	opts, err := state.cfg.ToOptions()
	if err != nil {
		return nil, err
	}
	opts.InitialX, opts.InitialY = state.chosenX, state.chosenY
	s, err := scatter.NewSession(recs, opts)
	if err != nil {
		return nil, err
	}
	state.engine = scatter.NewEngine(opts.Transition)
	s.Subscribe(func(sc scatter.Scene, animate bool) { showScene(state, sc, animate) })
	return s, nil
}

// showScene retargets the engine and, when animating, drives redraws until
// the transition ends. A newer scene stops the previous animation; the
// engine continues from wherever the marks are.
func showScene(state *uiState, sc scatter.Scene, animate bool) {
	stopAnimation(state)
	now := time.Now()
	state.engine.Update(sc, now, animate)
	if state.view == nil {
		return
	}
	if !animate || !state.engine.Animating(now) {
		state.view.Refresh()
		return
	}
	engine, view := state.engine, state.view
	anim := fyne.NewAnimation(engine.Duration(), func(p float32) {
		if p >= 1 {
			engine.Finish()
		}
		view.Refresh()
	})
	anim.Curve = fyne.AnimationLinear
	state.anim = anim
	anim.Start()
}

func stopAnimation(state *uiState) {
	if state.anim != nil {
		state.anim.Stop()
		state.anim = nil
	}
}

// selectMetric handles a click on an axis label.
func selectMetric(state *uiState, axis dataset.Axis, m dataset.Metric) {
	if state.session == nil {
		return
	}
	changed, err := state.session.Select(axis, m)
	if err != nil {
		logging.Warnf("[viewer] select %s %s: %v", axis, m, err)
		if state.window != nil {
			dialog.ShowError(err, state.window)
		}
		return
	}
	if !changed {
		return
	}
	state.chosenX, state.chosenY = state.session.ChosenX(), state.session.ChosenY()
	savePrefs(state)
	syncLabels(state)
}

// syncLabels copies the session's label state onto the label widgets.
func syncLabels(state *uiState) {
	for _, axis := range []dataset.Axis{dataset.AxisX, dataset.AxisY} {
		widgets := state.xLabels
		if axis == dataset.AxisY {
			widgets = state.yLabels
		}
		var labels [3]scatter.Label
		if state.session != nil {
			labels = state.session.Labels(axis)
		}
		for i, w := range widgets {
			if w != nil {
				w.SetActive(labels[i].Active)
			}
		}
	}
}
