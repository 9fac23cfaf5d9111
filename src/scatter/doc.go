// Package scatter holds the chart model behind the state health scatter plot:
// axis label registry, linear scales, scene rendering, transitions and the
// session that reacts to axis label clicks.
//
// Rendering here is renderer-agnostic. A Scene describes axes, ticks and one
// mark per record in plot-area pixel coordinates; the Fyne viewer and the
// PNG/SVG exporters draw it.
package scatter
