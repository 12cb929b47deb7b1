// Package tui is the interactive controller for the seismic cube viewer. It
// is a single bubbletea event loop: every navigation, visibility or color
// change funnels through Update, which refetches what the change invalidated
// and recomposes the whole scene exactly once after the fetches settle. There
// is no incremental patching and no shared mutable state outside the model.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"seiscube/internal/models"
	"seiscube/pkg/client"
	"seiscube/pkg/colorscale"
	"seiscube/pkg/render"
	"seiscube/pkg/scene"
)

type cubeLoadedMsg struct {
	info *models.CubeDescriptor
	err  error
}

type sliceLoadedMsg struct {
	axis    models.SliceType
	gen     int
	payload *models.SlicePayload
	err     error
}

type drawDoneMsg struct {
	err error
}

type keyMap struct {
	Prev       key.Binding
	Next       key.Binding
	CycleAxis  key.Binding
	ToggleIL   key.Binding
	ToggleXL   key.Binding
	ToggleS    key.Binding
	CycleColor key.Binding
	Redraw     key.Binding
	Dismiss    key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev slice")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next slice")),
		CycleAxis:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch axis")),
		ToggleIL:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "toggle inline")),
		ToggleXL:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "toggle xline")),
		ToggleS:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "toggle depth")),
		CycleColor: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color scheme")),
		Redraw:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redraw")),
		Dismiss:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "dismiss errors")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.CycleAxis, k.ToggleIL, k.ToggleXL, k.ToggleS, k.CycleColor, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.CycleAxis},
		{k.ToggleIL, k.ToggleXL, k.ToggleS},
		{k.CycleColor, k.Redraw, k.Dismiss, k.Quit},
	}
}

// Model is the controller state. All mutation happens inside Update.
type Model struct {
	fetcher  client.Fetcher
	renderer render.Renderer
	opts     render.Options

	cube       *models.CubeDescriptor
	indices    models.SliceIndices
	visibility models.SliceVisibility
	color      models.ColorSpec
	payloads   map[models.SliceType]*models.SlicePayload

	// sliceErrs records the latest fetch failure per axis. Failures only
	// surface as a warning when they leave the scene with no surfaces at
	// all; as long as another slice still draws, the scene degrades
	// silently.
	sliceErrs map[models.SliceType]string

	// gen stamps every slice fetch per axis; a response whose stamp no
	// longer matches lost the race and is discarded (latest request wins).
	gen [3]int

	// pending counts slice fetches in flight. The scene is only
	// recomposed when pending reaches zero, so it never mixes payload
	// generations.
	pending int

	// dirty marks that state changed since the last recompose.
	dirty bool

	// drawing marks an in-flight draw submission.
	drawing bool

	schemes    []string
	schemeIdx  int
	activeAxis models.SliceType

	spin spinner.Model
	keys keyMap
	help help.Model

	status   string
	warning  string
	fetchErr string
	vizErr   string

	width    int
	quitting bool
}

// New builds the controller. The custom color list, when non-empty, joins
// the scheme rotation.
func New(fetcher client.Fetcher, renderer render.Renderer, opts render.Options,
	color models.ColorSpec, visibility models.SliceVisibility) Model {

	schemes := colorscale.Schemes()
	if len(color.Custom) == 0 {
		schemes = schemes[:len(schemes)-1] // drop the custom marker
	}
	idx := 0
	for i, s := range schemes {
		if s == color.Scheme {
			idx = i
			break
		}
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		fetcher:    fetcher,
		renderer:   renderer,
		opts:       opts,
		color:      color,
		visibility: visibility,
		payloads:   make(map[models.SliceType]*models.SlicePayload),
		sliceErrs:  make(map[models.SliceType]string),
		schemes:    schemes,
		schemeIdx:  idx,
		spin:       sp,
		keys:       defaultKeyMap(),
		help:       help.New(),
		status:     "loading cube metadata...",
	}
}

// Init starts the spinner and requests the cube descriptor.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadCubeCmd(m.fetcher))
}

func loadCubeCmd(f client.Fetcher) tea.Cmd {
	return func() tea.Msg {
		info, err := f.CubeInfo(context.Background())
		return cubeLoadedMsg{info: info, err: err}
	}
}

func fetchSliceCmd(f client.Fetcher, axis models.SliceType, idx, gen int) tea.Cmd {
	return func() tea.Msg {
		payload, err := f.Slice(context.Background(), axis, idx)
		return sliceLoadedMsg{axis: axis, gen: gen, payload: payload, err: err}
	}
}

func drawCmd(r render.Renderer, plan scene.ScenePlan, opts render.Options) tea.Cmd {
	return func() tea.Msg {
		return drawDoneMsg{err: r.Draw(plan, opts)}
	}
}

// Update is the single dispatch point for every event.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case cubeLoadedMsg:
		return m.onCubeLoaded(msg)

	case sliceLoadedMsg:
		return m.onSliceLoaded(msg)

	case drawDoneMsg:
		return m.onDrawDone(msg)

	case tea.KeyMsg:
		return m.onKey(msg)
	}
	return m, nil
}

// onCubeLoaded installs a new descriptor wholesale: indices recentered,
// payload cache emptied, all three axes refetched. A failed load keeps the
// previously displayed cube untouched.
func (m Model) onCubeLoaded(msg cubeLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.fetchErr = msg.err.Error()
		return m, nil
	}
	m.fetchErr = ""
	m.cube = msg.info
	m.indices = models.SliceIndices{
		Inline: msg.info.Shape[0] / 2,
		Xline:  msg.info.Shape[1] / 2,
		Sample: msg.info.Shape[2] / 2,
	}
	m.payloads = make(map[models.SliceType]*models.SlicePayload)
	m.sliceErrs = make(map[models.SliceType]string)
	m.status = "cube loaded"
	m.dirty = true

	cmds := make([]tea.Cmd, 0, 3)
	for _, t := range models.SliceTypes {
		m.gen[t]++
		m.pending++
		cmds = append(cmds, fetchSliceCmd(m.fetcher, t, m.indices.Get(t), m.gen[t]))
	}
	return m, tea.Batch(cmds...)
}

// onSliceLoaded settles one in-flight fetch. Stale generations are
// discarded; per-axis failures leave that payload absent and the other
// axes proceed.
func (m Model) onSliceLoaded(msg sliceLoadedMsg) (tea.Model, tea.Cmd) {
	m.pending--
	if msg.gen == m.gen[msg.axis] {
		if msg.err != nil {
			m.sliceErrs[msg.axis] = fmt.Sprintf("%s slice unavailable: %v", msg.axis, msg.err)
			m.payloads[msg.axis] = nil
		} else {
			delete(m.sliceErrs, msg.axis)
			m.payloads[msg.axis] = msg.payload
		}
	}
	return m.recomposeIfSettled()
}

func (m Model) onDrawDone(msg drawDoneMsg) (tea.Model, tea.Cmd) {
	m.drawing = false
	if msg.err != nil {
		m.vizErr = (&models.VizError{Stage: "draw", Err: msg.err}).Error()
	} else {
		m.status = "scene drawn"
	}
	// A change may have arrived while the draw was in flight.
	return m.recomposeIfSettled()
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Dismiss):
		m.fetchErr, m.vizErr, m.warning = "", "", ""
		m.sliceErrs = make(map[models.SliceType]string)
		return m, nil
	}

	if m.cube == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return m.moveIndex(-1)

	case key.Matches(msg, m.keys.Next):
		return m.moveIndex(+1)

	case key.Matches(msg, m.keys.CycleAxis):
		m.activeAxis = models.SliceType((int(m.activeAxis) + 1) % len(models.SliceTypes))
		return m, nil

	case key.Matches(msg, m.keys.ToggleIL):
		return m.toggleVisibility(models.InlineSlice)

	case key.Matches(msg, m.keys.ToggleXL):
		return m.toggleVisibility(models.XlineSlice)

	case key.Matches(msg, m.keys.ToggleS):
		return m.toggleVisibility(models.SampleSlice)

	case key.Matches(msg, m.keys.CycleColor):
		m.schemeIdx = (m.schemeIdx + 1) % len(m.schemes)
		m.color.Scheme = m.schemes[m.schemeIdx]
		m.dirty = true
		return m.recomposeIfSettled()

	case key.Matches(msg, m.keys.Redraw):
		m.dirty = true
		return m.recomposeIfSettled()
	}
	return m, nil
}

// moveIndex steps the active axis and refetches only that axis, stamped
// with a fresh generation so any slower in-flight response is discarded.
func (m Model) moveIndex(delta int) (tea.Model, tea.Cmd) {
	axis := m.activeAxis
	idx := m.cube.ClampIndex(axis, m.indices.Get(axis)+delta)
	if idx == m.indices.Get(axis) {
		return m, nil
	}
	m.indices = m.indices.With(axis, idx)
	m.gen[axis]++
	m.pending++
	m.dirty = true
	m.status = fmt.Sprintf("fetching %s slice %d", axis, idx)
	return m, fetchSliceCmd(m.fetcher, axis, idx, m.gen[axis])
}

// toggleVisibility flips one slice without refetching: its payload stays
// cached, so restoring visibility costs one recompose only.
func (m Model) toggleVisibility(axis models.SliceType) (tea.Model, tea.Cmd) {
	m.visibility = m.visibility.Toggled(axis)
	m.dirty = true
	return m.recomposeIfSettled()
}

// recomposeIfSettled rebuilds and submits the full scene once all inputs
// have settled: no fetch in flight, no draw in flight, and a change owed.
// Composition is pure, so rebuilding from scratch is always safe.
func (m Model) recomposeIfSettled() (tea.Model, tea.Cmd) {
	if !m.dirty || m.pending > 0 || m.drawing || m.cube == nil {
		return m, nil
	}
	m.dirty = false

	plan, err := scene.Compose(scene.ViewState{
		Cube:       m.cube,
		Indices:    m.indices,
		Visibility: m.visibility,
		Payloads:   m.payloads,
		Color:      m.color,
	})
	if err != nil {
		m.vizErr = err.Error()
		return m, nil
	}
	m.warning = ""
	if len(m.sliceErrs) > 0 && !hasSurface(plan) {
		for _, t := range models.SliceTypes {
			if msg, ok := m.sliceErrs[t]; ok {
				m.warning = msg
				break
			}
		}
	}
	m.drawing = true
	m.status = "drawing scene..."
	return m, drawCmd(m.renderer, plan, m.opts)
}

func hasSurface(plan scene.ScenePlan) bool {
	for _, p := range plan.Primitives {
		if _, ok := p.(models.Surface); ok {
			return true
		}
	}
	return false
}
