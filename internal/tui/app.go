package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskboard/internal/engine"
	"github.com/jask/jaskboard/internal/source"
)

// App renders the widget board and forwards intents to the orchestrator.
// All widget state lives in the orchestrator; the app holds only the last
// snapshot plus view concerns (cursor, move mode, picker).
type App struct {
	orch      *engine.Orchestrator
	catalog   *source.Catalog
	snapshots <-chan []engine.Widget

	widgets    []engine.Widget
	cursor     int
	drag       *engine.DragSession
	moveTarget int
	mode       appMode
	picker     list.Model
	spin       spinner.Model
	status     string
	width      int
	height     int
}

type appMode string

const (
	modeBrowse appMode = "browse"
	modeMove   appMode = "move"
	modePicker appMode = "picker"
)

// pickerItem adapts a catalog entry to the bubbles list.
type pickerItem struct {
	entry source.Entry
}

func (i pickerItem) Title() string       { return i.entry.Title }
func (i pickerItem) Description() string { return i.entry.Type }
func (i pickerItem) FilterValue() string { return i.entry.Type + " " + i.entry.Title }

func New(orch *engine.Orchestrator, catalog *source.Catalog) *App {
	entries := catalog.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = pickerItem{entry: e}
	}
	picker := list.New(items, list.NewDefaultDelegate(), 40, 14)
	picker.Title = "Add widget"
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return &App{
		orch:      orch,
		catalog:   catalog,
		snapshots: orch.Subscribe(),
		widgets:   orch.Widgets(),
		drag:      engine.NewDragSession(),
		mode:      modeBrowse,
		picker:    picker,
		spin:      sp,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.waitForSnapshot(), a.spin.Tick)
}

// waitForSnapshot blocks on the orchestrator's snapshot channel. Fetch
// completions, debounced refreshes and every other dispatch arrive here.
func (a *App) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-a.snapshots
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.picker.SetSize(m.Width-4, m.Height-4)
	case snapshotMsg:
		a.widgets = []engine.Widget(m)
		if a.cursor >= len(a.widgets) {
			a.cursor = len(a.widgets) - 1
		}
		if a.cursor < 0 {
			a.cursor = 0
		}
		return a, a.waitForSnapshot()
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(m)
		return a, cmd
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	case tea.KeyMsg:
		switch a.mode {
		case modePicker:
			return a.handlePickerKey(m)
		case modeMove:
			return a.handleMoveKey(m)
		default:
			return a.handleBrowseKey(m)
		}
	}
	return a, nil
}

func (a *App) handleBrowseKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.widgets)-1 {
			a.cursor++
		}
	case "a":
		a.mode = modePicker
		a.status = ""
	case "x":
		if len(a.widgets) == 0 {
			return a, nil
		}
		w := a.widgets[a.cursor]
		a.orch.RemoveWidget(w.ID)
		a.status = "removed " + a.catalog.Title(w.Type)
	case "r":
		if len(a.widgets) == 0 {
			return a, nil
		}
		w := a.widgets[a.cursor]
		a.orch.RefreshWidget(w)
		a.status = "refreshing " + a.catalog.Title(w.Type)
	case "m":
		if len(a.widgets) < 2 {
			a.status = "nothing to reorder"
			return a, nil
		}
		a.mode = modeMove
		a.drag.Start(a.cursor)
		a.moveTarget = a.cursor
		a.status = ""
	}
	return a, nil
}

func (a *App) handleMoveKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.drag.Cancel()
		a.mode = modeBrowse
		a.status = "move cancelled"
	case "up", "k":
		if a.moveTarget > 0 {
			a.moveTarget--
			a.drag.HoverOver(a.moveTarget)
		}
	case "down", "j":
		if a.moveTarget < len(a.widgets)-1 {
			a.moveTarget++
			a.drag.HoverOver(a.moveTarget)
		}
	case "enter", " ":
		from, to, ok := a.drag.Drop()
		a.mode = modeBrowse
		if !ok {
			a.status = "move cancelled"
			return a, nil
		}
		a.orch.ReorderWidgets(from, to)
		a.cursor = to
		a.status = "moved"
	}
	return a, nil
}

func (a *App) handlePickerKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "esc":
		a.mode = modeBrowse
		return a, nil
	case "enter":
		item, ok := a.picker.SelectedItem().(pickerItem)
		a.mode = modeBrowse
		if !ok {
			return a, nil
		}
		return a, a.addWidgetCmd(item.entry.Type)
	}
	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(m)
	return a, cmd
}

// commands
func (a *App) addWidgetCmd(widgetType string) tea.Cmd {
	return func() tea.Msg {
		if _, err := a.orch.AddWidget(widgetType); err != nil {
			return errMsg{err}
		}
		return statusMsg("added " + a.catalog.Title(widgetType))
	}
}

// messages
type snapshotMsg []engine.Widget

type statusMsg string

type errMsg struct{ error }
