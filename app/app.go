package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"switcherpanel/config"
	"switcherpanel/inspect"
	"switcherpanel/keys"
	"switcherpanel/log"
	"switcherpanel/panel"
	"switcherpanel/ui"
	"switcherpanel/ui/layout"
	"switcherpanel/ui/overlay"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	p := tea.NewProgram(
		newHome(ctx, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press, drag and release
	)
	_, err := p.Run()
	return err
}

var errPanelLocked = errors.New("panel is locked, press d to unlock")

type state int

const (
	stateDefault state = iota
	// stateHelp is the state when the key help overlay is displayed.
	stateHelp
)

type home struct {
	ctx context.Context

	// appConfig stores persistent application configuration
	appConfig *config.Config

	// -- State --

	// state is the current discrete state of the application
	state state

	width, height int
	constraints   layout.Constraints
	degradation   layout.Degradation

	// -- UI Components --

	// panel is the sliding switcher panel
	panel *ui.Panel
	// menu displays the bottom menu
	menu *ui.Menu
	// errBox displays error messages
	errBox *ui.ErrBox
	// textOverlay displays the key help
	textOverlay *overlay.TextOverlay

	// copyText writes to the system clipboard
	copyText func(string) error
	// recorder writes inspect snapshots, nil unless inspection is enabled
	recorder *inspect.Recorder
}

func newHome(ctx context.Context, cfg *config.Config) *home {
	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		state:     stateDefault,
		menu:      ui.NewMenu(),
		errBox:    ui.NewErrBox(),
		panel:     ui.NewPanel(cfg.PanelOptions(), demoTabs()),
		copyText:  clipboard.WriteAll,
	}
	if inspect.IsEnabled() {
		h.recorder = inspect.NewRecorder(inspect.Path())
	}
	h.panel.SetListener(panel.Listener{
		OnExpanded:  func() { h.statusChanged(panel.StatusExpanded) },
		OnCollapsed: func() { h.statusChanged(panel.StatusCollapsed) },
		OnFling:     func() { h.statusChanged(panel.StatusFling) },
	})
	h.syncMenu()
	return h
}

// statusChanged is the panel listener.
func (m *home) statusChanged(s panel.Status) {
	e := m.panel.Engine()
	log.Logger().Info("panel status changed",
		"status", s.String(),
		"top", e.Top(),
		"offset", e.Offset())
	m.menu.SetLastEvent(s.String())
}

// syncMenu copies the panel state into the menu's status line.
func (m *home) syncMenu() {
	e := m.panel.Engine()
	m.menu.SetPanelState(e.Status(), e.Offset(), !e.Enabled())
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height

	m.constraints = layout.ComputeConstraints(msg.Width, msg.Height, m.appConfig.SwitcherHeight, m.appConfig.CoverHeight)
	m.degradation = layout.ComputeDegradation(m.constraints)
	log.LayoutTrace("window %dx%d mode=%s panel=%dx%d", msg.Width, msg.Height,
		m.constraints.Mode, m.constraints.PanelWidth, m.constraints.PanelHeight)

	m.menu.SetSize(m.constraints.MenuWidth, m.constraints.MenuHeight)
	m.menu.SetCompact(m.degradation.IsCompactMode())
	m.errBox.SetSize(m.constraints.ErrBoxWidth, m.constraints.ErrBoxHeight)
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(int(float32(msg.Width) * 0.8))
	}

	if err := m.panel.SetSize(m.constraints, m.degradation); err != nil {
		return m.handleError(err)
	}
	m.syncMenu()
	return nil
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	if m.recorder != nil {
		if _, err := m.recorder.Record(m.snapshot()); err != nil {
			log.WarningLog.Printf("failed to write inspect snapshot: %v", err)
		}
	}
	return model, cmd
}

func (m *home) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case hideErrMsg:
		m.errBox.Clear()
	case keyupMsg:
		m.menu.ClearKeydown()
		return m, nil
	case ui.FrameMsg:
		cmd := m.panel.Frame(msg)
		m.syncMenu()
		return m, cmd
	case tea.MouseMsg:
		if m.state == stateHelp {
			return m, nil
		}
		_, cmd := m.panel.HandleMouse(msg)
		m.syncMenu()
		return m, cmd
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		return m, m.updateHandleWindowSizeEvent(msg)
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateHelp {
		m.state = stateDefault
		m.textOverlay = nil
		return m, nil
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	highlightCmd := m.keydownCallback(name)

	var cmd tea.Cmd
	switch name {
	case keys.KeyQuit:
		return m, tea.Quit
	case keys.KeyExpand, keys.KeyCollapse, keys.KeyToggle:
		if !m.panel.Enabled() {
			return m, tea.Batch(highlightCmd, m.handleError(errPanelLocked))
		}
		switch name {
		case keys.KeyExpand:
			cmd = m.panel.Expand()
		case keys.KeyCollapse:
			cmd = m.panel.Collapse()
		default:
			cmd = m.panel.Toggle()
		}
	case keys.KeyHideContent:
		m.panel.ToggleContent()
	case keys.KeyEnable:
		m.panel.SetEnabled(!m.panel.Enabled())
		log.InfoLog.Printf("panel enabled=%v", m.panel.Enabled())
	case keys.KeyPrevTab:
		m.panel.PrevTab()
	case keys.KeyNextTab:
		m.panel.NextTab()
	case keys.KeyCopy:
		cmd = m.copySnapshot()
	case keys.KeyHelp:
		m.showHelp()
	}
	m.syncMenu()
	return m, tea.Batch(highlightCmd, cmd)
}

func (m *home) showHelp() {
	m.state = stateHelp
	m.textOverlay = overlay.NewTextOverlay("Keys", m.menu.HelpView()+
		"\n\nDrag the content with the mouse. Release upwards to expand, downwards to collapse.")
	m.textOverlay.SetWidth(int(float32(m.width) * 0.8))
}

// copySnapshot copies a text dump of the UI state to the clipboard.
func (m *home) copySnapshot() tea.Cmd {
	text := m.snapshot().ToText()
	if err := m.copyText(text); err != nil {
		return m.handleError(fmt.Errorf("failed to copy UI state: %w", err))
	}
	log.Debug("copied %d bytes of UI state", len(text))
	// The error box doubles as a message line.
	m.errBox.SetError(errors.New("copied UI state to clipboard"))
	return m.hideErrAfter(3 * time.Second)
}

func (m *home) snapshot() *inspect.Snapshot {
	e := m.panel.Engine()
	appState := inspect.AppStateInfo{
		State:       "default",
		HasOverlay:  m.state == stateHelp,
		PanelStatus: e.Status().String(),
		SelectedTab: m.panel.Selected(),
		LastEvent:   m.menu.LastEvent(),
	}
	if m.state == stateHelp {
		appState.State = "help"
	}
	if err := m.errBox.Err(); err != nil {
		appState.ErrorMessage = err.Error()
	}

	c := m.constraints
	root := inspect.NewNode("App").
		WithBounds(0, 0, m.width, m.height).
		AddChild(m.panel.InspectNode()).
		AddChild(inspect.NewNode("Menu").WithBounds(0, c.PanelHeight, c.MenuWidth, c.MenuHeight)).
		AddChild(inspect.NewNode("ErrBox").WithBounds(0, c.PanelHeight+c.MenuHeight, c.ErrBoxWidth, c.ErrBoxHeight).
			WithContent(appState.ErrorMessage))

	return inspect.NewSnapshot().
		WithTerminal(m.width, m.height).
		WithAppState(appState).
		WithLayout(m.constraints, m.degradation).
		WithComponents(root).
		WithRegisteredStyles()
}

type keyupMsg struct{}

// keydownCallback clears the menu option highlighting after 500ms.
func (m *home) keydownCallback(name keys.KeyName) tea.Cmd {
	m.menu.Keydown(name)
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(500 * time.Millisecond):
		}

		return keyupMsg{}
	}
}

// hideErrMsg implements tea.Msg and clears the error text from the screen.
type hideErrMsg struct{}

// handleError handles all errors which get bubbled up to the app. sets the error message. We return a callback tea.Cmd that returns a hideErrMsg message
// which clears the error message after 3 seconds.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	m.errBox.SetError(err)
	return m.hideErrAfter(3 * time.Second)
}

func (m *home) hideErrAfter(d time.Duration) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(d):
		}

		return hideErrMsg{}
	}
}

func (m *home) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	panelView := lipgloss.NewStyle().PaddingLeft(m.constraints.PanelLeft).Render(m.panel.String())
	errView := m.errBox.String()
	if m.constraints.ShowMinWarning && m.errBox.Err() == nil {
		errView = ui.StatusStyles.Warning.Render(fmt.Sprintf("terminal too small, need %dx%d", layout.MinWidth, layout.MinHeight))
	}

	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		panelView,
		m.menu.String(),
		errView,
	)

	if m.state == stateHelp {
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true)
	}
	return mainView
}
