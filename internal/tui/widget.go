package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-list/internal/app"
	"github.com/MKhiriev/go-user-list/internal/service"
	"github.com/MKhiriev/go-user-list/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

var (
	defaultWriteClipboard = clipboard.WriteAll
	writeClipboard        = defaultWriteClipboard
)

// widgetModel is the user-list screen: the load control bound to the
// controller label, the users table and the error overlay.
type widgetModel struct {
	ctx        context.Context
	loader     service.ConfigLoader
	controller service.UserListController
	buildInfo  models.AppBuildInfo

	table   table.Model
	spinner spinner.Model
	users   []models.User
	env     string

	alert         *errorOverlayModel
	status        string
	errMsg        string
	showBuildInfo bool
	quitting      bool
}

func newWidgetModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) widgetModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return widgetModel{
		ctx:        ctx,
		loader:     services.ConfigLoader,
		controller: services.UserListController,
		buildInfo:  buildInfo,
		table:      newUsersTable(),
		spinner:    s,
	}
}

// Init loads the runtime config as soon as the widget is attached.
func (m widgetModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadConfig(), m.spinner.Tick)
}

func (m widgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configLoadedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgConfigLoadFailed + ": " + humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.env = msg.config.Env
		m.errMsg = ""
		return m, nil
	case usersLoadedMsg:
		if !msg.result.Succeeded() {
			m.errMsg = humanizeServerUnavailableError(msg.result.Err)
			return m, nil
		}
		m.errMsg = ""
		m.users = msg.result.Users
		m.table.SetRows(userRows(m.users))
		m.table.SetCursor(0)
		return m, nil
	case alertMsg:
		m.alert = &errorOverlayModel{message: msg.message}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy to clipboard: %v", msg.err)
			return m, nil
		}
		m.status = app.MsgUserCopied
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m widgetModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.alert != nil {
		if key.Matches(msg, keys.dismiss) {
			m.alert = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.info) || msg.String() == "esc" {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.load):
		return m.triggerLoad()
	case key.Matches(msg, keys.copy):
		return m.copySelected()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m widgetModel) triggerLoad() (tea.Model, tea.Cmd) {
	if m.controller.State().Busy() {
		return m, nil
	}

	results, err := m.controller.Trigger(m.ctx)
	switch {
	case errors.Is(err, service.ErrConfigNotLoaded):
		m.errMsg = app.MsgConfigNotLoaded
		return m, nil
	case errors.Is(err, service.ErrLoadInProgress):
		m.status = app.MsgLoadInProgress
		return m, nil
	case err != nil:
		m.errMsg = err.Error()
		return m, nil
	}

	m.errMsg = ""
	return m, waitForUsers(results)
}

func (m widgetModel) copySelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.users) {
		m.status = app.MsgNothingToCopy
		return m, clearStatusAfter(statusTTL)
	}
	return m, cmdCopyUser(m.users[idx])
}

func (m widgetModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.env))
	}
	if m.alert != nil {
		return appStyle.Render(m.alert.View())
	}

	var b strings.Builder

	title := "Users"
	if m.env != "" {
		title += " (" + m.env + ")"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	state := m.controller.State()
	if state.Busy() {
		b.WriteString(busyButtonStyle.Render(state.Label))
		b.WriteString(" " + m.spinner.View())
	} else {
		b.WriteString(buttonStyle.Render(state.Label))
	}
	b.WriteString("\n\n")

	if len(m.users) == 0 {
		b.WriteString(helpStyle.Render(app.MsgNoUsers))
	} else {
		b.WriteString(m.table.View())
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(helpLine(keys.load, keys.up, keys.down, keys.copy, keys.info, keys.quit)))

	return appStyle.Render(b.String())
}

func (m widgetModel) cmdLoadConfig() tea.Cmd {
	loader := m.loader
	ctx := m.ctx
	return func() tea.Msg {
		err := loader.Load(ctx)
		cfg, _ := loader.State().Config()
		return configLoadedMsg{config: cfg, err: err}
	}
}

// waitForUsers is the continuation of an accepted trigger.
func waitForUsers(results <-chan models.FetchResult) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-results
		if !ok {
			return nil
		}
		return usersLoadedMsg{result: res}
	}
}

func cmdCopyUser(u models.User) tea.Cmd {
	return func() tea.Msg {
		data, err := json.Marshal(u)
		if err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{err: writeClipboard(string(data))}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
