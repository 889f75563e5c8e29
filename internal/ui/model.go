// Package ui is the terminal rendition of the field dashboard.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hatake/internal/advisor"
	"hatake/internal/models"
)

// Builder produces dashboards. *dashboard.Service satisfies it.
type Builder interface {
	Build(ctx context.Context) *models.Dashboard
	Refresh(ctx context.Context) *models.Dashboard
}

// Model represents the terminal dashboard state
type Model struct {
	builder   Builder
	catalog   *advisor.Catalog
	labels    labels
	timeout   time.Duration
	spinner   spinner.Model
	loading   bool
	dashboard *models.Dashboard
	width     int
	height    int
}

// NewModel creates a model that renders text from catalog.
// timeout bounds each dashboard build.
func NewModel(builder Builder, catalog *advisor.Catalog, timeout time.Duration) Model {
	if catalog == nil {
		catalog = advisor.NewEngine(nil).Catalog()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		builder: builder,
		catalog: catalog,
		labels:  labelsFor(catalog.Locale),
		timeout: timeout,
		spinner: s,
		loading: true,
	}
}

// Init starts the spinner and the first load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load(false))
}

func (m Model) load(refresh bool) tea.Cmd {
	builder, timeout := m.builder, m.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		if refresh {
			return dashboardLoadedMsg{dashboard: builder.Refresh(ctx)}
		}
		return dashboardLoadedMsg{dashboard: builder.Build(ctx)}
	}
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.dashboard != nil {
			m.dashboard = msg.dashboard
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.load(true))
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.dashboard == nil {
		return "\n  " + m.spinner.View() + " " + m.labels.loading + "\n"
	}

	view := Render(m.dashboard, m.catalog, m.width)
	if m.loading {
		view += "\n" + m.spinner.View() + " " + m.labels.loading
	}
	return view + helpStyle.Render(m.labels.help) + "\n"
}
