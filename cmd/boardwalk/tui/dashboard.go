package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marshallshelly/boardwalk/pkg/api"
	"github.com/marshallshelly/boardwalk/pkg/charts"
)

// AnalyticsService is the slice of the API the dashboard needs.
type AnalyticsService interface {
	TopCoffeeBrands(ctx context.Context) ([]api.CoffeeBrand, error)
	PopularSnackBrands(ctx context.Context) ([]api.SnackBrand, error)
	WeeklyMoodTrend(ctx context.Context) ([]api.WeeklyMood, error)
	WeeklyWorkoutTrend(ctx context.Context) ([]api.WeeklyWorkout, error)
	CoffeeConsumption(ctx context.Context) (api.CoffeeConsumption, error)
	SnackImpact(ctx context.Context) (api.SnackImpact, error)
}

type panelID int

const (
	panelCoffeeBrands panelID = iota
	panelSnackBrands
	panelMoodTrend
	panelWorkoutTrend
	panelCoffeeConsumption
	panelSnackImpact
	panelCount
)

var panelTitles = [panelCount]string{
	"Coffee Brand Popularity",
	"Snack Brand Share",
	"Weekly Mood Trend",
	"Weekly Workout Trend",
	"Coffee vs Bugs & Productivity",
	"Snack Impact by Department",
}

// panelState is the per-panel legend plus load status. The legend survives
// refreshes through reconciliation so user toggles and colors stick.
type panelState struct {
	legend charts.Legend
	loaded bool
	errMsg string
}

// DashboardModel is the Bubbletea model for the analytics dashboard.
type DashboardModel struct {
	client AnalyticsService

	panels [panelCount]panelState

	coffee      []api.CoffeeBrand
	snacks      []api.SnackBrand
	mood        []api.WeeklyMood
	workout     []api.WeeklyWorkout
	consumption api.CoffeeConsumption
	impact      api.SnackImpact

	active    panelID
	legendIdx int
	spinner   spinner.Model
	width     int
	height    int
}

// NewDashboardModel creates the dashboard.
func NewDashboardModel(client AnalyticsService) DashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle
	return DashboardModel{client: client, spinner: sp}
}

// Init initializes the model
func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(append(m.fetchAll(), m.spinner.Tick, tea.EnterAltScreen)...)
}

// Messages
type panelDataMsg struct {
	id     panelID
	labels []string
	err    error

	coffee      []api.CoffeeBrand
	snacks      []api.SnackBrand
	mood        []api.WeeklyMood
	workout     []api.WeeklyWorkout
	consumption api.CoffeeConsumption
	impact      api.SnackImpact
}

// Commands
func (m DashboardModel) fetchAll() []tea.Cmd {
	c := m.client
	return []tea.Cmd{
		func() tea.Msg {
			data, err := c.TopCoffeeBrands(context.Background())
			labels := make([]string, len(data))
			for i, d := range data {
				labels[i] = d.Brand
			}
			return panelDataMsg{id: panelCoffeeBrands, labels: labels, coffee: data, err: err}
		},
		func() tea.Msg {
			data, err := c.PopularSnackBrands(context.Background())
			labels := make([]string, len(data))
			for i, d := range data {
				labels[i] = d.Name
			}
			return panelDataMsg{id: panelSnackBrands, labels: labels, snacks: data, err: err}
		},
		func() tea.Msg {
			data, err := c.WeeklyMoodTrend(context.Background())
			return panelDataMsg{id: panelMoodTrend, labels: []string{"happy", "tired", "stressed"}, mood: data, err: err}
		},
		func() tea.Msg {
			data, err := c.WeeklyWorkoutTrend(context.Background())
			return panelDataMsg{id: panelWorkoutTrend, labels: []string{"running", "cycling", "stretching"}, workout: data, err: err}
		},
		func() tea.Msg {
			data, err := c.CoffeeConsumption(context.Background())
			labels := make([]string, len(data.Teams))
			for i, t := range data.Teams {
				labels[i] = t.Team
			}
			return panelDataMsg{id: panelCoffeeConsumption, labels: labels, consumption: data, err: err}
		},
		func() tea.Msg {
			data, err := c.SnackImpact(context.Background())
			labels := make([]string, len(data.Departments))
			for i, d := range data.Departments {
				labels[i] = d.Name
			}
			return panelDataMsg{id: panelSnackImpact, labels: labels, impact: data, err: err}
		},
	}
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case panelDataMsg:
		p := &m.panels[msg.id]
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			p.loaded = true
			return m, nil
		}
		p.errMsg = ""
		p.loaded = true
		// Reconcile rather than rebuild: user-chosen visibility and colors
		// survive a refresh for labels that persist.
		p.legend = charts.Reconcile(p.legend, msg.labels)

		switch msg.id {
		case panelCoffeeBrands:
			m.coffee = msg.coffee
		case panelSnackBrands:
			m.snacks = msg.snacks
		case panelMoodTrend:
			m.mood = msg.mood
		case panelWorkoutTrend:
			m.workout = msg.workout
		case panelCoffeeConsumption:
			m.consumption = msg.consumption
		case panelSnackImpact:
			m.impact = msg.impact
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "left", "h":
			m.active = (m.active + panelCount - 1) % panelCount
			m.legendIdx = 0
			return m, nil

		case "right", "l":
			m.active = (m.active + 1) % panelCount
			m.legendIdx = 0
			return m, nil

		case "up", "k":
			if m.legendIdx > 0 {
				m.legendIdx--
			}
			return m, nil

		case "down", "j":
			if m.legendIdx < len(m.panels[m.active].legend)-1 {
				m.legendIdx++
			}
			return m, nil

		case " ", "enter":
			m.panels[m.active].legend.ToggleIndex(m.legendIdx)
			return m, nil

		case "r":
			return m, tea.Batch(m.fetchAll()...)
		}
	}

	return m, nil
}

// RunDashboard starts the analytics dashboard.
func RunDashboard(client AnalyticsService) error {
	p := tea.NewProgram(NewDashboardModel(client))
	_, err := p.Run()
	return err
}
