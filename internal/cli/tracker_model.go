package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rcastellanos/malla/internal/cli/formatter"
	"github.com/rcastellanos/malla/internal/domain"
)

// trackerKeyMap holds the key bindings for the interactive tracker.
type trackerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Start     key.Binding
	Complete  key.Binding
	Reset     key.Binding
	Semesters key.Binding
	ResetAll  key.Binding
	Quit      key.Binding
}

func defaultTrackerKeys() trackerKeyMap {
	return trackerKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "subir")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "bajar")),
		Start:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cursar")),
		Complete:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "completar")),
		Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "pendiente")),
		Semesters: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "semestres")),
		ResetAll:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reiniciar todo")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
	}
}

// bundlesMsg carries a freshly loaded graph and its available bundles.
type bundlesMsg struct {
	graph   *domain.Graph
	bundles []domain.Bundle
	err     error
}

// actionDoneMsg reports the outcome of a mutation; the model reloads after it.
type actionDoneMsg struct {
	err error
}

type trackerModel struct {
	app  *App
	plan string
	keys trackerKeyMap

	graph   *domain.Graph
	bundles []domain.Bundle
	cursor  int

	showSemesters bool
	confirmReset  bool
	quitting      bool
	err           error
}

func newTrackerModel(app *App, plan string) trackerModel {
	return trackerModel{
		app:  app,
		plan: plan,
		keys: defaultTrackerKeys(),
	}
}

func (m trackerModel) Init() tea.Cmd {
	return m.loadBundles()
}

func (m trackerModel) loadBundles() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		g, err := m.app.Plans.LoadGraph(ctx, m.plan)
		if err != nil {
			return bundlesMsg{err: err}
		}
		bundles, err := m.app.Progress.Available(ctx, m.plan)
		if err != nil {
			return bundlesMsg{err: err}
		}
		return bundlesMsg{graph: g, bundles: formatter.SortBundlesForDisplay(bundles)}
	}
}

func (m trackerModel) mutate(fn func(context.Context, string, []string) error, codes []string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{err: fn(context.Background(), m.plan, codes)}
	}
}

func (m trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case bundlesMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.graph = msg.graph
		m.bundles = msg.bundles
		if m.cursor >= len(m.bundles) {
			m.cursor = len(m.bundles) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.loadBundles()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m trackerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending reset-all confirmation swallows every key.
	if m.confirmReset {
		m.confirmReset = false
		if msg.String() == "y" || msg.String() == "s" {
			return m, func() tea.Msg {
				return actionDoneMsg{err: m.app.Progress.ResetAll(context.Background(), m.plan)}
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.bundles)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Semesters):
		m.showSemesters = !m.showSemesters
		return m, nil

	case key.Matches(msg, m.keys.Start):
		if b, ok := m.selected(); ok {
			return m, m.mutate(m.app.Progress.StartCourses, b.Codes())
		}
		return m, nil

	case key.Matches(msg, m.keys.Complete):
		if b, ok := m.selected(); ok {
			return m, m.mutate(m.app.Progress.CompleteCourses, b.Codes())
		}
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		if b, ok := m.selected(); ok {
			return m, m.mutate(m.app.Progress.ResetCourses, b.Codes())
		}
		return m, nil

	case key.Matches(msg, m.keys.ResetAll):
		m.confirmReset = true
		return m, nil
	}

	return m, nil
}

func (m trackerModel) selected() (domain.Bundle, bool) {
	if m.cursor < 0 || m.cursor >= len(m.bundles) {
		return nil, false
	}
	return m.bundles[m.cursor], true
}

func (m trackerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := formatter.Bold("malla") + "  " + formatter.Dim("›") + " " + m.plan
	if m.graph != nil {
		title += "  " + formatter.Dim(fmt.Sprintf("%d/%d créditos", m.graph.CompletedCredits(), m.graph.TotalCredits()))
	}
	b.WriteString(title + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")

	case m.showSemesters && m.graph != nil:
		b.WriteString(formatter.FormatSemesters(m.graph))

	case len(m.bundles) == 0:
		b.WriteString(formatter.Dim("No hay materias disponibles por ahora.") + "\n")

	default:
		b.WriteString(formatter.Header("Materias disponibles") + "\n")
		for i, bundle := range m.bundles {
			marker := "  "
			line := formatter.BundleLine(bundle)
			if i == m.cursor {
				marker = formatter.StyleYellow.Render("› ")
				line = formatter.Bold(formatter.BundleLine(bundle))
			}
			b.WriteString(marker + line + "\n")
		}
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

func (m trackerModel) renderFooter() string {
	if m.confirmReset {
		return formatter.StyleRed.Render(fmt.Sprintf("¿Reiniciar todo el avance de %q? (s/n)", m.plan))
	}

	bindings := []key.Binding{
		m.keys.Up, m.keys.Down,
		m.keys.Start, m.keys.Complete, m.keys.Reset,
		m.keys.Semesters, m.keys.ResetAll, m.keys.Quit,
	}
	hints := make([]string, 0, len(bindings))
	for _, bind := range bindings {
		h := bind.Help()
		hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
	}
	return strings.Join(hints, "  ")
}
