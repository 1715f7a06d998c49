package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/goldbach/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	frameStyle    = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// pickerModel is a one-shot Bubble Tea menu.
type pickerModel struct {
	title     string
	options   []string
	cursor    int
	chosen    int
	cancelled bool
	keys      keyMap
	help      help.Model
}

func newPickerModel(title string, options []string) *pickerModel {
	return &pickerModel{
		title:   title,
		options: options,
		chosen:  -1,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m *pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		m.move(-1)
	case key.Matches(keyMsg, m.keys.Down):
		m.move(1)
	case key.Matches(keyMsg, m.keys.Choose):
		m.chosen = m.cursor
		return m, tea.Quit
	default:
		// Digits pick an option directly, like the line prompts.
		s := keyMsg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(m.options) {
				m.cursor = idx
				m.chosen = idx
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m *pickerModel) move(delta int) {
	count := len(m.options)
	if count == 0 {
		return
	}
	m.cursor = (m.cursor + delta + count) % count
}

// View implements tea.Model.
func (m *pickerModel) View() string {
	lines := []string{titleStyle.Render(m.title), ""}
	for i, opt := range m.options {
		label := fmt.Sprintf("%d - %s", i+1, opt)
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+label))
		} else {
			lines = append(lines, optionStyle.Render("  "+label))
		}
	}
	body := frameStyle.Render(strings.Join(lines, "\n"))
	return body + "\n" + m.help.View(m.keys) + "\n"
}

// Picker is a Selector backed by an interactive terminal menu.
type Picker struct {
	in  io.Reader
	out io.Writer
}

// NewPicker returns a Selector that runs a Bubble Tea menu on the given terminal streams.
func NewPicker(in io.Reader, out io.Writer) *Picker {
	return &Picker{in: in, out: out}
}

// Mode implements Selector.
func (p *Picker) Mode() (model.Mode, error) {
	idx, err := p.pick("Select analysis mode", []string{
		"Development mode (choose one case)",
		"Final mode (show all cases)",
	})
	if err != nil {
		return model.ModeUnset, err
	}
	return model.ParseMode(fmt.Sprint(idx + 1))
}

// Population implements Selector.
func (p *Picker) Population() (model.Population, error) {
	idx, err := p.pick("Select number type", []string{
		"Odd primes only",
		"Odd composites only",
		"All odd numbers",
	})
	if err != nil {
		return model.PopulationUnset, err
	}
	return model.ParsePopulation(fmt.Sprint(idx + 1))
}

func (p *Picker) pick(title string, options []string) (int, error) {
	m := newPickerModel(title, options)
	program := tea.NewProgram(m, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		return -1, fmt.Errorf("failed to run picker: %w", err)
	}
	result, ok := final.(*pickerModel)
	if !ok || result.cancelled || result.chosen < 0 {
		return -1, ErrCancelled
	}
	return result.chosen, nil
}
