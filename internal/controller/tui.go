package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// header and footer lines around the viewport
const chromeHeight = 2

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Faint(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// TUI implements UI with an interactive code viewer. Tables are printed
// the same way SimpleUI prints them.
type TUI struct {
	*SimpleUI
	output io.Writer
	input  io.Reader
}

// NewTUI creates a new TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
		input:    cmd.InOrStdin(),
	}
}

// DisplayCode shows code in a scrollable viewport. Code that fits the
// terminal, or output that is not a terminal, is printed directly.
func (p *TUI) DisplayCode(ctx context.Context, title, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width, height := terminalSize(p.output)
	lines := strings.Count(code, "\n") + 1

	if height == 0 || lines+chromeHeight <= height {
		return p.SimpleUI.DisplayCode(ctx, title, code)
	}

	model := newCodeModel(title, numberLines(code), width, height)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}

func terminalSize(w io.Writer) (int, int) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

func numberLines(code string) string {
	lines := strings.Split(strings.TrimSuffix(code, "\n"), "\n")
	for i, line := range lines {
		lines[i] = lineNumberStyle.Render(fmt.Sprintf("%4d ", i+1)) + line
	}

	return strings.Join(lines, "\n")
}

type codeModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newCodeModel(title, content string, width, height int) codeModel {
	cm := codeModel{title: title, content: content}

	if width > 0 && height > chromeHeight {
		cm.viewport = viewport.New(width, height-chromeHeight)
		cm.viewport.SetContent(content)
		cm.ready = true
	}

	return cm
}

func (cm codeModel) Init() tea.Cmd {
	return nil
}

func (cm codeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return cm, tea.Quit
		case "g", "home":
			cm.viewport.GotoTop()
			return cm, nil
		case "G", "end":
			cm.viewport.GotoBottom()
			return cm, nil
		}
	case tea.WindowSizeMsg:
		height := max(msg.Height-chromeHeight, 1)

		if !cm.ready {
			cm.viewport = viewport.New(msg.Width, height)
			cm.viewport.SetContent(cm.content)
			cm.ready = true
		} else {
			cm.viewport.Width = msg.Width
			cm.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	cm.viewport, cmd = cm.viewport.Update(msg)

	return cm, cmd
}

func (cm codeModel) View() string {
	if !cm.ready {
		return "loading...\n"
	}

	footer := helpStyle.Render(fmt.Sprintf(
		"%3.f%%  j/k scroll • d/u half page • g/G top/bottom • q quit",
		cm.viewport.ScrollPercent()*100,
	))

	return titleStyle.Render(cm.title) + "\n" + cm.viewport.View() + "\n" + footer
}
