package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gomlx/tensorizer/tensorize"
)

type uiModel struct {
	textarea   textarea.Model
	viewport   viewport.Model
	submitted  bool
	tensorizer *tensorize.Tensorizer
	config     *tensorize.Config
	err        error
}

func newUIModel() *uiModel {
	ta := textarea.New()
	ta.Placeholder = "One row per line; separate columns with tabs:"
	ta.Focus()

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Margin(1, 2).
		Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("99"))

	t, config := BuildTensorizer()
	return &uiModel{
		textarea:   ta,
		viewport:   vp,
		tensorizer: t,
		config:     config,
	}
}

func (m *uiModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *uiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd  tea.Cmd
		vpCmd  tea.Cmd
		cmds   []tea.Cmd
		resize bool
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc:
			return m, tea.Quit
		case msg.Type == tea.KeyCtrlL:
			m.textarea.Reset()

		case msg.Type == tea.KeyCtrlD && !m.submitted: // Ctrl+D to submit
			m.submitted = true
			report, err := m.EncodeBatch()
			if err != nil {
				m.err = err
				report = fmt.Sprintf("error: %+v", err)
			}
			m.viewport.SetContent(report)
			m.textarea.Blur()

		case m.submitted && msg.Type == tea.KeyEnter: // Enter while submitted to edit
			m.submitted = false
			m.textarea.Focus()
		}

	case tea.WindowSizeMsg:
		resize = true
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3 // Account for textarea and margins
		m.textarea.SetWidth(msg.Width - 4) // Account for textarea margins
		m.textarea.SetHeight(msg.Height - 8)
	}

	m.textarea, taCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	if resize {
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(append(cmds, taCmd)...)
}

// EncodeBatch encodes each non-empty input line as one row and packs them
// into a batch, returning a textual report of the tensors.
func (m *uiModel) EncodeBatch() (string, error) {
	lines := strings.Split(strings.TrimSpace(m.textarea.Value()), "\n")
	rows := make([]tensorize.Row, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, "\t")
		row := make(tensorize.Row, len(m.config.Columns))
		for i, column := range m.config.Columns {
			if i < len(values) {
				row[column] = values[i]
			}
		}
		rows = append(rows, row)
	}

	encoded, err := m.tensorizer.EncodeAll(context.Background(), rows)
	if err != nil {
		return "", err
	}
	batch, err := m.tensorizer.Tensorize(encoded)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, row := range encoded {
		fmt.Fprintf(&sb, "row %d: length=%d\n", i, row.Length)
		fmt.Fprintf(&sb, "  token ids:      %v\n", row.TokenIDs)
		fmt.Fprintf(&sb, "  segment labels: %v\n", row.SegmentLabels)
	}
	fmt.Fprintf(&sb, "\nbatch %dx%d:\n", batch.NumRows(), batch.MaxLength())
	fmt.Fprintf(&sb, "  tokens:   %v\n", batch.TokenIDs.Value())
	fmt.Fprintf(&sb, "  mask:     %v\n", batch.PadMask.Value())
	fmt.Fprintf(&sb, "  segments: %v\n", batch.SegmentLabels.Value())
	return sb.String(), nil
}

func (m *uiModel) View() string {
	if m.submitted {
		return fmt.Sprintf("\n%s\n\nPress Enter to edit...", m.viewport.View())
	}

	return fmt.Sprintf(
		"\n%s\n\n"+
			"\t\u2022 Ctrl+C or ESC to quit;\n"+
			"\t• Ctrl+D to encode the rows;\n"+
			"\t• Ctrl+L to clear the input.\n",
		m.textarea.View(),
	)
}
