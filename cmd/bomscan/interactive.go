package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/text-codec/bom"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	sigStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const previewRunes = 256

type inspectModel struct {
	err       error
	filename  string
	data      []byte
	encoding  bom.Encoding
	sigLen    int
	sigFound  bool
	preview   string
	decodeErr error
	vp        viewport.Model
	ready     bool
}

type inspectedMsg struct {
	err       error
	data      []byte
	encoding  bom.Encoding
	sigLen    int
	sigFound  bool
	preview   string
	decodeErr error
}

func newInspectModel(filename string) *inspectModel {
	return &inspectModel{filename: filename}
}

func (m *inspectModel) Init() tea.Cmd {
	return m.inspect
}

func (m *inspectModel) inspect() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return inspectedMsg{err: err}
	}

	c := bom.New[rune](bom.Unknown)
	units, decodeErr := c.Decode(append([]byte(nil), data...), nil, nil)

	preview := ""
	if decodeErr == nil {
		if len(units) > previewRunes {
			units = units[:previewRunes]
		}
		preview = string(units)
	}

	return inspectedMsg{
		data:      data,
		encoding:  c.Encoding(),
		sigLen:    len(c.Signature()),
		sigFound:  c.SignatureFound(),
		preview:   preview,
		decodeErr: decodeErr,
	}
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case inspectedMsg:
		m.err = msg.err
		m.data = msg.data
		m.encoding = msg.encoding
		m.sigLen = msg.sigLen
		m.sigFound = msg.sigFound
		m.preview = msg.preview
		m.decodeErr = msg.decodeErr
		if m.ready {
			m.vp.SetContent(m.hexDump())
		}
		return m, nil

	case tea.WindowSizeMsg:
		headerHeight := 6
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight
		}
		m.vp.SetContent(m.hexDump())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bomscan "+m.filename) + "\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	origin := "fallback"
	if m.sigFound {
		origin = fmt.Sprintf("signature % X", m.data[:m.sigLen])
	}
	b.WriteString(labelStyle.Render("encoding: ") + okStyle.Render(m.encoding.String()) +
		labelStyle.Render("  via: ") + origin +
		labelStyle.Render("  size: ") + fmt.Sprintf("%d bytes", len(m.data)) + "\n")

	if m.decodeErr != nil {
		b.WriteString(errorStyle.Render("decode: "+m.decodeErr.Error()) + "\n")
	} else {
		b.WriteString(labelStyle.Render("preview: ") + sanitize(m.preview) + "\n")
	}
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.vp.View() + "\n")
	}
	b.WriteString(helpStyle.Render("↑/↓: scroll • q: quit"))
	return b.String()
}

// hexDump renders the file head as offset/hex/ascii rows, highlighting the
// detected signature bytes.
func (m *inspectModel) hexDump() string {
	const bytesPerRow = 16
	const maxRows = 4096 / bytesPerRow

	var b strings.Builder
	for row := 0; row*bytesPerRow < len(m.data) && row < maxRows; row++ {
		start := row * bytesPerRow
		end := min(start+bytesPerRow, len(m.data))

		fmt.Fprintf(&b, "%08x  ", start)
		for i := start; i < start+bytesPerRow; i++ {
			if i >= end {
				b.WriteString("   ")
				continue
			}
			cell := fmt.Sprintf("%02x ", m.data[i])
			if m.sigFound && i < m.sigLen {
				cell = sigStyle.Render(fmt.Sprintf("%02x", m.data[i])) + " "
			}
			b.WriteString(cell)
		}
		b.WriteString(" ")
		for i := start; i < end; i++ {
			c := m.data[i]
			if c < 0x20 || c > 0x7E {
				b.WriteByte('.')
			} else {
				b.WriteByte(c)
			}
		}
		b.WriteString("\n")
	}
	if len(m.data) > maxRows*bytesPerRow {
		fmt.Fprintf(&b, "... %d more bytes\n", len(m.data)-maxRows*bytesPerRow)
	}
	return b.String()
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		return r
	}, s)
}

func runInteractive(filename string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	p := tea.NewProgram(newInspectModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
