package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/paker7000/rag-chatbot/internal/config"
	"github.com/paker7000/rag-chatbot/internal/domain"
)

// SessionPort is the TUI-facing subset of the session orchestrator.
type SessionPort interface {
	Index(paths []string) string
	Chat(question string) domain.ChatResult
	Messages() []domain.Message
	Citations() []string
	IndexStatus() string
}

// Model is the Bubble Tea model for the chat application.
type Model struct {
	session  SessionPort
	keys     []config.KeyStatus
	input    textinput.Model
	viewport viewport.Model
	ready    bool
}

// New creates a new TUI model instance.
func New(session SessionPort, keys []config.KeyStatus) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question, or /index file.pdf [file.txt ...]"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{session: session, keys: keys, input: ti, viewport: vp}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around transcript and input boxes
		_, th := transcriptBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // title + credentials
		totalFooterLines := 2                                    // index status + citations
		reserved := totalHeaderLines + totalFooterLines + ih + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.submit(line)
				m.input.SetValue("")
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()
				return m, nil
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit routes one line of input: /index triggers an indexing request,
// anything else is a chat turn. Both run to completion before the next
// event is handled.
func (m *Model) submit(line string) {
	if paths, ok := parseIndexCommand(line); ok {
		m.session.Index(paths)
		return
	}
	m.session.Chat(line)
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := titleStyle.Render("RAG Chatbot")
	creds := credentialLine(m.keys)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.session.IndexStatus())
	citations := citationLine(m.session.Citations())
	return header + "\n" + creds + "\n" + transcript + "\n" + input + "\n" + status + "\n" + citations
}

func (m Model) renderTranscript() string {
	msgs := m.session.Messages()
	if len(msgs) == 0 {
		return "Upload documents with /index, then ask away."
	}
	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch msg.Role {
		case domain.RoleUser:
			b.WriteString(userStyle.Render("you"))
		default:
			b.WriteString(assistantStyle.Render("assistant"))
		}
		b.WriteString("  ")
		b.WriteString(msg.Content)
	}
	return b.String()
}

// parseIndexCommand recognizes "/index path [path ...]" and returns the
// paths. A bare "/index" still counts as an indexing request so the session
// can report the missing-files precondition itself.
func parseIndexCommand(line string) ([]string, bool) {
	if line == "/index" {
		return nil, true
	}
	if rest, found := strings.CutPrefix(line, "/index "); found {
		return strings.Fields(rest), true
	}
	return nil, false
}

func credentialLine(keys []config.KeyStatus) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if k.Set {
			parts = append(parts, configuredStyle.Render(k.Name+": configured"))
		} else {
			parts = append(parts, missingStyle.Render(k.Name+": missing"))
		}
	}
	return strings.Join(parts, "  ")
}

func citationLine(citations []string) string {
	if len(citations) == 0 {
		return mutedStyle.Render("No citations yet.")
	}
	return mutedStyle.Render("Citations: " + strings.Join(citations, ", "))
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle         = lipgloss.NewStyle().Bold(true)
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	mutedStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	assistantStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	configuredStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
