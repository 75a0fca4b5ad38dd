package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/promptsmith/internal/cli/formatter"
	"github.com/alexanderramin/promptsmith/internal/domain"
	"github.com/alexanderramin/promptsmith/internal/flow"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var resume string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive prompt optimization session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return fmt.Errorf("chat requires an interactive terminal")
			}

			session := domain.NewSession("")
			if resume != "" {
				restored, err := app.Sessions.Load(context.Background(), resume)
				if err != nil {
					return fmt.Errorf("resuming session: %w", err)
				}
				session = restored
			}

			m := newChatModel(app, session)
			if !app.Client.Available(context.Background()) {
				m.transcript = append(m.transcript,
					chatNoticeStyle.Render("backend unreachable; responses will fail until it comes back"))
			}
			p := tea.NewProgram(m, tea.WithAltScreen())
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("running chat: %w", err)
			}

			// Persist the session on exit so it can be resumed.
			cm := final.(chatModel)
			if len(cm.session.Messages) > 0 {
				if err := app.Sessions.Save(context.Background(), cm.session); err != nil {
					return fmt.Errorf("saving session: %w", err)
				}
				fmt.Printf("Session saved: %s\n", cm.session.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&resume, "resume", "", "Resume a saved session by id")
	return cmd
}

type chatPhase int

const (
	phaseInput chatPhase = iota
	phaseWaiting
	phaseAnswering
)

// turnDoneMsg carries a finished controller turn back into the UI loop.
type turnDoneMsg struct {
	turn *flow.TurnResult
	err  error
}

// savedMsg reports the outcome of a /save command.
type savedMsg struct {
	name string
	err  error
}

var (
	chatUserStyle      = lipgloss.NewStyle().Foreground(formatter.ColorBlue).Bold(true)
	chatAssistantStyle = lipgloss.NewStyle().Foreground(formatter.ColorGreen).Bold(true)
	chatNoticeStyle    = lipgloss.NewStyle().Foreground(formatter.ColorYellow)
	chatBodyStyle      = lipgloss.NewStyle().Foreground(formatter.ColorFg)
)

type chatModel struct {
	app        *App
	session    *domain.Session
	controller *flow.Controller

	input      textinput.Model
	spin       spinner.Model
	phase      chatPhase
	transcript []string

	// Question answering state.
	pending   []domain.Question
	answerIdx int
	answers   domain.Answers

	quitting bool
}

func newChatModel(app *App, session *domain.Session) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a prompt to optimize..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 4000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)

	m := chatModel{
		app:        app,
		session:    session,
		controller: flow.NewController(session, app.Client, app.Store, app.Language),
		input:      ti,
		spin:       sp,
	}

	// Replay restored history into the transcript.
	for _, msg := range session.Messages {
		m.transcript = append(m.transcript, renderChatMessage(msg))
	}

	// A snapshot taken mid-question-answering resumes at its first
	// unanswered question.
	if len(session.PendingQuestions) > 0 {
		m.pending = session.PendingQuestions
		m.answerIdx = 0
		m.answers = domain.Answers{}
		m.phase = phaseAnswering
		m.primeQuestionInput()
	}
	return m
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spin.Tick)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleEnter()
		}

	case turnDoneMsg:
		return m.handleTurnDone(msg)

	case savedMsg:
		if msg.err != nil {
			m.transcript = append(m.transcript, chatNoticeStyle.Render(fmt.Sprintf("save failed: %v", msg.err)))
		} else {
			m.transcript = append(m.transcript, chatNoticeStyle.Render(fmt.Sprintf("saved to library as %q", msg.name)))
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.phase == phaseWaiting {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if m.phase == phaseAnswering {
		return m.recordAnswer(text)
	}

	if text == "" {
		return m, nil
	}
	if cmdModel, cmd, handled := m.handleSlashCommand(text); handled {
		return cmdModel, cmd
	}

	m.transcript = append(m.transcript, chatUserStyle.Render("you")+" "+chatBodyStyle.Render(text))
	m.phase = phaseWaiting

	controller := m.controller
	state := controller.State()
	return m, func() tea.Msg {
		ctx := context.Background()
		switch state {
		case domain.StateCompleted, domain.StateConversing:
			turn, err := controller.HandleFollowupMessage(ctx, text)
			return turnDoneMsg{turn: turn, err: err}
		default:
			return turnDoneMsg{turn: controller.HandleInitialPrompt(ctx, text)}
		}
	}
}

// handleSlashCommand intercepts /reset and /save. Unknown slash input
// falls through to the conversation.
func (m chatModel) handleSlashCommand(text string) (tea.Model, tea.Cmd, bool) {
	switch {
	case text == "/reset":
		m.controller.Reset()
		m.transcript = nil
		m.pending = nil
		m.answers = nil
		m.phase = phaseInput
		m.input.Placeholder = "Enter a prompt to optimize..."
		return m, nil, true

	case strings.HasPrefix(text, "/save"):
		name := strings.TrimSpace(strings.TrimPrefix(text, "/save"))
		if name == "" {
			m.transcript = append(m.transcript, chatNoticeStyle.Render("usage: /save <name>"))
			return m, nil, true
		}
		if m.session.CurrentPrompt == "" {
			m.transcript = append(m.transcript, chatNoticeStyle.Render("nothing to save yet"))
			return m, nil, true
		}
		record := domain.NewPromptRecord(name, m.session.CurrentPrompt)
		record.Description = firstLine(m.session.OriginalPrompt)
		library := m.app.Library
		return m, func() tea.Msg {
			err := library.Save(context.Background(), record)
			return savedMsg{name: name, err: err}
		}, true
	}
	return m, nil, false
}

func (m chatModel) handleTurnDone(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	m.phase = phaseInput
	m.input.Placeholder = "Enter a prompt to optimize..."

	if msg.err != nil {
		m.transcript = append(m.transcript, chatNoticeStyle.Render(msg.err.Error()))
		return m, nil
	}

	m.appendTurnMessages(msg.turn)

	if len(m.session.PendingQuestions) > 0 {
		m.pending = m.session.PendingQuestions
		m.answerIdx = 0
		m.answers = domain.Answers{}
		m.phase = phaseAnswering
		m.primeQuestionInput()
	} else if m.controller.State() == domain.StateAwaitingQuestions {
		// Nothing to ask; proceed straight to optimization.
		m.phase = phaseWaiting
		controller := m.controller
		return m, func() tea.Msg {
			turn, err := controller.HandleQuestionsResponse(context.Background(), domain.Answers{})
			return turnDoneMsg{turn: turn, err: err}
		}
	}
	return m, nil
}

// appendTurnMessages renders every assistant message produced by a turn.
func (m *chatModel) appendTurnMessages(turn *flow.TurnResult) {
	steps := []*domain.Message{}
	if turn.Analysis != nil {
		steps = append(steps, turn.Analysis.Message)
	}
	if turn.Questions != nil {
		steps = append(steps, turn.Questions.Message)
	}
	if turn.Optimization != nil {
		steps = append(steps, turn.Optimization.Message)
	}
	if turn.Chat != nil {
		steps = append(steps, turn.Chat.Message)
	}
	for _, msg := range steps {
		if msg != nil {
			m.transcript = append(m.transcript, renderChatMessage(msg))
		}
	}
}

func (m chatModel) recordAnswer(text string) (tea.Model, tea.Cmd) {
	q := m.pending[m.answerIdx]
	switch q.Input {
	case domain.InputBool:
		if v, ok := parseBoolAnswer(text); ok {
			m.answers[q.Type] = v
		}
	default:
		if text != "" {
			m.answers[q.Type] = text
		} else if q.DefaultKey != "" && q.Input == domain.InputSelect {
			m.answers[q.Type] = q.DefaultKey
		}
	}

	m.answerIdx++
	if m.answerIdx < len(m.pending) {
		m.primeQuestionInput()
		return m, nil
	}

	// All questions answered; run optimization.
	m.pending = nil
	m.phase = phaseWaiting
	m.input.Placeholder = "Enter a prompt to optimize..."

	answers := m.answers
	controller := m.controller
	return m, func() tea.Msg {
		turn, err := controller.HandleQuestionsResponse(context.Background(), answers)
		return turnDoneMsg{turn: turn, err: err}
	}
}

// primeQuestionInput sets the placeholder for the current question.
func (m *chatModel) primeQuestionInput() {
	q := m.pending[m.answerIdx]
	switch q.Input {
	case domain.InputBool:
		m.input.Placeholder = "y/n (blank to skip)"
	case domain.InputSelect:
		keys := make([]string, 0, len(q.Options))
		for _, opt := range q.Options {
			keys = append(keys, opt.Key)
		}
		m.input.Placeholder = strings.Join(keys, "|")
	default:
		m.input.Placeholder = "(blank to skip)"
	}
}

func parseBoolAnswer(text string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes", "true", "1", "是", "はい":
		return true, true
	case "n", "no", "false", "0", "否", "いいえ":
		return false, true
	default:
		return false, false
	}
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("promptsmith"))
	b.WriteString("\n\n")

	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	if m.phase == phaseAnswering && m.answerIdx < len(m.pending) {
		q := m.pending[m.answerIdx]
		b.WriteString(chatAssistantStyle.Render(fmt.Sprintf("question %d/%d", m.answerIdx+1, len(m.pending))))
		b.WriteString(" " + chatBodyStyle.Render(q.Question))
		b.WriteString("\n")
	}

	if m.phase == phaseWaiting {
		b.WriteString(m.spin.View() + formatter.Dim(" thinking..."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("state: %s  ", m.controller.State())))
	b.WriteString(formatter.TokenUsage(m.session.CurrentContextTokens, m.session.ContextWindowLimit))
	b.WriteString(formatter.Dim("  ·  /save <name>  /reset  esc to quit"))
	return b.String()
}

// renderChatMessage renders one stored message for the transcript.
func renderChatMessage(msg *domain.Message) string {
	who := chatAssistantStyle.Render("smith")
	if msg.Role == domain.RoleUser {
		who = chatUserStyle.Render("you")
	}
	body := chatBodyStyle.Render(msg.Content)
	if msg.Type == domain.TypeSystemNotice {
		body = chatNoticeStyle.Render(msg.Content)
	}
	return who + " " + body
}
