package cmd

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/jsonpp/json"
	"github.com/ardnew/jsonpp/log"
)

// Repl evaluates expressions against a document interactively.
//
// Each line is evaluated as in [Eval]. Tab completes the word before the
// cursor from the document's member names; Up and Down recall history.
type Repl struct {
	ParseFlags `embed:""`

	Source string `arg:"" help:"Source document or '-' for stdin" default:"-" name:"file"`
}

const replPrompt = "json> "

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if r.Source == stdinSource {
		return ErrReadSource.
			With(slog.String("command", "repl")).
			Wrap(os.ErrInvalid)
	}

	_, root, err := r.parseSource(ctx, r.Source)
	if err != nil {
		return WrapError(err).With(slog.String("command", "repl"))
	}

	log.TraceContext(ctx, "repl start",
		slog.String("source", r.Source),
		slog.Int("members", root.Len()))

	_, err = tea.NewProgram(newReplModel(root), tea.WithContext(ctx)).Run()

	return err
}

// replModel is the Bubble Tea model of the repl.
type replModel struct {
	input      textinput.Model
	root       *json.Object
	names      []string
	history    []string
	historyIdx int
	hint       string
	quitting   bool
}

func newReplModel(root *json.Object) replModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(replPrompt)
	ti.CharLimit = 1024
	ti.Focus()

	return replModel{
		input: ti,
		root:  root,
		names: memberNames(root),
	}
}

// memberNames returns the names of all members at any depth, without
// duplicates, in depth-first key order.
func memberNames(root *json.Object) []string {
	seen := make(map[string]struct{})

	var names []string

	var walk func(json.Value)

	walk = func(v json.Value) {
		switch v := v.(type) {
		case *json.Object:
			for key, member := range v.All() {
				if _, ok := seen[key]; !ok {
					seen[key] = struct{}{}
					names = append(names, key)
				}

				walk(member)
			}

		case *json.Array:
			for _, elem := range v.All() {
				walk(elem)
			}
		}
	}

	walk(root)

	return names
}

func (m replModel) Init() tea.Cmd { return textinput.Blink }

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}

	return m.input.View() + "\n" + hintStyle.Render(m.hint) + "\n"
}

func (m replModel) handleKey(msg tea.KeyMsg) (replModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.hint = ""

		return m, nil

	case tea.KeyEnter:
		return m.execute()

	case tea.KeyTab:
		m.complete()

		return m, nil

	case tea.KeyUp:
		if m.historyIdx > 0 {
			m.historyIdx--
			m.input.SetValue(m.history[m.historyIdx])
			m.input.CursorEnd()
		}

		return m, nil

	case tea.KeyDown:
		if m.historyIdx < len(m.history) {
			m.historyIdx++

			if m.historyIdx == len(m.history) {
				m.input.SetValue("")
			} else {
				m.input.SetValue(m.history[m.historyIdx])
			}

			m.input.CursorEnd()
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)
	m.hint = strings.Join(m.matches(), "  ")

	return m, cmd
}

// execute evaluates the current line and prints it with its result.
func (m replModel) execute() (replModel, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())

	m.input.SetValue("")
	m.hint = ""

	if line == "" {
		return m, nil
	}

	m.history = append(m.history, line)
	m.historyIdx = len(m.history)

	echo := promptStyle.Render(replPrompt) + line

	out, err := evaluate(line, m.root)
	if err != nil {
		return m, tea.Println(echo + "\n" + errorStyle.Render(cause(err)))
	}

	return m, tea.Println(echo + "\n" + resultStyle.Render(formatResult(out)))
}

// currentWord returns the identifier ending at the cursor and its offset.
func (m replModel) currentWord() (string, int) {
	text := m.input.Value()
	end := min(m.input.Position(), len(text))

	start := strings.LastIndexFunc(text[:end], func(r rune) bool {
		return !(r == '_' || r == '-' || r >= '0' && r <= '9' ||
			r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	}) + 1

	return text[start:end], start
}

// matches returns the member names that fuzzily match the current word.
func (m replModel) matches() []string {
	word, _ := m.currentWord()
	if word == "" {
		return nil
	}

	found := fuzzy.Find(word, m.names)

	out := make([]string, 0, min(len(found), maxSuggestions))
	for _, match := range found[:min(len(found), maxSuggestions)] {
		out = append(out, match.Str)
	}

	return out
}

// complete replaces the current word with its best match.
func (m *replModel) complete() {
	best := m.matches()
	if len(best) == 0 {
		return
	}

	word, start := m.currentWord()
	text := m.input.Value()
	end := start + len(word)

	m.input.SetValue(text[:start] + best[0] + text[end:])
	m.input.SetCursor(start + len(best[0]))
	m.hint = strings.Join(best, "  ")
}
