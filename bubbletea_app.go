// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avlkit/avl"
)

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusTree
	focusEvents
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	// Components
	textInput  textinput.Model
	treeView   viewport.Model
	eventsList list.Model
	helpView   viewport.Model

	// Data
	index  KeyIndex
	config *Config

	// State
	focusIndex  int
	showHelp    bool
	status      string
	statusError bool
	lastOutcome *Outcome

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor()).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// eventItem is one line of the insertion log
type eventItem struct {
	title  string
	detail string
}

func (i eventItem) FilterValue() string { return i.title }
func (i eventItem) Title() string       { return i.title }
func (i eventItem) Description() string { return i.detail }

func describeOutcome(out Outcome) eventItem {
	item := eventItem{title: "+ " + out.Key}
	switch {
	case !out.Added:
		item.detail = "duplicate rejected"
	case out.Case == avl.None:
		item.detail = "no rotation"
	default:
		item.detail = fmt.Sprintf("%s rotation at %s", out.Case, out.Pivot)
	}
	return item
}

// clipboardMsg reports the result of copying the key sequence
type clipboardMsg struct {
	count int
	err   error
}

// InitialModel creates the initial model
func InitialModel(index KeyIndex, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type keys to insert, ?key to look up..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 50

	eventsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	eventsList.SetShowTitle(false)
	eventsList.SetShowHelp(false)
	eventsList.SetFilteringEnabled(false)

	treeView := viewport.New(0, 0)
	treeView.SetContent(index.Render())

	helpView := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(60),
	)

	return Model{
		textInput:       ti,
		treeView:        treeView,
		eventsList:      eventsList,
		helpView:        helpView,
		index:           index,
		config:          config,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.helpView.SetContent(m.renderHelpMarkdown())
			}
			return m, nil
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % focusCount
			if m.focusIndex == focusInput {
				m.textInput.Focus()
			} else {
				m.textInput.Blur()
			}
			return m, nil
		case "ctrl+y":
			keys := m.index.Keys()
			return m, func() tea.Msg {
				return clipboardMsg{count: len(keys), err: clipboard.WriteAll(strings.Join(keys, " "))}
			}
		case "enter":
			if m.focusIndex == focusInput {
				return m.submit()
			}
		}
		return m.updateFocused(msg)

	case clipboardMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("copy failed: %v", msg.err))
		} else {
			m.setStatus(fmt.Sprintf("copied %d keys to clipboard", msg.count))
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateFocused forwards a key to whichever component has focus
func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focusIndex {
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)
	case focusTree:
		m.treeView, cmd = m.treeView.Update(msg)
	case focusEvents:
		m.eventsList, cmd = m.eventsList.Update(msg)
	}
	return m, cmd
}

// submit inserts or looks up whatever is in the input box
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return m, nil
	}
	m.textInput.Reset()

	if strings.HasPrefix(value, "?") {
		m.lookup(strings.TrimSpace(strings.TrimPrefix(value, "?")))
		return m, nil
	}

	words, err := splitKeys(value)
	if err != nil {
		m.setError(err.Error())
		return m, nil
	}
	tokens := make([]keyToken, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, keyToken{Text: w, Source: "input"})
	}

	outcomes, err := insertTokens(m.index, tokens)

	var cmds []tea.Cmd
	for _, out := range outcomes {
		cmds = append(cmds, m.eventsList.InsertItem(0, describeOutcome(out)))
	}
	if len(outcomes) > 0 {
		last := outcomes[len(outcomes)-1]
		m.lastOutcome = &last
		m.treeView.SetContent(m.index.Render())
	}

	if err != nil {
		m.setError(err.Error())
	} else {
		m.setStatus(fmt.Sprintf("inserted %d key(s)", len(outcomes)))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) lookup(text string) {
	if text == "" {
		m.setError("nothing to look up")
		return
	}
	found, err := m.index.Contains(text)
	if err != nil {
		m.setError(err.Error())
		return
	}
	if found {
		m.setStatus(fmt.Sprintf("%s is present", text))
	} else {
		m.setStatus(fmt.Sprintf("%s is absent", text))
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusError = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusError = true
}

func (m *Model) renderHelpMarkdown() string {
	if m.glamourRenderer == nil {
		return tuiHelpMarkdown
	}
	out, err := m.glamourRenderer.Render(tuiHelpMarkdown)
	if err != nil {
		return tuiHelpMarkdown
	}
	return out
}

// updateLayout sizes the components for the current window
func (m *Model) updateLayout() {
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	bodyHeight := m.height - 8

	m.textInput.Width = leftWidth - 4
	m.treeView.Width = leftWidth - 4
	m.treeView.Height = max(bodyHeight-4, 1)
	m.eventsList.SetSize(rightWidth-4, max(bodyHeight, 1))
	m.helpView.Width = rightWidth - 4
	m.helpView.Height = max(bodyHeight, 1)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 16 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3
	inputHeight := 3
	bodyHeight := m.height - 8

	inputBox := m.border(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 🔑 Keys "+m.keysLabel()),
			m.textInput.View(),
		))

	treeBox := m.border(focusTree).
		Width(leftWidth).
		Height(bodyHeight - inputHeight - 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 🌳 Tree"),
			m.treeView.View(),
		))

	var rightBox string
	if m.showHelp {
		rightBox = m.styles.BorderBlurred.
			Width(rightWidth).
			Height(bodyHeight + 2).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Render(" 📖 Help"),
				m.helpView.View(),
			))
	} else {
		rightBox = m.border(focusEvents).
			Width(rightWidth).
			Height(bodyHeight + 2).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Render(" 📋 Insertions"),
				m.eventsList.View(),
			))
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, treeBox),
		rightBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderKeyHints(),
	)
}

// keysLabel names the key type and duplicate policy the tree was built with
func (m Model) keysLabel() string {
	if m.config == nil {
		return ""
	}
	dups := m.config.Tree.Duplicates
	if dups == "" {
		dups = "right"
	}
	return fmt.Sprintf("(%s, duplicates %s)", m.config.Keys.Type, dups)
}

func (m Model) border(target int) lipgloss.Style {
	if m.focusIndex == target {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

func (m Model) renderStatus() string {
	stats := m.index.Stats()
	line := fmt.Sprintf(" keys %d · height %d · bound %.2f", stats.Count, stats.Height, stats.Bound)
	if m.lastOutcome != nil {
		line += " · last: " + describeOutcome(*m.lastOutcome).detail
	}
	if m.status == "" {
		return line
	}
	if m.statusError {
		return line + " · " + m.styles.ErrorMessage.Render(m.status)
	}
	return line + " · " + m.styles.SuccessMessage.Render(m.status)
}

func (m Model) renderKeyHints() string {
	hints := []struct{ key, desc string }{
		{"enter", "insert"},
		{"?key", "look up"},
		{"tab", "focus"},
		{"ctrl+y", "copy keys"},
		{"f1", "help"},
		{"esc", "quit"},
	}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, m.styles.HelpKey.Render(h.key)+" "+m.styles.HelpDesc.Render(h.desc))
	}
	return " " + strings.Join(parts, "  ")
}

// runBubbleTeaApp starts the interactive editor
func runBubbleTeaApp(index KeyIndex, config *Config) error {
	p := tea.NewProgram(InitialModel(index, config), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
