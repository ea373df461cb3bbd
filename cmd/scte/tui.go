package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/galago-remap/scte/internal/action"
	"github.com/galago-remap/scte/internal/debugsrv"
	"github.com/galago-remap/scte/internal/parser"
)

// newInspectCmd launches an interactive tree browser over a single
// compressed action, one level of children per screen: enter descends into
// the selected child, backspace returns to the parent.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <action-text>",
		Short: "Interactively browse a compressed action tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parser.ParseAction(args[0])
			if err != nil {
				return err
			}
			m := newInspectModel(a.Compress())
			p := tea.NewProgram(m)
			_, err = p.Run()
			return err
		},
	}
}

// actionItem adapts a single action.Action into a bubbles/list.Item: its
// Title is the keyword, its description is ToString() plus the dispatch
// slots it satisfies.
type actionItem struct {
	a action.Action
}

func (it actionItem) Title() string { return it.a.Keyword() }
func (it actionItem) Description() string {
	slots := debugsrv.SlotStrings(it.a)
	return it.a.ToString() + "  [" + strings.Join(slots, " ") + "]"
}
func (it actionItem) FilterValue() string { return it.a.Keyword() }

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	pathStyle   = lipgloss.NewStyle().Faint(true)
)

// inspectModel holds the breadcrumb stack of actions visited so far; the
// last entry is the currently displayed level.
type inspectModel struct {
	stack []action.Action
	list  list.Model
}

func newInspectModel(root action.Action) *inspectModel {
	m := &inspectModel{stack: []action.Action{root}}
	m.list = list.New(childItems(root), list.NewDefaultDelegate(), 0, 0)
	m.list.Title = root.Keyword()
	return m
}

func childItems(a action.Action) []list.Item {
	children := action.GetChildren(a)
	if children == nil {
		if child := action.GetChild(a); child != nil {
			children = []action.Action{child}
		}
	}
	items := make([]list.Item, len(children))
	for i, c := range children {
		items[i] = actionItem{a: c}
	}
	return items
}

func (m *inspectModel) Init() tea.Cmd { return nil }

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(actionItem); ok {
				if len(childItems(it.a)) > 0 {
					m.stack = append(m.stack, it.a)
					m.list.SetItems(childItems(it.a))
					m.list.Title = it.a.Keyword()
				}
			}
			return m, nil
		case "backspace":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
				top := m.stack[len(m.stack)-1]
				m.list.SetItems(childItems(top))
				m.list.Title = top.Keyword()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	path := make([]string, len(m.stack))
	for i, a := range m.stack {
		path[i] = a.Keyword()
	}
	return headerStyle.Render("scte inspect") + "  " +
		pathStyle.Render(strings.Join(path, " > ")) + "\n" +
		m.list.View() + "\n" +
		pathStyle.Render("enter: descend  backspace: up  q: quit")
}
