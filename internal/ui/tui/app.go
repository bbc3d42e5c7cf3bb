package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHome screen = iota
	screenForm
	screenResult
)

type formKind int

const (
	formNone formKind = iota
	formAdd
	formSearch
	formLoan
	formReturn
)

type menuItem struct {
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	menu  list.Model
	toast string

	form      formKind
	formTitle string
	labels    []string
	inputs    []textinput.Model
	focus     int

	resultTitle string
	resultBody  string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	items := []list.Item{
		menuItem{"Add book", "Register a new title in the catalog"},
		menuItem{"List books", "Show every book and its stock"},
		menuItem{"Search books", "Exact match on id, title, author or stock"},
		menuItem{"Loan a book", "Lend a copy and schedule the due date"},
		menuItem{"Return a book", "Close a loan and settle any fine"},
		menuItem{"Active loans", "Open loans with due dates and fines"},
		menuItem{"Quit", "Exit biblioteca"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Biblioteca"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenHome,
		menu:  l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case bookAddedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		return m.showResult("Book added", fmt.Sprintf("%q is now in the catalog.\n", msg.title)), nil

	case booksListedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		title := "Catalog"
		if msg.query != "" {
			title = "Search results"
		}
		return m.showResult(title, renderBooks(msg.books, msg.query)), nil

	case loanDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		body := fmt.Sprintf("Lent %q to %s.\nDue back on %s.\nA pickup reminder is on its way.\n",
			msg.title, msg.borrower, msg.due)
		return m.showResult("Loan registered", body), nil

	case returnDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		body := "Book returned on time.\n"
		if msg.fine > 0 {
			body = fmt.Sprintf("Late return. Fine to pay: $%.2f\n", msg.fine)
		}
		return m.showResult("Return registered", body), nil

	case loansListedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		return m.showResult("Active loans", renderLoans(msg.loans)), nil
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.scr {
	case screenHome:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			return m.selectMenuItem()
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case screenForm:
		switch msg.String() {
		case "esc":
			return m.backHome(), nil
		case "tab", "down":
			return m.focusField(m.focus + 1), nil
		case "shift+tab", "up":
			return m.focusField(m.focus - 1), nil
		case "enter":
			if m.focus < len(m.inputs)-1 {
				return m.focusField(m.focus + 1), nil
			}
			return m.submitForm()
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd

	case screenResult:
		switch msg.String() {
		case "esc", "b", "q", "enter":
			return m.backHome(), nil
		}
	}
	return m, nil
}

func (m model) selectMenuItem() (tea.Model, tea.Cmd) {
	it, ok := m.menu.SelectedItem().(menuItem)
	if !ok {
		return m, nil
	}
	if strings.EqualFold(it.title, "Quit") {
		return m, tea.Quit
	}

	if m.deps.Library == nil {
		m.toast = "No library found here. Run `biblioteca init` first."
		return m, nil
	}

	switch it.title {
	case "Add book":
		return m.openForm(formAdd, "Add book", "Id", "Title", "Author", "Stock"), nil
	case "List books":
		return m, cmdListBooks(m.deps.Library)
	case "Search books":
		return m.openForm(formSearch, "Search books", "Field (id|title|author|stock)", "Value"), nil
	case "Loan a book":
		return m.openForm(formLoan, "Loan a book", "Book id", "Borrower"), nil
	case "Return a book":
		return m.openForm(formReturn, "Return a book", "Book id", "Borrower"), nil
	case "Active loans":
		return m, cmdListLoans(m.deps.Library)
	}
	return m, nil
}

func (m model) openForm(kind formKind, title string, labels ...string) model {
	m.scr = screenForm
	m.form = kind
	m.formTitle = title
	m.labels = labels
	m.toast = ""
	m.focus = 0

	m.inputs = make([]textinput.Model, len(labels))
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 80
		ti.Prompt = "> "
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	return m
}

func (m model) focusField(i int) model {
	if i < 0 || i >= len(m.inputs) {
		return m
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m model) submitForm() (tea.Model, tea.Cmd) {
	lib := m.deps.Library
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }

	switch m.form {
	case formAdd:
		return m, cmdAddBook(lib, v(0), v(1), v(2), v(3))
	case formSearch:
		return m, cmdSearchBooks(lib, v(0), v(1))
	case formLoan:
		return m, cmdLoanBook(lib, v(0), v(1))
	case formReturn:
		return m, cmdReturnBook(lib, v(0), v(1))
	}
	return m, nil
}

func (m model) showResult(title, body string) model {
	m.scr = screenResult
	m.form = formNone
	m.inputs = nil
	m.toast = ""
	m.resultTitle = title
	m.resultBody = body
	return m
}

func (m model) backHome() model {
	m.scr = screenHome
	m.form = formNone
	m.inputs = nil
	m.toast = ""
	return m
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Biblioteca") + "\n" +
		m.theme.Subtitle.Render("Catalog and loan tracking for a one-person library") + "\n"

	var banner string
	if m.deps.Library != nil {
		banner = m.theme.Help.Render("Library: " + m.deps.Root)
		if w := m.deps.Library.LoadWarning(); w != "" {
			banner += "\n" + m.theme.Warn.Render("⚠ "+w)
		}
	} else {
		banner = m.theme.Card.Render("⚠ No library found.\n\nRun `biblioteca init` in the directory you want to manage.")
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Warn.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		return wrap.Render(header + "\n" + banner + toast + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenForm:
		var b strings.Builder
		b.WriteString(m.theme.Title.Render(m.formTitle))
		b.WriteString("\n\n")
		for i, in := range m.inputs {
			b.WriteString(m.labels[i])
			b.WriteString("\n")
			b.WriteString(in.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render("enter next/submit • tab/↑/↓ move • esc back"))
		return wrap.Render(header + "\n" + banner + toast + "\n\n" + m.theme.Card.Render(b.String()))

	case screenResult:
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.resultTitle) + "\n\n" + m.resultBody + "\n" +
				m.theme.Help.Render("esc/enter back • q home"),
		)
		return wrap.Render(header + "\n" + banner + "\n\n" + card)

	default:
		return wrap.Render(header + "\nunknown state")
	}
}
