package boardtui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
)

// addForm holds the title and description buffers for a new todo.
type addForm struct {
	title       textinput.Model
	description textarea.Model
	field       formField
}

func newAddForm() addForm {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.Prompt = ""
	title.CharLimit = 200

	description := textarea.New()
	description.Placeholder = "Details (optional)"
	description.ShowLineNumbers = false
	description.Prompt = ""
	description.SetHeight(3)

	return addForm{title: title, description: description, field: fieldTitle}
}

func (f *addForm) focus(field formField) tea.Cmd {
	f.field = field
	if field == fieldTitle {
		f.description.Blur()
		return f.title.Focus()
	}
	f.title.Blur()
	return f.description.Focus()
}

func (f *addForm) blur() {
	f.title.Blur()
	f.description.Blur()
}

func (f *addForm) setWidth(width int) {
	f.title.Width = max(width-1, 1)
	f.description.SetWidth(max(width, 1))
}

// values returns the current title and description. The description is
// trimmed of surrounding blank lines.
func (f addForm) values() (string, string) {
	return f.title.Value(), strings.Trim(f.description.Value(), "\n")
}

func (f *addForm) reset() {
	f.title.Reset()
	f.description.Reset()
}

func (f addForm) update(msg tea.Msg) (addForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.field == fieldTitle {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.description, cmd = f.description.Update(msg)
	}
	return f, cmd
}
