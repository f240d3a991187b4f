// Package ui implements the interactive month calendar.
package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tempus"
)

type keyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevWeek:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		NextWeek:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "n"), key.WithHelp("pgdn", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.Today, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek},
		{k.PrevMonth, k.NextMonth, k.Today, k.Quit},
	}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
)

// CalendarModel is a Bubble Tea model showing one month with a movable
// selection.
type CalendarModel struct {
	selected tempus.Date
	today    tempus.Date
	keys     keyMap
	help     help.Model
	width    int
}

// NewCalendarModel starts the calendar with both the selection and the
// "today" marker on the given dates.
func NewCalendarModel(selected, today tempus.Date) CalendarModel {
	return CalendarModel{
		selected: selected,
		today:    today,
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
	}
}

// Selected returns the date under the cursor.
func (m CalendarModel) Selected() tempus.Date { return m.selected }

func (m CalendarModel) Init() tea.Cmd { return nil }

func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.help.Width = msg.Width
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevDay):
			if d, ok := m.selected.PreviousDay(); ok {
				m.selected = d
			}
		case key.Matches(msg, m.keys.NextDay):
			if d, ok := m.selected.NextDay(); ok {
				m.selected = d
			}
		case key.Matches(msg, m.keys.PrevWeek):
			if d, ok := m.selected.CheckedSub(tempus.DurationWeeks(1)); ok {
				m.selected = d
			}
		case key.Matches(msg, m.keys.NextWeek):
			if d, ok := m.selected.CheckedAdd(tempus.DurationWeeks(1)); ok {
				m.selected = d
			}
		case key.Matches(msg, m.keys.PrevMonth):
			m.selected = shiftMonth(m.selected, -1)
		case key.Matches(msg, m.keys.NextMonth):
			m.selected = shiftMonth(m.selected, 1)
		case key.Matches(msg, m.keys.Today):
			m.selected = m.today
		}
		return m, nil
	}
	return m, nil
}

// shiftMonth moves by whole months, clamping the day to the target month's
// length and the year to the supported range.
func shiftMonth(d tempus.Date, delta int) tempus.Date {
	year, month, day := d.CalendarDate()
	month = tempus.Month(int(month) + delta)
	switch {
	case month < tempus.January:
		month = tempus.December
		year--
	case month > tempus.December:
		month = tempus.January
		year++
	}
	if length := month.Length(year); day > length {
		day = length
	}
	out, err := tempus.NewDate(year, month, day)
	if err != nil {
		return d
	}
	return out
}

func (m CalendarModel) View() string {
	var b strings.Builder

	year, month, _ := m.selected.CalendarDate()
	title := month.String() + " " + strconv.Itoa(year)
	b.WriteString(centerLine(titleStyle.Render(title), runewidth.StringWidth(title), gridWidth))
	b.WriteByte('\n')
	b.WriteString(headerStyle.Render("Mo Tu We Th Fr Sa Su"))
	b.WriteByte('\n')

	first, err := tempus.NewDate(year, month, 1)
	if err != nil {
		return ""
	}
	lead := first.Weekday().NumberDaysFromMonday()
	length := month.Length(year)

	col := 0
	for i := 0; i < lead; i++ {
		b.WriteString("   ")
		col++
	}
	for day := 1; day <= length; day++ {
		cell := padDay(day)
		switch {
		case day == m.selected.Day():
			cell = selectedStyle.Render(cell)
		case m.today.Year() == year && m.today.Month() == month && m.today.Day() == day:
			cell = todayStyle.Render(cell)
		}
		b.WriteString(cell)
		col++
		if col == 7 {
			b.WriteByte('\n')
			col = 0
		} else {
			b.WriteByte(' ')
		}
	}
	if col != 0 {
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(footerStyle.Render(m.selected.String() + "  " + m.selected.Weekday().String()))
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

const gridWidth = 20 // seven two-digit cells and six separators

func padDay(day int) string {
	if day < 10 {
		return " " + strconv.Itoa(day)
	}
	return strconv.Itoa(day)
}

func centerLine(rendered string, width, total int) string {
	if width >= total {
		return rendered
	}
	pad := (total - width) / 2
	return strings.Repeat(" ", pad) + rendered
}
