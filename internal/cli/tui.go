package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/boxorbit/pkg/config"
	"github.com/matzehuels/boxorbit/pkg/layout"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// placementSort orders the inspect table.
type placementSort int

const (
	sortDataset placementSort = iota
	sortYear
	sortRating
	sortGross
)

var sortNames = [...]string{"dataset", "year", "rating", "gross"}

// headerRow is the row index lipgloss tables pass to StyleFunc for headers.
const headerRow = -1

func (s placementSort) String() string { return sortNames[s] }

// =============================================================================
// PlacementListModel - Interactive placement browser
// =============================================================================

// PlacementListModel is the bubbletea model for browsing film placements.
type PlacementListModel struct {
	Placements []layout.Placement
	Cursor     int
	Height     int
	Offset     int
	Sort       placementSort

	order []int // indexes into Placements in display order
}

// NewPlacementListModel creates a new placement list model.
func NewPlacementListModel(placements []layout.Placement) PlacementListModel {
	m := PlacementListModel{Placements: placements, Height: 15}
	m.order = sortedOrder(placements, sortDataset)
	return m
}

func (m PlacementListModel) Init() tea.Cmd {
	return nil
}

func (m PlacementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.order)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = max(len(m.order)-1, 0)
			m.Offset = max(m.Cursor-m.Height+1, 0)
		case "s":
			m.Sort = (m.Sort + 1) % placementSort(len(sortNames))
			m.order = sortedOrder(m.Placements, m.Sort)
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m PlacementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Film Placements"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("↑/↓ navigate  s sort (%s)  q quit", m.Sort)))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.order))
	visible := m.order[m.Offset:end]

	t := placementTable(m.Placements, visible, func(row int) bool {
		return m.Offset+row == m.Cursor
	})
	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.order))))

	return b.String()
}

// placementTable renders the rows at idx. current reports whether a row
// (relative to idx) is under the cursor.
func placementTable(ps []layout.Placement, idx []int, current func(row int) bool) *table.Table {
	rows := make([][]string, 0, len(idx))
	for _, i := range idx {
		rows = append(rows, placementRow(ps[i]))
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Title", "Year", "Rating", "Gross", "Genre", "Angle", "Radius", "Size", "Ring").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == headerRow {
				return listHeaderStyle
			}
			if row < 0 || row >= len(idx) {
				return lipgloss.NewStyle()
			}
			p := ps[idx[row]]
			base := lipgloss.NewStyle()
			if col == 4 {
				base = base.Foreground(lipgloss.Color(config.Hex(p.Color)))
			} else if col >= 5 {
				base = base.Foreground(colorGray)
			}
			if current != nil && current(row) {
				if col < 4 {
					base = base.Foreground(colorCyan)
				}
				return base.Bold(true)
			}
			return base
		})
}

func placementRow(p layout.Placement) []string {
	ring := ""
	if p.Ring {
		ring = iconSuccess
	}
	return []string{
		p.Film.Title,
		fmt.Sprintf("%d", p.Film.Year),
		fmt.Sprintf("%.1f", p.Film.ImdbRating),
		formatGross(p.Film.WorldwideGross),
		p.Genre,
		fmt.Sprintf("%.0f°", p.Angle*180/math.Pi),
		fmt.Sprintf("%.1f", p.Radius),
		fmt.Sprintf("%.1f", p.Size),
		ring,
	}
}

// sortedOrder returns display indexes for ps. Ties keep dataset order.
func sortedOrder(ps []layout.Placement, by placementSort) []int {
	idx := make([]int, len(ps))
	for i := range idx {
		idx[i] = i
	}
	less := map[placementSort]func(a, b layout.Placement) bool{
		sortYear:   func(a, b layout.Placement) bool { return a.Film.Year < b.Film.Year },
		sortRating: func(a, b layout.Placement) bool { return a.Film.ImdbRating > b.Film.ImdbRating },
		sortGross:  func(a, b layout.Placement) bool { return a.Film.WorldwideGross > b.Film.WorldwideGross },
	}[by]
	if less != nil {
		sort.SliceStable(idx, func(i, j int) bool { return less(ps[idx[i]], ps[idx[j]]) })
	}
	return idx
}

// =============================================================================
// Helpers
// =============================================================================

// formatGross abbreviates a dollar amount, e.g. $2.80B or $410.3M.
func formatGross(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.0fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
