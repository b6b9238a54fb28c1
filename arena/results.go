package arena

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	HighlightedColor = lipgloss.Color("33")
	DimColor         = lipgloss.Color("241")

	cellStyle        = lipgloss.NewStyle().Padding(0, 1)
	headerStyle      = cellStyle.Bold(true)
	winningCellStyle = cellStyle.Foreground(HighlightedColor)
	diagonalStyle    = cellStyle.Foreground(DimColor)
	borderStyle      = lipgloss.NewStyle().Foreground(DimColor)
)

// Table lays the results out as rows of text: a header of "-" and every player, then one row per player with
// their win rate against each column's player (blank against themselves).
func (r *Results) Table() [][]string {
	rows := make([][]string, 0, len(r.Players)+1)
	rows = append(rows, append([]string{"-"}, r.Players...))

	for _, p1 := range r.Players {
		row := make([]string, 0, len(r.Players)+1)
		row = append(row, p1)

		for _, p2 := range r.Players {
			rate, ok := r.WinRate(p1, p2)
			if !ok {
				row = append(row, "")
				continue
			}

			row = append(row, strconv.FormatFloat(rate, 'f', -1, 64))
		}

		rows = append(rows, row)
	}

	return rows
}

// Render draws Table for a terminal. Win rates above one half are highlighted.
func (r *Results) Render() string {
	rows := r.Table()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(rows[0]...).
		Rows(rows[1:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || col == 0 {
				return headerStyle
			}

			// data rows start at 0 and columns are offset by the name column
			if row == col-1 {
				return diagonalStyle
			}

			if rate, ok := r.WinRate(r.Players[row], r.Players[col-1]); ok && rate > 0.5 {
				return winningCellStyle
			}

			return cellStyle
		})

	return t.Render()
}
