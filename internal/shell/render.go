package shell

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"taskmanager/internal/model"
	"taskmanager/internal/service"
)

const dateLayout = "2006-01-02"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6C63FF"))
	headerStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2EC4B6"))
)

func formatTask(task model.Task) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %d\n", task.ID)
	fmt.Fprintf(&sb, "  Title: %s\n", task.Title)
	fmt.Fprintf(&sb, "  Description: %s\n", task.Description)
	fmt.Fprintf(&sb, "  Category: %s\n", task.Category.Name)
	fmt.Fprintf(&sb, "  Completed: %s\n", completionLabel(task.IsCompleted))
	fmt.Fprintf(&sb, "  Due Date: %s\n", formatDue(task.DueDate))
	fmt.Fprintf(&sb, "  Priority: %s\n", model.PriorityName(task.Priority))
	return sb.String()
}

func completionLabel(done bool) string {
	if done {
		return doneStyle.Render("Yes")
	}
	return "No"
}

func formatDue(due *time.Time) string {
	if due == nil {
		return "N/A"
	}
	return due.Format(dateLayout)
}

// renderCalendar lays out a month as a seven-column Su..Sa grid.
func renderCalendar(grid service.MonthGrid) string {
	var sb strings.Builder
	heading := fmt.Sprintf("%s %d", grid.Month, grid.Year)
	sb.WriteString(titleStyle.Render(heading))
	sb.WriteByte('\n')
	sb.WriteString("Su Mo Tu We Th Fr Sa\n")
	sb.WriteString(strings.Repeat("   ", grid.Offset))
	for day := 1; day <= grid.Days; day++ {
		fmt.Fprintf(&sb, "%2d ", day)
		if (day+grid.Offset)%7 == 0 {
			sb.WriteByte('\n')
		}
	}
	return strings.TrimRight(sb.String(), " \n")
}
