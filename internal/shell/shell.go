package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"taskmanager/internal/model"
	"taskmanager/internal/repository"
	"taskmanager/internal/service"
)

const menu = `
1. Add Task
2. View Tasks
3. Update Task
4. Mark Task as Complete
5. Delete Task
6. View Categories
7. Add Category
8. View Tasks by Category
9. View Calendar
0. Exit`

// Shell is the line-based interactive front end. It parses raw input
// into primitives, calls the services, and renders what comes back; all
// validation and persistence lives below it.
type Shell struct {
	in         *bufio.Scanner
	out        io.Writer
	tasks      *service.TaskService
	categories *service.CategoryService
	calendar   *service.CalendarService
}

func New(in io.Reader, out io.Writer, tasks *service.TaskService, categories *service.CategoryService, calendar *service.CalendarService) *Shell {
	return &Shell{
		in:         bufio.NewScanner(in),
		out:        out,
		tasks:      tasks,
		categories: categories,
		calendar:   calendar,
	}
}

// Run drives the menu loop until the user exits, input ends, or the
// context is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.out, titleStyle.Render("Task Manager"))
		fmt.Fprintln(s.out, menu)
		choice, ok := s.prompt("Select an option: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.addTask(ctx)
		case "2":
			s.viewTasks(ctx)
		case "3":
			s.updateTask(ctx)
		case "4":
			s.completeTask(ctx)
		case "5":
			s.deleteTask(ctx)
		case "6":
			s.viewCategories(ctx)
		case "7":
			s.addCategory(ctx)
		case "8":
			s.tasksByCategory(ctx)
		case "9":
			s.viewCalendar(ctx)
		case "0":
			return nil
		default:
			s.fail("Invalid option.")
		}
	}
}

func (s *Shell) addTask(ctx context.Context) {
	fmt.Fprintln(s.out, headerStyle.Render("Add New Task"))

	title, ok := s.prompt("Title: ")
	if !ok {
		return
	}
	description, ok := s.prompt("Description: ")
	if !ok {
		return
	}

	s.viewCategories(ctx)
	categoryID, ok := s.promptUint("Category ID: ")
	if !ok {
		return
	}

	dueDate, ok := s.promptDate("Due Date (YYYY-MM-DD, optional): ")
	if !ok {
		return
	}
	priority, ok := s.promptPriority("Priority (1-High, 2-Medium, 3-Low, optional): ")
	if !ok {
		return
	}

	task, err := s.tasks.CreateTask(ctx, service.TaskInput{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		DueDate:     dueDate,
		Priority:    priority,
	})
	if err != nil {
		s.renderError("add task", err)
		return
	}
	fmt.Fprintf(s.out, "Task %d added.\n", task.ID)
}

func (s *Shell) viewTasks(ctx context.Context) {
	tasks, err := s.tasks.ListSorted(ctx)
	if err != nil {
		s.renderError("view tasks", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, "No tasks found.")
		return
	}
	for _, task := range tasks {
		fmt.Fprint(s.out, formatTask(task))
	}
}

func (s *Shell) updateTask(ctx context.Context) {
	s.viewTasks(ctx)
	id, ok := s.promptUint("Enter ID of task to update: ")
	if !ok {
		return
	}

	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		s.renderError("update task", err)
		return
	}

	var changes service.TaskChanges
	if title, ok := s.prompt(fmt.Sprintf("New Title (current: %s, blank keeps): ", task.Title)); ok && strings.TrimSpace(title) != "" {
		changes.Title = &title
	}
	if desc, ok := s.prompt(fmt.Sprintf("New Description (current: %s, blank keeps): ", task.Description)); ok && strings.TrimSpace(desc) != "" {
		changes.Description = &desc
	}

	s.viewCategories(ctx)
	if raw, ok := s.prompt(fmt.Sprintf("New Category ID (current: %d, blank keeps): ", task.CategoryID)); ok && strings.TrimSpace(raw) != "" {
		if id64, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32); err == nil {
			categoryID := uint(id64)
			changes.CategoryID = &categoryID
		} else {
			s.fail("Invalid Category ID. Category not changed.")
		}
	}

	due, cleared := s.promptOptionalUpdate(
		fmt.Sprintf("New Due Date (YYYY-MM-DD, current: %s, blank keeps): ", formatDue(task.DueDate)),
		"Clear Due Date? (y/n): ",
		task.DueDate != nil,
		func(raw string) bool {
			_, err := time.Parse(dateLayout, raw)
			return err == nil
		},
	)
	changes.ClearDueDate = cleared
	if due != "" {
		parsed, _ := time.Parse(dateLayout, due)
		changes.DueDate = &parsed
	}

	prio, cleared := s.promptOptionalUpdate(
		fmt.Sprintf("New Priority (1-High, 2-Medium, 3-Low, current: %s, blank keeps): ", model.PriorityName(task.Priority)),
		"Clear Priority? (y/n): ",
		task.Priority != nil,
		func(raw string) bool {
			_, err := strconv.Atoi(raw)
			return err == nil
		},
	)
	changes.ClearPriority = cleared
	if prio != "" {
		value, _ := strconv.Atoi(prio)
		priority := model.Priority(value)
		changes.Priority = &priority
	}

	if _, err := s.tasks.UpdateTask(ctx, id, changes); err != nil {
		s.renderError("update task", err)
		return
	}
	fmt.Fprintln(s.out, "Task updated.")
}

func (s *Shell) completeTask(ctx context.Context) {
	s.viewTasks(ctx)
	id, ok := s.promptUint("Enter ID of task to mark as complete: ")
	if !ok {
		return
	}
	if err := s.tasks.CompleteTask(ctx, id); err != nil {
		s.renderError("complete task", err)
		return
	}
	fmt.Fprintln(s.out, "Task marked as complete.")
}

func (s *Shell) deleteTask(ctx context.Context) {
	s.viewTasks(ctx)
	id, ok := s.promptUint("Enter ID of task to delete: ")
	if !ok {
		return
	}

	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		s.renderError("delete task", err)
		return
	}

	confirm, ok := s.prompt(fmt.Sprintf("Delete task %q (ID: %d)? (y/n): ", task.Title, task.ID))
	if !ok || strings.ToLower(strings.TrimSpace(confirm)) != "y" {
		fmt.Fprintln(s.out, "Deletion cancelled.")
		return
	}
	if err := s.tasks.DeleteTask(ctx, id); err != nil {
		s.renderError("delete task", err)
		return
	}
	fmt.Fprintln(s.out, "Task deleted.")
}

func (s *Shell) viewCategories(ctx context.Context) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		s.renderError("view categories", err)
		return
	}
	fmt.Fprintln(s.out, headerStyle.Render("Categories"))
	for _, category := range categories {
		fmt.Fprintf(s.out, "ID: %d - Name: %s\n", category.ID, category.Name)
	}
}

func (s *Shell) addCategory(ctx context.Context) {
	name, ok := s.prompt("Category Name: ")
	if !ok {
		return
	}
	category, err := s.categories.Create(ctx, name)
	if err != nil {
		s.renderError("add category", err)
		return
	}
	fmt.Fprintf(s.out, "Category %d added.\n", category.ID)
}

func (s *Shell) tasksByCategory(ctx context.Context) {
	s.viewCategories(ctx)
	id, ok := s.promptUint("Enter Category ID to view tasks: ")
	if !ok {
		return
	}
	tasks, err := s.tasks.ListByCategory(ctx, id)
	if err != nil {
		s.renderError("view tasks by category", err)
		return
	}
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, "No tasks found in this category.")
		return
	}
	fmt.Fprintln(s.out, headerStyle.Render("Tasks in Category: "+tasks[0].Category.Name))
	for _, task := range tasks {
		fmt.Fprint(s.out, formatTask(task))
	}
}

func (s *Shell) viewCalendar(ctx context.Context) {
	year, ok := s.promptInt("Enter Year (e.g., 2024): ")
	if !ok {
		return
	}
	month, ok := s.promptInt("Enter Month (1-12): ")
	if !ok {
		return
	}

	grid, err := s.calendar.MonthGrid(year, month)
	if err != nil {
		s.renderError("view calendar", err)
		return
	}
	fmt.Fprintln(s.out, renderCalendar(grid))

	tasks, err := s.calendar.TasksDueIn(ctx, year, month)
	if err != nil {
		s.renderError("view calendar", err)
		return
	}
	fmt.Fprintln(s.out, "Tasks for this month:")
	if len(tasks) == 0 {
		fmt.Fprintln(s.out, "No tasks scheduled for this month.")
		return
	}
	for _, task := range tasks {
		fmt.Fprintf(s.out, "- %s: %s (%s, Prio: %s, Cat: %s)\n",
			task.DueDate.Format("02"), task.Title,
			completionLabel(task.IsCompleted),
			model.PriorityName(task.Priority), task.Category.Name)
	}
}

// promptOptionalUpdate reads a replacement value for an optional field.
// Blank input on a field that has a value triggers the clear follow-up;
// the core only ever sees the resulting keep/set/clear decision.
func (s *Shell) promptOptionalUpdate(prompt, clearPrompt string, hasValue bool, valid func(string) bool) (value string, clear bool) {
	raw, ok := s.prompt(prompt)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if valid(raw) {
			return raw, false
		}
		s.fail("Invalid value. Field not changed.")
		return "", false
	}
	if !hasValue {
		return "", false
	}
	answer, ok := s.prompt(clearPrompt)
	if !ok {
		return "", false
	}
	return "", strings.ToLower(strings.TrimSpace(answer)) == "y"
}

func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Shell) promptInt(label string) (int, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return 0, false
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.fail("Invalid number.")
		return 0, false
	}
	return value, true
}

func (s *Shell) promptUint(label string) (uint, bool) {
	value, ok := s.promptInt(label)
	if !ok {
		return 0, false
	}
	if value < 0 {
		s.fail("Invalid ID.")
		return 0, false
	}
	return uint(value), true
}

func (s *Shell) promptDate(label string) (*time.Time, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return nil, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		s.fail("Invalid date, expected YYYY-MM-DD.")
		return nil, false
	}
	return &parsed, true
}

func (s *Shell) promptPriority(label string) (*model.Priority, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return nil, false
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		s.fail("Invalid priority, expected 1-3.")
		return nil, false
	}
	priority := model.Priority(value)
	return &priority, true
}

func (s *Shell) fail(message string) {
	fmt.Fprintln(s.out, errorStyle.Render(message))
}

// renderError maps core failures to user-facing messages; storage
// failures surface verbatim since there is nothing friendlier to say.
func (s *Shell) renderError(action string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.fail("Not found.")
	case errors.Is(err, repository.ErrInvalidCategory):
		s.fail("Invalid Category ID.")
	case errors.Is(err, repository.ErrDuplicateName):
		s.fail("Category with this name already exists.")
	case errors.Is(err, repository.ErrInvalidInput):
		s.fail("Invalid value.")
	default:
		s.fail(fmt.Sprintf("%s: %v", action, err))
	}
}
