package tui

import (
	"fmt"
	"strings"

	"github.com/adnan116/todo-list-app-client/internal/model"
)

// taskDetailMarkdown lays the task out as markdown so glamour can render the
// free-form description.
func taskDetailMarkdown(t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	fmt.Fprintf(&b, "**Status:** %s\n\n", t.Status)
	if t.Category.CategoryName != "" {
		fmt.Fprintf(&b, "**Category:** %s\n\n", t.Category.CategoryName)
	}
	if name := t.Assignee.FullName(); name != "" {
		fmt.Fprintf(&b, "**Assignee:** %s\n\n", name)
	}
	if t.Deadline != "" {
		fmt.Fprintf(&b, "**Deadline:** %s\n\n", formatDate(t.Deadline))
	}
	if strings.TrimSpace(t.Description) != "" {
		fmt.Fprintf(&b, "---\n\n%s\n", t.Description)
	}
	return b.String()
}

func (m appModel) renderTaskDetail() string {
	bodyW := modalBodyWidth(m.width)
	body := renderMarkdown(taskDetailMarkdown(m.detailTask), bodyW)
	body = joinModalLines(body, "", renderHelpLine(bodyW, "esc: close"))
	box := renderModalBox(m.width, "Task", body)
	return placeCentered(m.width, m.height, box)
}
