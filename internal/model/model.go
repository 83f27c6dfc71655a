package model

// Wire types for the todo-list backend API.
//
// The API wraps every response body in an envelope:
//
//	{ "message": "...", "data": ... }
//
// and reports failures as:
//
//	{ "message": "...", "errors": [{"field": "...", "message": "..."}] }
//
// List endpoints return 1-based pages with a total count; referential fields
// (role, category, assignee) come back as embedded summaries on reads but are
// sent as bare ids on writes.

type Role struct {
	ID       string `json:"id"`
	RoleName string `json:"roleName"`
}

type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	// DOB is a calendar date; the backend is not consistent about the wire
	// format (date-only vs RFC 3339), so clients normalize to YYYY-MM-DD.
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Religion string `json:"religion"`
	Role     *Role  `json:"roleId,omitempty"`
}

func (u User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return ""
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type TaskCategory struct {
	ID           string `json:"id"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	CreatedBy    string `json:"createdBy,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// TaskStatus is a server-defined enum; the client treats unknown values as
// display-only strings rather than rejecting them.
type TaskStatus = string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusComplete   TaskStatus = "Complete"
	StatusClose      TaskStatus = "Close"
	StatusCancelled  TaskStatus = "Cancelled"
)

// CategorySummary is the embedded category reference on task reads.
type CategorySummary struct {
	ID           string `json:"id"`
	CategoryName string `json:"categoryName"`
}

// UserSummary is the embedded assignee reference on task reads.
type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u UserSummary) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return ""
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

type Task struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      TaskStatus      `json:"status"`
	Deadline    string          `json:"deadline"`
	Category    CategorySummary `json:"categoryId"`
	Assignee    UserSummary     `json:"userId"`
}

// UserInfo is the identity payload returned by login and persisted with the
// session.
type UserInfo struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email,omitempty"`
}

// Option sets offered by the forms. The backend validates these server-side;
// the lists here only drive select inputs.
var (
	GenderOptions = []string{"Male", "Female", "Other"}

	ReligionOptions = []string{
		"Islam",
		"Christianity",
		"Hinduism",
		"Buddhism",
		"Other",
	}

	TaskStatusOptions = []TaskStatus{
		StatusTodo,
		StatusPending,
		StatusInProgress,
		StatusComplete,
		StatusClose,
		StatusCancelled,
	}
)
