package perm

import "strings"

// Presentation-layer permissioning: which navigation groups and actions the
// current session may see. This is display logic only — the backend is the
// actual authority and will 401/reject anything the token does not allow.

// Feature codes granted by the backend at login.
const (
	FeatureAddUser     = "ADD_USER"
	FeatureGetUser     = "GET_USER"
	FeatureAddCategory = "ADD_CATEGORY"
	FeatureGetCategory = "GET_CATEGORY"
	FeatureAddTask     = "ADD_TASK"
	FeatureGetTask     = "GET_TASK"
)

// Section is one visible navigation group with its permitted features, in
// declaration order.
type Section struct {
	Category string
	Features []string
}

// categoryOrder fixes group ordering; featureMapping fixes item ordering
// within a group.
var categoryOrder = []string{"User", "Task_Category", "Task"}

var featureMapping = map[string][]string{
	"User":          {FeatureAddUser, FeatureGetUser},
	"Task_Category": {FeatureAddCategory, FeatureGetCategory},
	"Task":          {FeatureAddTask, FeatureGetTask},
}

// VisibleSections filters the static mapping down to what the permitted set
// allows. A group appears only when at least one of its features is granted,
// and then lists only the granted features. Pure function; the TUI sidebar
// and the CLI permission checks both read it.
func VisibleSections(permitted []string) []Section {
	set := make(map[string]bool, len(permitted))
	for _, f := range permitted {
		set[f] = true
	}

	var out []Section
	for _, cat := range categoryOrder {
		var feats []string
		for _, f := range featureMapping[cat] {
			if set[f] {
				feats = append(feats, f)
			}
		}
		if len(feats) > 0 {
			out = append(out, Section{Category: cat, Features: feats})
		}
	}
	return out
}

// CategoryLabel renders a group heading ("Task_Category" -> "Task Category
// Management").
func CategoryLabel(category string) string {
	return strings.ReplaceAll(category, "_", " ") + " Management"
}

// FeatureLabel renders a feature code for display ("ADD_USER" -> "ADD USER").
func FeatureLabel(feature string) string {
	return strings.ReplaceAll(feature, "_", " ")
}

// FeaturePage maps a feature code to its page route ("ADD_USER" ->
// "/add_user").
func FeaturePage(feature string) string {
	return "/" + strings.ToLower(feature)
}
