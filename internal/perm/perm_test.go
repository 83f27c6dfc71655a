package perm

import (
	"reflect"
	"testing"
)

func TestVisibleSectionsOrdering(t *testing.T) {
	// Permitted order from the server must not affect display order.
	got := VisibleSections([]string{
		FeatureGetTask,
		FeatureAddUser,
		FeatureGetCategory,
		FeatureAddCategory,
		FeatureGetUser,
		FeatureAddTask,
	})
	want := []Section{
		{Category: "User", Features: []string{FeatureAddUser, FeatureGetUser}},
		{Category: "Task_Category", Features: []string{FeatureAddCategory, FeatureGetCategory}},
		{Category: "Task", Features: []string{FeatureAddTask, FeatureGetTask}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestVisibleSectionsFiltering(t *testing.T) {
	got := VisibleSections([]string{FeatureGetTask, FeatureAddTask, FeatureGetUser})
	want := []Section{
		{Category: "User", Features: []string{FeatureGetUser}},
		{Category: "Task", Features: []string{FeatureAddTask, FeatureGetTask}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestVisibleSectionsEmpty(t *testing.T) {
	if got := VisibleSections(nil); got != nil {
		t.Fatalf("expected nil sections, got %v", got)
	}
	if got := VisibleSections([]string{"UNKNOWN_FEATURE"}); got != nil {
		t.Fatalf("unknown features should yield no sections, got %v", got)
	}
}

func TestLabels(t *testing.T) {
	if got := CategoryLabel("Task_Category"); got != "Task Category Management" {
		t.Fatalf("CategoryLabel: got %q", got)
	}
	if got := CategoryLabel("User"); got != "User Management" {
		t.Fatalf("CategoryLabel: got %q", got)
	}
	if got := FeatureLabel(FeatureAddUser); got != "ADD USER" {
		t.Fatalf("FeatureLabel: got %q", got)
	}
	if got := FeaturePage(FeatureAddUser); got != "/add_user" {
		t.Fatalf("FeaturePage: got %q", got)
	}
}
