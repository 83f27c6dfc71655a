package docs

import (
	"strings"
	"testing"
)

func TestListTopics(t *testing.T) {
	topics := List()
	if len(topics) == 0 {
		t.Fatalf("expected embedded topics")
	}
	want := map[string]bool{"getting-started": false, "permissions": false, "tasks": false}
	for _, topic := range topics {
		if _, ok := want[topic]; ok {
			want[topic] = true
		}
	}
	for topic, seen := range want {
		if !seen {
			t.Fatalf("missing topic %q in %v", topic, topics)
		}
	}
}

func TestTopicLookup(t *testing.T) {
	body, ok := Topic("permissions")
	if !ok {
		t.Fatalf("expected permissions topic")
	}
	if !strings.Contains(body, "GET_USER") {
		t.Fatalf("unexpected topic body")
	}

	// Case-insensitive, whitespace-tolerant.
	if _, ok := Topic("  Permissions "); !ok {
		t.Fatalf("expected case-insensitive lookup")
	}

	if _, ok := Topic("nope"); ok {
		t.Fatalf("expected miss for unknown topic")
	}
	if _, ok := Topic(""); ok {
		t.Fatalf("expected miss for empty topic")
	}
}
