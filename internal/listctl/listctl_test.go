package listctl

import "testing"

type row struct{ ID string }

func loaded(c *Controller[row], total int) {
	gen, _ := c.BeginFetch()
	c.ApplyResult(gen, Page[row]{Items: []row{{ID: "r1"}}, TotalCount: total}, nil)
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int
		pageSize int
		want     int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{25, 5, 5},
	}
	for _, tc := range cases {
		c := New[row](tc.pageSize)
		loaded(c, tc.total)
		if got := c.TotalPages(); got != tc.want {
			t.Fatalf("TotalPages(total=%d size=%d): expected %d, got %d", tc.total, tc.pageSize, tc.want, got)
		}
	}
}

func TestQueryChangesResetPage(t *testing.T) {
	c := New[row](10)
	loaded(c, 100)
	c.SetPage(4)
	if c.Query().Page != 4 {
		t.Fatalf("expected page 4, got %d", c.Query().Page)
	}

	c.SetSearchText("report")
	if c.Query().Page != 1 {
		t.Fatalf("search change: expected page reset to 1, got %d", c.Query().Page)
	}

	c.SetPage(4)
	c.SetFilter("categoryId", "c1")
	if c.Query().Page != 1 {
		t.Fatalf("filter change: expected page reset to 1, got %d", c.Query().Page)
	}

	c.SetPage(4)
	c.SetFilter("categoryId", "")
	if c.Query().Page != 1 {
		t.Fatalf("filter clear: expected page reset to 1, got %d", c.Query().Page)
	}
	if c.Query().Filter("categoryId") != "" {
		t.Fatalf("expected cleared filter")
	}

	c.SetPage(4)
	c.SetPageSize(20)
	if c.Query().Page != 1 {
		t.Fatalf("page size change: expected page reset to 1, got %d", c.Query().Page)
	}
}

func TestSetPageClamps(t *testing.T) {
	c := New[row](10)
	loaded(c, 25)

	c.SetPage(0)
	if c.Query().Page != 1 {
		t.Fatalf("expected clamp to 1, got %d", c.Query().Page)
	}
	c.SetPage(99)
	if c.Query().Page != 3 {
		t.Fatalf("expected clamp to 3, got %d", c.Query().Page)
	}
	c.NextPage()
	if c.Query().Page != 3 {
		t.Fatalf("NextPage at last page: expected 3, got %d", c.Query().Page)
	}
	c.PrevPage()
	c.PrevPage()
	c.PrevPage()
	if c.Query().Page != 1 {
		t.Fatalf("PrevPage past first page: expected 1, got %d", c.Query().Page)
	}
}

func TestStaleResultDropped(t *testing.T) {
	c := New[row](10)

	gen1, _ := c.BeginFetch()
	gen2, _ := c.BeginFetch()

	// The older fetch resolves after the newer one started.
	if applied := c.ApplyResult(gen1, Page[row]{TotalCount: 99}, nil); applied {
		t.Fatalf("stale generation should not apply")
	}
	if c.State() != StateLoading {
		t.Fatalf("expected still loading, got %v", c.State())
	}

	if applied := c.ApplyResult(gen2, Page[row]{Items: []row{{ID: "a"}}, TotalCount: 1}, nil); !applied {
		t.Fatalf("current generation should apply")
	}
	if c.State() != StateLoaded || c.TotalCount() != 1 {
		t.Fatalf("expected loaded with total 1, got %v total %d", c.State(), c.TotalCount())
	}
}

func TestApplyResultError(t *testing.T) {
	c := New[row](10)
	gen, _ := c.BeginFetch()
	c.ApplyResult(gen, Page[row]{}, errBoom)
	if c.State() != StateFailed {
		t.Fatalf("expected failed, got %v", c.State())
	}
	if c.Err() != errBoom {
		t.Fatalf("expected errBoom, got %v", c.Err())
	}

	// A later successful fetch clears the error.
	gen, _ = c.BeginFetch()
	c.ApplyResult(gen, Page[row]{TotalCount: 2}, nil)
	if c.State() != StateLoaded || c.Err() != nil {
		t.Fatalf("expected loaded with nil error, got %v / %v", c.State(), c.Err())
	}
}

type boomErr struct{}

func (boomErr) Error() string { return "boom" }

var errBoom error = boomErr{}

func TestDeleteLifecycle(t *testing.T) {
	c := New[row](10)

	c.RequestDelete("r9")
	if !c.ConfirmingDelete() || c.DeleteID() != "r9" {
		t.Fatalf("expected confirming delete of r9")
	}

	c.CancelDelete()
	if c.ConfirmingDelete() || c.DeleteID() != "" {
		t.Fatalf("cancel should leave confirming state")
	}

	c.RequestDelete("r9")
	c.CompleteDelete()
	if c.ConfirmingDelete() || c.DeleteID() != "" {
		t.Fatalf("complete should always leave confirming state")
	}
}

func TestEditLifecycle(t *testing.T) {
	c := New[row](10)
	c.RequestEdit()
	if !c.Editing() {
		t.Fatalf("expected editing")
	}
	c.CloseEdit()
	if c.Editing() {
		t.Fatalf("expected editing closed")
	}
}

func TestSearchTextTrimmed(t *testing.T) {
	c := New[row](10)
	c.SetSearchText("  report  ")
	if got := c.Query().SearchText; got != "report" {
		t.Fatalf("expected trimmed search text, got %q", got)
	}
}
