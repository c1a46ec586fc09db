package pagination

import (
	"math"
	"net/url"
	"testing"
)

func TestPaginateOffsetsAndTotalPages(t *testing.T) {
	got := Paginate(25, 10, 2, "/quizzes")
	if got.Offset != 10 || got.ItemsPerPage != 10 {
		t.Fatalf("offset/limit = (%d, %d), want (10, 10)", got.Offset, got.ItemsPerPage)
	}
	if got.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", got.TotalPages)
	}
	if len(got.Links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(got.Links))
	}
	for _, link := range got.Links {
		if link.Active != (link.Page == 2) {
			t.Fatalf("unexpected active flag on link %+v", link)
		}
	}
}

func TestPaginateEmpty(t *testing.T) {
	got := Paginate(0, 10, 1, "/quizzes")
	if got.TotalPages != 0 || len(got.Links) != 0 {
		t.Fatalf("expected no pages for count=0, got %+v", got)
	}
	if got.Offset != 0 {
		t.Fatalf("offset = %d, want 0", got.Offset)
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	if got := Paginate(20, 10, 1, "/quizzes"); got.TotalPages != 2 {
		t.Fatalf("total pages = %d, want 2", got.TotalPages)
	}
	if got := Paginate(1, 10, 1, "/quizzes"); got.TotalPages != 1 {
		t.Fatalf("total pages = %d, want 1", got.TotalPages)
	}
}

func TestPaginateClampsInvalidInput(t *testing.T) {
	got := Paginate(5, 0, 0, "/quizzes")
	if got.ItemsPerPage != DefaultItemsPerPage {
		t.Fatalf("items per page = %d, want default %d", got.ItemsPerPage, DefaultItemsPerPage)
	}
	if got.PageNo != 1 || got.Offset != 0 {
		t.Fatalf("expected page 1 at offset 0, got page=%d offset=%d", got.PageNo, got.Offset)
	}
}

func TestPaginateHugePageKeepsOffsetPositive(t *testing.T) {
	got := Paginate(25, 10, math.MaxInt, "/quizzes")
	if got.Offset < 0 {
		t.Fatalf("offset overflowed: %d", got.Offset)
	}
	if got.PageNo != math.MaxInt/10 || got.Offset != 10*(got.PageNo-1) {
		t.Fatalf("unexpected capped page: pageno=%d offset=%d", got.PageNo, got.Offset)
	}
	for _, link := range got.Links {
		if link.Active {
			t.Fatalf("no link should be active past the last page: %+v", link)
		}
	}

	if got := Paginate(math.MaxInt, math.MaxInt/2, 1, "/quizzes"); got.TotalPages != 3 {
		t.Fatalf("total pages = %d", got.TotalPages)
	}
}

func TestPaginateLinksPreserveSearch(t *testing.T) {
	got := Paginate(15, 10, 1, "/quizzes?search=capital+of&pageno=1")
	if len(got.Links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(got.Links))
	}

	parsed, err := url.Parse(got.Links[1].URL)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if parsed.Path != "/quizzes" {
		t.Fatalf("link path = %q", parsed.Path)
	}
	if parsed.Query().Get("search") != "capital of" {
		t.Fatalf("search not preserved: %q", got.Links[1].URL)
	}
	if parsed.Query().Get("pageno") != "2" {
		t.Fatalf("pageno = %q, want 2", parsed.Query().Get("pageno"))
	}
	if len(parsed.Query()["pageno"]) != 1 {
		t.Fatalf("pageno duplicated in %q", got.Links[1].URL)
	}
}
