package pagination

import (
	"fmt"
	"testing"
	"time"
)

type doc struct {
	Title string
	Date  time.Time
}

func makeDocs(year int, n int) []doc {
	docs := make([]doc, n)
	for i := range docs {
		docs[i] = doc{
			Title: fmt.Sprintf("%d-doc-%02d", year, i),
			Date:  time.Date(year, time.January, 1+i, 0, 0, 0, 0, time.UTC),
		}
	}
	return docs
}

func byDateDesc(a, b doc) bool { return a.Date.After(b.Date) }

func TestNormalize(t *testing.T) {
	cases := []struct {
		in       Query
		page     int
		pageSize int
	}{
		{Query{Page: 0, PageSize: 10}, 1, 10},
		{Query{Page: -3, PageSize: 10}, 1, 10},
		{Query{Page: 2, PageSize: 0}, 2, DefaultPageSize},
		{Query{Page: 2, PageSize: -5}, 2, DefaultPageSize},
		{Query{Page: 1, PageSize: 500}, 1, MaxPageSize},
		{Query{Page: 3, PageSize: 25}, 3, 25},
	}
	for _, tc := range cases {
		got := tc.in.Normalize()
		if got.Page != tc.page || got.PageSize != tc.pageSize {
			t.Fatalf("Normalize(%+v) = page %d size %d, want page %d size %d",
				tc.in, got.Page, got.PageSize, tc.page, tc.pageSize)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{15, 10, 2},
		{100, 7, 15},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.pageSize); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.pageSize, got, tc.want)
		}
	}
}

// data length must equal min(pageSize, max(0, total - (page-1)*pageSize))
// for every window over the collection.
func TestApply_WindowLengthInvariant(t *testing.T) {
	items := makeDocs(2024, 23)
	for pageSize := 1; pageSize <= 25; pageSize += 3 {
		for page := 1; page <= 6; page++ {
			res := Apply(items, Query{Page: page, PageSize: pageSize}, nil, byDateDesc)

			want := res.Total - (page-1)*pageSize
			if want < 0 {
				want = 0
			}
			if want > pageSize {
				want = pageSize
			}
			if len(res.Data) != want {
				t.Fatalf("page=%d size=%d: len(data) = %d, want %d", page, pageSize, len(res.Data), want)
			}
			if res.Total != 23 {
				t.Fatalf("page=%d size=%d: total = %d, want 23", page, pageSize, res.Total)
			}
			if res.TotalPages != TotalPages(23, pageSize) {
				t.Fatalf("page=%d size=%d: totalPages = %d, want %d",
					page, pageSize, res.TotalPages, TotalPages(23, pageSize))
			}
		}
	}
}

func TestApply_PageBeyondLastIsEmptyNotError(t *testing.T) {
	items := makeDocs(2024, 12)
	res := Apply(items, Query{Page: 1, PageSize: 5}, nil, byDateDesc)
	beyond := Apply(items, Query{Page: res.TotalPages + 1, PageSize: 5}, nil, byDateDesc)

	if len(beyond.Data) != 0 {
		t.Fatalf("expected empty data past last page, got %d items", len(beyond.Data))
	}
	if beyond.Total != res.Total {
		t.Fatalf("total changed across pages: %d vs %d", beyond.Total, res.Total)
	}
}

// 15 items dated 2024 and 5 dated 2023, filtered to year 2024: page 1 of 10
// holds 10 items, page 2 the remaining 5, total 15 throughout.
func TestApply_YearFilterScenario(t *testing.T) {
	items := append(makeDocs(2024, 15), makeDocs(2023, 5)...)
	match := func(d doc) bool { return d.Date.Year() == 2024 }

	page1 := Apply(items, Query{Page: 1, PageSize: 10, Year: "2024"}, match, byDateDesc)
	if len(page1.Data) != 10 || page1.Total != 15 || page1.TotalPages != 2 {
		t.Fatalf("page 1: got len=%d total=%d totalPages=%d, want 10/15/2",
			len(page1.Data), page1.Total, page1.TotalPages)
	}
	for _, d := range page1.Data {
		if d.Date.Year() != 2024 {
			t.Fatalf("page 1 leaked item dated %d", d.Date.Year())
		}
	}

	page2 := Apply(items, Query{Page: 2, PageSize: 10, Year: "2024"}, match, byDateDesc)
	if len(page2.Data) != 5 || page2.Total != 15 {
		t.Fatalf("page 2: got len=%d total=%d, want 5/15", len(page2.Data), page2.Total)
	}
}

func TestApply_SortsBeforeSlicing(t *testing.T) {
	items := makeDocs(2024, 9)
	res := Apply(items, Query{Page: 1, PageSize: 4}, nil, byDateDesc)

	for i := 1; i < len(res.Data); i++ {
		if res.Data[i].Date.After(res.Data[i-1].Date) {
			t.Fatalf("data not in descending date order at index %d", i)
		}
	}
	// newest document must be on the first page
	if res.Data[0].Title != "2024-doc-08" {
		t.Fatalf("expected newest doc first, got %s", res.Data[0].Title)
	}
}

func TestApply_NilMatchAndLess(t *testing.T) {
	items := makeDocs(2024, 3)
	res := Apply(items, Query{Page: 1, PageSize: 10}, nil, nil)
	if res.Total != 3 || len(res.Data) != 3 {
		t.Fatalf("nil match/less must keep everything: %+v", res)
	}
	for i, d := range res.Data {
		if d.Title != items[i].Title {
			t.Fatalf("nil less must preserve input order")
		}
	}
}
