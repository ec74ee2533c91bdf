package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/pagination"
)

type stubContentRepo[T any] struct {
	items   []T
	id      func(T) string
	deleted []string
}

func (r *stubContentRepo[T]) All(context.Context) ([]T, error) {
	return append([]T(nil), r.items...), nil
}

func (r *stubContentRepo[T]) FindByID(_ context.Context, id string) (*T, error) {
	for i := range r.items {
		if r.id(r.items[i]) == id {
			return &r.items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubContentRepo[T]) Create(_ context.Context, item *T) (*T, error) {
	r.items = append(r.items, *item)
	return item, nil
}

func (r *stubContentRepo[T]) Update(_ context.Context, id string, item *T) (*T, error) {
	for i := range r.items {
		if r.id(r.items[i]) == id {
			r.items[i] = *item
			return item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubContentRepo[T]) Delete(_ context.Context, id string) error {
	for i := range r.items {
		if r.id(r.items[i]) == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.deleted = append(r.deleted, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func pitchConfig() ContentConfig[domain.Pitch] {
	return ContentConfig[domain.Pitch]{
		Collection: "pitches",
		Date:       func(p domain.Pitch) time.Time { return p.Date },
		Text:       func(p domain.Pitch) []string { return []string{p.Title, p.Presenter, p.Symbol} },
		Symbol:     func(p domain.Pitch) string { return p.Symbol },
		OrderBy: map[string]func(a, b domain.Pitch) bool{
			"title": func(a, b domain.Pitch) bool { return a.Title < b.Title },
		},
	}
}

func pitchFixture() *stubContentRepo[domain.Pitch] {
	return &stubContentRepo[domain.Pitch]{
		id: func(p domain.Pitch) string { return p.ID },
		items: []domain.Pitch{
			{ID: "1", Title: "Rails and freight", Symbol: "UNP", Presenter: "Ada",
				Date: time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)},
			{ID: "2", Title: "Cloud margins", Symbol: "MSFT", Presenter: "Grace",
				Date: time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)},
			{ID: "3", Title: "Second look at rails", Symbol: "UNP", Presenter: "Grace",
				Date: time.Date(2023, time.November, 2, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func newPitchService(repo *stubContentRepo[domain.Pitch]) *contentService[domain.Pitch] {
	return NewContentService[domain.Pitch](repo, pitchConfig(), zerolog.Nop()).(*contentService[domain.Pitch])
}

func TestContentService_List_DefaultOrderIsDateDescending(t *testing.T) {
	svc := newPitchService(pitchFixture())

	res, err := svc.List(context.Background(), pagination.Query{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("total = %d, want 3", res.Total)
	}
	if got := []string{res.Data[0].ID, res.Data[1].ID, res.Data[2].ID}; got[0] != "2" || got[1] != "1" || got[2] != "3" {
		t.Fatalf("order = %v, want [2 1 3]", got)
	}
}

func TestContentService_List_Ascending(t *testing.T) {
	svc := newPitchService(pitchFixture())

	res, err := svc.List(context.Background(), pagination.Query{Page: 1, PageSize: 10, Ascending: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Data[0].ID != "3" || res.Data[2].ID != "2" {
		t.Fatalf("ascending order wrong: %v, %v", res.Data[0].ID, res.Data[2].ID)
	}
}

func TestContentService_List_Filters(t *testing.T) {
	svc := newPitchService(pitchFixture())

	cases := []struct {
		name  string
		q     pagination.Query
		ids   []string
		total int
	}{
		{"year", pagination.Query{Year: "2024"}, []string{"2", "1"}, 2},
		{"year and month", pagination.Query{Year: "2024", Month: 3}, []string{"1"}, 1},
		{"month alone", pagination.Query{Month: 11}, []string{"3"}, 1},
		{"search title", pagination.Query{Search: "rails"}, []string{"1", "3"}, 2},
		{"search presenter", pagination.Query{Search: "grace"}, []string{"2", "3"}, 2},
		{"symbol exact", pagination.Query{Symbol: "unp"}, []string{"1", "3"}, 2},
		{"symbol and year", pagination.Query{Symbol: "UNP", Year: "2023"}, []string{"3"}, 1},
		{"no hits", pagination.Query{Search: "biotech"}, nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.q.Page, tc.q.PageSize = 1, 10
			res, err := svc.List(context.Background(), tc.q)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Total != tc.total {
				t.Fatalf("total = %d, want %d", res.Total, tc.total)
			}
			if len(res.Data) != len(tc.ids) {
				t.Fatalf("got %d items, want %d", len(res.Data), len(tc.ids))
			}
			for i, id := range tc.ids {
				if res.Data[i].ID != id {
					t.Fatalf("item %d = %s, want %s", i, res.Data[i].ID, id)
				}
			}
		})
	}
}

func TestContentService_List_OrderByOverride(t *testing.T) {
	svc := newPitchService(pitchFixture())

	res, err := svc.List(context.Background(), pagination.Query{
		Page: 1, PageSize: 10, OrderBy: "title", Ascending: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Data[0].Title != "Cloud margins" || res.Data[2].Title != "Second look at rails" {
		t.Fatalf("title order wrong: %q .. %q", res.Data[0].Title, res.Data[2].Title)
	}

	// unknown orderBy falls back to the date field
	res, err = svc.List(context.Background(), pagination.Query{Page: 1, PageSize: 10, OrderBy: "presenter"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Data[0].ID != "2" {
		t.Fatalf("unknown orderBy must fall back to date, got %s first", res.Data[0].ID)
	}
}

func TestContentService_CRUD(t *testing.T) {
	repo := pitchFixture()
	svc := newPitchService(repo)
	ctx := context.Background()

	got, err := svc.Get(ctx, "2")
	if err != nil || got.Symbol != "MSFT" {
		t.Fatalf("Get: %v / %+v", err, got)
	}
	if _, err := svc.Get(ctx, "99"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get missing: got %v, want ErrNotFound", err)
	}

	created, err := svc.Create(ctx, &domain.Pitch{ID: "4", Title: "Utilities", Symbol: "NEE"})
	if err != nil || created.ID != "4" {
		t.Fatalf("Create: %v / %+v", err, created)
	}

	updated, err := svc.Update(ctx, "4", &domain.Pitch{ID: "4", Title: "Utilities revisited", Symbol: "NEE"})
	if err != nil || updated.Title != "Utilities revisited" {
		t.Fatalf("Update: %v / %+v", err, updated)
	}

	if err := svc.Delete(ctx, "4"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != "4" {
		t.Fatalf("delete not forwarded: %v", repo.deleted)
	}
}

func TestContentService_List_SearchWithoutTextFields(t *testing.T) {
	repo := &stubContentRepo[domain.Event]{
		id: func(e domain.Event) string { return e.ID },
		items: []domain.Event{
			{ID: "1", Title: "Annual meeting", Date: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	svc := NewContentService[domain.Event](repo, ContentConfig[domain.Event]{
		Collection: "events",
		Date:       func(e domain.Event) time.Time { return e.Date },
	}, zerolog.Nop())

	res, err := svc.List(context.Background(), pagination.Query{Page: 1, PageSize: 10, Search: "annual"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Total != 0 {
		t.Fatalf("search over a collection without text fields must match nothing, total = %d", res.Total)
	}
}

func TestContentService_List_WindowAcrossPages(t *testing.T) {
	repo := &stubContentRepo[domain.Pitch]{id: func(p domain.Pitch) string { return p.ID }}
	for i := 0; i < 7; i++ {
		repo.items = append(repo.items, domain.Pitch{
			ID:   fmt.Sprintf("p%d", i),
			Date: time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	svc := newPitchService(repo)

	page2, err := svc.List(context.Background(), pagination.Query{Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page2.Total != 7 || page2.TotalPages != 3 || len(page2.Data) != 3 {
		t.Fatalf("page 2: total=%d totalPages=%d len=%d", page2.Total, page2.TotalPages, len(page2.Data))
	}
	// descending by date: page 2 starts at the 4th newest
	if page2.Data[0].ID != "p3" {
		t.Fatalf("page 2 first item = %s, want p3", page2.Data[0].ID)
	}
}
