package memory

import (
	"context"
	"fmt"
	"sort"

	"bookshelf/internal/catalog"
	"bookshelf/internal/item"
	"bookshelf/internal/loan"
)

type CatalogRepo struct {
	store *Store
}

// buildView assembles the flattened projection for one item. Caller holds
// at least a read lock.
func (r *CatalogRepo) buildView(it item.Item) catalog.View {
	v := catalog.View{
		ID:            it.ID,
		Title:         it.Title,
		Author:        it.Author,
		Description:   it.Description,
		Notes:         it.Notes,
		ISBN:          it.ISBN,
		PublishedYear: it.PublishedYear,
		PageCount:     it.PageCount,
		Ownership:     it.Ownership,
	}
	if rec, ok := r.store.ratings[it.ID]; ok {
		score := rec.Score
		notes := rec.Notes
		v.Score = &score
		v.RatingNotes = &notes
	}
	if rec, ok := r.store.statuses[it.ID]; ok {
		st := rec.Status
		v.Status = &st
	}
	for _, l := range r.store.loans {
		if l.ItemID == it.ID && !l.Returned {
			borrower := l.Borrower
			loanedAt := l.LoanedAt
			v.Borrower = &borrower
			v.LoanedAt = &loanedAt
			break
		}
	}
	return v
}

func (r *CatalogRepo) allViews() []catalog.View {
	views := make([]catalog.View, 0, len(r.store.items))
	for _, it := range r.store.items {
		views = append(views, r.buildView(it))
	}
	sort.Slice(views, func(i, j int) bool { return views[i].ID < views[j].ID })
	return views
}

func (r *CatalogRepo) ListViews(_ context.Context) ([]catalog.View, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.allViews(), nil
}

func (r *CatalogRepo) ListViewsPage(_ context.Context, q catalog.Query) ([]catalog.View, int, error) {
	r.store.mu.RLock()
	views := r.allViews()
	r.store.mu.RUnlock()

	sortViews(views, q.SortBy, q.SortDir == catalog.DirDesc)

	total := len(views)
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}
	return views[start:end], total, nil
}

func (r *CatalogRepo) GetView(_ context.Context, id string) (catalog.View, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	it, ok := r.store.items[id]
	if !ok {
		return catalog.View{}, item.ErrNotFound
	}
	return r.buildView(it), nil
}

func (r *CatalogRepo) ListWithLoans(_ context.Context) ([]catalog.ItemLoans, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	views := r.allViews()
	out := make([]catalog.ItemLoans, 0, len(views))
	for _, v := range views {
		var history []loan.Loan
		for _, l := range r.store.loans {
			if l.ItemID == v.ID {
				history = append(history, l)
			}
		}
		sort.Slice(history, func(i, j int) bool {
			if !history[i].LoanedAt.Equal(history[j].LoanedAt) {
				return history[i].LoanedAt.Before(history[j].LoanedAt)
			}
			return history[i].ID < history[j].ID
		})
		out = append(out, catalog.ItemLoans{View: v, Loans: history})
	}
	return out, nil
}

// sortKey extracts the comparable key for a storable sort field. The second
// return reports presence; absent keys (no rating, no status) sort last in
// either direction, matching the Postgres NULLS LAST ordering.
func sortKey(v catalog.View, field string) (string, bool) {
	switch field {
	case catalog.SortAuthor:
		return v.Author, true
	case catalog.SortScore:
		if v.Score == nil {
			return "", false
		}
		return fmt.Sprintf("%03d", *v.Score), true
	case catalog.SortOwnership:
		return string(v.Ownership), true
	case catalog.SortStatus:
		if v.Status == nil {
			return "", false
		}
		return string(*v.Status), true
	default:
		return v.Title, true
	}
}

func sortViews(views []catalog.View, field string, desc bool) {
	sort.Slice(views, func(i, j int) bool {
		ka, oka := sortKey(views[i], field)
		kb, okb := sortKey(views[j], field)
		switch {
		case !oka && !okb:
			return views[i].ID < views[j].ID
		case !oka:
			return false
		case !okb:
			return true
		}
		if ka != kb {
			if desc {
				return ka > kb
			}
			return ka < kb
		}
		return views[i].ID < views[j].ID
	})
}
