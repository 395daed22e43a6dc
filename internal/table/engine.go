package table

import (
	"sort"

	"github.com/verte-zerg/examboard/internal/model"
)

// Engine owns the record collection and the selection, sort and page state
// derived from it. It is not safe for concurrent use.
type Engine struct {
	records  []model.ExamRecord
	selected map[int64]struct{}
	sort     model.SortConfig
	page     int
	pageSize int
}

// View is a read-only snapshot of what the dashboard should render.
type View struct {
	Groups        []Group
	Page          int
	TotalPages    int
	GroupCount    int
	RecordCount   int
	Sort          model.SortConfig
	SelectedCount int
	AllSelected   bool
}

// New builds an engine over a copy of records. A pageSize below 1 is
// treated as 1.
func New(records []model.ExamRecord, pageSize int, sortCfg model.SortConfig) *Engine {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Engine{
		records:  append([]model.ExamRecord(nil), records...),
		selected: map[int64]struct{}{},
		sort:     sortCfg,
		page:     1,
		pageSize: pageSize,
	}
}

// Records returns a copy of the collection in its original order.
func (e *Engine) Records() []model.ExamRecord {
	return append([]model.ExamRecord(nil), e.records...)
}

// Len returns the number of records.
func (e *Engine) Len() int {
	return len(e.records)
}

// PageSize returns the number of groups per page.
func (e *Engine) PageSize() int {
	return e.pageSize
}

// Sort returns the active sort.
func (e *Engine) Sort() model.SortConfig {
	return e.sort
}

// SetSort replaces the active sort.
func (e *Engine) SetSort(cfg model.SortConfig) {
	e.sort = cfg
}

// ToggleSort applies a header click on key.
func (e *Engine) ToggleSort(key model.SortKey) model.SortConfig {
	e.sort = NextSort(e.sort, key)
	return e.sort
}

// Sorted returns the collection in display order.
func (e *Engine) Sorted() []model.ExamRecord {
	return SortRecords(e.records, e.sort)
}

// Groups returns every provider group in display order.
func (e *Engine) Groups() []Group {
	return GroupByProvider(e.Sorted())
}

// Page returns the current 1-based page.
func (e *Engine) Page() int {
	return e.page
}

// TotalPages returns the page count over provider groups.
func (e *Engine) TotalPages() int {
	return TotalPages(len(e.Groups()), e.pageSize)
}

// SetPage moves to page, clamped to [1, TotalPages].
func (e *Engine) SetPage(page int) int {
	e.page = clampInt(page, 1, e.TotalPages())
	return e.page
}

// NextPage advances one page if possible.
func (e *Engine) NextPage() int {
	return e.SetPage(e.page + 1)
}

// PrevPage goes back one page if possible.
func (e *Engine) PrevPage() int {
	return e.SetPage(e.page - 1)
}

// View derives the current page of groups.
func (e *Engine) View() View {
	groups := e.Groups()
	return View{
		Groups:        Paginate(groups, e.page, e.pageSize),
		Page:          e.page,
		TotalPages:    TotalPages(len(groups), e.pageSize),
		GroupCount:    len(groups),
		RecordCount:   len(e.records),
		Sort:          e.sort,
		SelectedCount: len(e.selected),
		AllSelected:   e.AllSelected(),
	}
}

// ToggleRow flips the selection of id. Unknown ids are ignored.
func (e *Engine) ToggleRow(id int64) bool {
	if _, ok := e.selected[id]; ok {
		delete(e.selected, id)
		return false
	}
	if e.indexOf(id) < 0 {
		return false
	}
	e.selected[id] = struct{}{}
	return true
}

// ToggleSelectAll clears the selection when every record is selected and
// otherwise selects every record.
func (e *Engine) ToggleSelectAll() bool {
	if e.AllSelected() {
		e.selected = map[int64]struct{}{}
		return false
	}
	for _, rec := range e.records {
		e.selected[rec.ID] = struct{}{}
	}
	return e.AllSelected()
}

// AllSelected reports whether the collection is non-empty and fully selected.
func (e *Engine) AllSelected() bool {
	return len(e.records) > 0 && len(e.selected) == len(e.records)
}

// IsSelected reports whether id is selected.
func (e *Engine) IsSelected(id int64) bool {
	_, ok := e.selected[id]
	return ok
}

// SelectedCount returns the number of selected records.
func (e *Engine) SelectedCount() int {
	return len(e.selected)
}

// SelectedIDs returns the selected ids in ascending order.
func (e *Engine) SelectedIDs() []int64 {
	ids := make([]int64, 0, len(e.selected))
	for id := range e.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CanDeleteSelected gates the delete-selected action.
func (e *Engine) CanDeleteSelected() bool {
	return len(e.selected) > 0
}

// CanDeleteAll gates the delete-all action.
func (e *Engine) CanDeleteAll() bool {
	return len(e.records) > 0
}

// DeleteRow removes the record with id. It reports false when no such record
// exists.
func (e *Engine) DeleteRow(id int64) bool {
	i := e.indexOf(id)
	if i < 0 {
		return false
	}
	e.records = append(e.records[:i:i], e.records[i+1:]...)
	delete(e.selected, id)
	e.reclamp()
	return true
}

// DeleteSelected removes every selected record and returns their ids. It is
// a no-op returning nil when nothing is selected.
func (e *Engine) DeleteSelected() []int64 {
	if !e.CanDeleteSelected() {
		return nil
	}
	ids := e.SelectedIDs()
	kept := make([]model.ExamRecord, 0, len(e.records))
	for _, rec := range e.records {
		if _, ok := e.selected[rec.ID]; ok {
			continue
		}
		kept = append(kept, rec)
	}
	e.records = kept
	e.selected = map[int64]struct{}{}
	e.reclamp()
	return ids
}

// DeleteAll clears the collection and returns how many records were removed.
func (e *Engine) DeleteAll() int {
	n := len(e.records)
	if n == 0 {
		return 0
	}
	e.records = nil
	e.selected = map[int64]struct{}{}
	e.page = 1
	return n
}

func (e *Engine) indexOf(id int64) int {
	for i, rec := range e.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) reclamp() {
	e.SetPage(e.page)
}
