package models

import "sort"

// Entry is an item as presented to callers: its id plus its record.
type Entry struct {
	ID     string
	Record Record
}

func (e Entry) IsExternalLink() bool {
	return e.Record.Link != nil
}

// Group is never persisted; it is rebuilt from metadata on every request.
type Group struct {
	ID          string
	Category    string
	Description string
	UploadDate  string
	Members     []Entry
	Title       Entry
}

// SortEntries orders entries by (order, id). Listing, group detail and
// export all rely on this ordering.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return EntryLess(entries[i], entries[j])
	})
}

func EntryLess(a, b Entry) bool {
	if a.Record.Order != b.Record.Order {
		return a.Record.Order < b.Record.Order
	}
	return a.ID < b.ID
}
