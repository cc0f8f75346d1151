package entity

// TestFilter narrows and paginates test catalog listings. DateFrom is an
// inclusive lower bound, DateExact an exact match; Page/Size is plain
// offset/limit (skip Page*Size, take Size). Size <= 0 disables pagination.
type TestFilter struct {
	DateFrom  string
	DateExact string
	Page      int
	Size      int
}
