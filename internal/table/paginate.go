package table

// TotalPages is the number of pages needed for count groups. It is at least 1.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	if count <= 0 {
		return 1
	}
	return 1 + (count-1)/pageSize
}

// Paginate returns the groups on a 1-based page. Out-of-range pages yield an
// empty slice.
func Paginate(groups []Group, page, pageSize int) []Group {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 || len(groups) == 0 || page-1 >= TotalPages(len(groups), pageSize) {
		return groups[:0]
	}
	// page-1 < ceil(len/pageSize), so the product stays within len(groups).
	start := (page - 1) * pageSize
	end := len(groups)
	if pageSize < end-start {
		end = start + pageSize
	}
	return groups[start:end]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
