package tabular

// Paginate returns a copy of the items on the requested page. A negative
// index, a non-positive size, or an index past the last page yields an empty
// slice.
func Paginate[T any](items []T, page PageSpec) []T {
	if page.Size <= 0 || page.Index < 0 || page.Index >= PageCount(len(items), page.Size) {
		return []T{}
	}

	start := page.Index * page.Size
	end := start + min(page.Size, len(items)-start)

	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}

// PageCount returns the number of pages needed for n items.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	pages := n / size
	if n%size != 0 {
		pages++
	}
	return pages
}
