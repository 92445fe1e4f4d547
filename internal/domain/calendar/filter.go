package calendar

type circleScoped interface {
	circle() string
}

// FilterByCircle projects a collection down to the entries visible under the
// active circle selection. FilterAll returns the input unchanged; any other
// value selects the subsequence whose circle id matches exactly, preserving
// relative order. Entities carrying unknown circle ids match nothing except
// FilterAll, and an unknown active value yields an empty result by
// construction. Pure: the input is never mutated.
func FilterByCircle[T circleScoped](items []T, active string) []T {
	if active == FilterAll {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.circle() == active {
			out = append(out, item)
		}
	}
	return out
}
