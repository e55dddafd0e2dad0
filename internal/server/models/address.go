package models

// AddressUsage counts how many times an address was recorded. The row is
// keyed by Address alone; UserName is whoever recorded it first.
type AddressUsage struct {
	Address  string
	UserName string
	Count    int64
}

// SortOrder selects the direction of a usage ranking.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// ParseSortOrder accepts "asc" and "desc"; anything else is ascending.
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortDescending {
		return SortDescending
	}
	return SortAscending
}
