package utils

func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

func CalculateOffset(page, perPage int) int {
	if page < 1 {
		return 0
	}
	return (page - 1) * perPage
}

// ClampPageSize caps an over-large requested page size instead of rejecting it.
func ClampPageSize(requested, max int) int {
	if requested < 1 {
		return 10
	}
	if max > 0 && requested > max {
		return max
	}
	return requested
}
