package request

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1"`
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

func (p PaginatedRequest) Limit(max int) int {
	if p.PerPage < 1 {
		return 10
	}
	if max > 0 && p.PerPage > max {
		return max
	}
	return p.PerPage
}
