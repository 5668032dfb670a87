package request

// SubmitListingRequest declares fields in the precedence validation errors are
// reported in: name, category, condition, price, phone, region, locality.
type SubmitListingRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Category    string   `json:"category" validate:"required,max=100"`
	Condition   string   `json:"condition" validate:"required,oneof=new used refurbished"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Phone       string   `json:"phone" validate:"required,min=6,max=16"`
	Region      string   `json:"region" validate:"required,max=100"`
	Locality    string   `json:"locality" validate:"required,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Brand       *string  `json:"brand,omitempty" validate:"omitempty,max=100"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	WhatsApp    *string  `json:"whatsapp,omitempty" validate:"omitempty,min=6,max=16"`
}

// UpdateListingRequest applies a partial update; absent fields stay untouched.
// Status is never part of an edit.
type UpdateListingRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Condition   *string  `json:"condition,omitempty" validate:"omitempty,oneof=new used refurbished"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Phone       *string  `json:"phone,omitempty" validate:"omitempty,min=6,max=16"`
	Region      *string  `json:"region,omitempty" validate:"omitempty,max=100"`
	Locality    *string  `json:"locality,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Brand       *string  `json:"brand,omitempty" validate:"omitempty,max=100"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	WhatsApp    *string  `json:"whatsapp,omitempty" validate:"omitempty,min=6,max=16"`
}

// BrowseListingsRequest is assembled from query parameters.
type BrowseListingsRequest struct {
	Category  *string
	Condition *string
	Region    *string
	Locality  *string
	Query     *string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string
	SortDesc  bool
	Page      int
	PerPage   int
}
