package banner

type CreateBannerRequest struct {
	Type         string `json:"type" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	ScrollStart  *int   `json:"scroll_start"`
	ScrollEnd    *int   `json:"scroll_end"`
	ImageURL     string `json:"image_url" validate:"required"`
}

type UpdateBannerRequest struct {
	DisplayOrder *int    `json:"display_order"`
	ScrollStart  *int    `json:"scroll_start"`
	ScrollEnd    *int    `json:"scroll_end"`
	ImageURL     *string `json:"image_url"`
}
