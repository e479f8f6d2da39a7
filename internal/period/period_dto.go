package period

type CreatePeriodRequest struct {
	Year        int    `json:"year" binding:"required"`
	Month       int    `json:"month" binding:"required,min=1,max=12"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
}

type PeriodResponse struct {
	ID          string `json:"id"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	IsClosed    bool   `json:"is_closed"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
