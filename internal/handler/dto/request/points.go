package request

// Delta is a pointer so a missing field is rejected rather than read as zero.
type UpdatePointsRequest struct {
	Delta *float64 `json:"delta" binding:"required"`
}
