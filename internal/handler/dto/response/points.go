package response

type PointsResponse struct {
	Points int64 `json:"points"`
}

type PointsUpdatedResponse struct {
	Message string `json:"message"`
	Points  int64  `json:"points"`
}
