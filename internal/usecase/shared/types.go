package shared

// Write-side snapshots keep commands independent of read-side query views
type VoucherSnapshot struct {
	ID         int64
	Title      string
	CostPoints int64
}

type VideoTaskSnapshot struct {
	ID         int64
	Title      string
	YoutubeID  string
	PointValue int32
}
