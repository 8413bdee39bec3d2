package request

type CompleteTaskRequest struct {
	TaskID int64 `json:"task_id" binding:"required,gt=0"`
}
