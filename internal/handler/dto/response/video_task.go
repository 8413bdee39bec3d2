package response

import (
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VideoTaskResponse struct {
	TaskID     int64  `json:"task_id"`
	Title      string `json:"title"`
	YoutubeID  string `json:"youtube_id"`
	PointValue int32  `json:"point_value"`
}

type VideoTaskListResponse struct {
	Tasks []VideoTaskResponse `json:"tasks"`
}

type VideoTaskDetailResponse struct {
	Task VideoTaskResponse `json:"task"`
}

type TaskCompletedResponse struct {
	Message string `json:"message"`
	Added   int64  `json:"added"`
	Points  int64  `json:"points"`
}

func FromVideoTaskViews(tasks []*queries.VideoTaskView) (*VideoTaskListResponse, error) {
	res := &VideoTaskListResponse{Tasks: []VideoTaskResponse{}}
	if err := copier.Copy(&res.Tasks, tasks); err != nil {
		return nil, err
	}
	return res, nil
}

func FromVideoTaskView(task *queries.VideoTaskView) (*VideoTaskDetailResponse, error) {
	res := &VideoTaskDetailResponse{}
	if err := copier.Copy(&res.Task, task); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCompleteTaskResult(r *commands.CompleteTaskResult) *TaskCompletedResponse {
	return &TaskCompletedResponse{
		Message: "Points awarded",
		Added:   r.Added,
		Points:  r.Balance,
	}
}
