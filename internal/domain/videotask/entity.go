package videotask

import (
	"errors"
	"time"
)

var (
	ErrInvalidTaskID      = errors.New("task id must be positive")
	ErrNegativeReward     = errors.New("task point value cannot be negative")
	ErrTaskAlreadyWatched = errors.New("video task already completed")
)

type Task struct {
	id         int64
	title      string
	youtubeID  string
	pointValue int32
}

func ReconstructTask(id int64, title, youtubeID string, pointValue int32) (*Task, error) {
	if id <= 0 {
		return nil, ErrInvalidTaskID
	}
	if pointValue < 0 {
		return nil, ErrNegativeReward
	}
	return &Task{
		id:         id,
		title:      title,
		youtubeID:  youtubeID,
		pointValue: pointValue,
	}, nil
}

func (t *Task) ID() int64         { return t.id }
func (t *Task) Title() string     { return t.title }
func (t *Task) YoutubeID() string { return t.youtubeID }
func (t *Task) PointValue() int32 { return t.pointValue }

// Reward is the credit a first completion earns.
func (t *Task) Reward() int64 {
	return int64(t.pointValue)
}

// Watch records that a user completed a task; at most one may exist per (user, task).
type Watch struct {
	userID    int64
	taskID    int64
	watchedAt time.Time
}

func NewWatch(userID int64, task *Task, watchedAt time.Time) Watch {
	return Watch{userID: userID, taskID: task.ID(), watchedAt: watchedAt}
}

func (w Watch) UserID() int64        { return w.userID }
func (w Watch) TaskID() int64        { return w.taskID }
func (w Watch) WatchedAt() time.Time { return w.watchedAt }

func ValidateTaskID(id int64) error {
	if id <= 0 {
		return ErrInvalidTaskID
	}
	return nil
}
