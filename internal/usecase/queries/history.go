package queries

import (
	"context"
)

//go:generate mockgen -source=history.go -destination=../../../tests/mock/queries/history.go -package=queriesmock

type HistoryReadStore interface {
	FindByUser(ctx context.Context, userID int64) ([]*HistoryEntryView, error)
}

type HistoryQueries interface {
	GetHistory(ctx context.Context, userID int64) ([]*HistoryEntryView, error)
}

type historyQueriesImpl struct {
	readStore HistoryReadStore
}

func NewHistoryQueries(readStore HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{readStore: readStore}
}

// GetHistory lists the user's redeemed lines, most recent first.
func (q *historyQueriesImpl) GetHistory(ctx context.Context, userID int64) ([]*HistoryEntryView, error) {
	entries, err := q.readStore.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*HistoryEntryView{}
	}
	return entries, nil
}
