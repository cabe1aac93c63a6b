package rest

import (
	"context"
	"github.com/heartmarshall/cotravel-backend/internal/service/settlement"
	"sync"
)

var _ replayer = &replayerMock{}

type replayerMock struct {
	ReplayUnappliedFunc func(ctx context.Context, limit int) (*settlement.ReplayResult, error)

	calls struct {
		ReplayUnapplied []struct {
			Ctx   context.Context
			Limit int
		}
	}
	lockReplayUnapplied sync.RWMutex
}

func (mock *replayerMock) ReplayUnapplied(ctx context.Context, limit int) (*settlement.ReplayResult, error) {
	if mock.ReplayUnappliedFunc == nil {
		panic("replayerMock.ReplayUnappliedFunc: method is nil but replayer.ReplayUnapplied was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockReplayUnapplied.Lock()
	mock.calls.ReplayUnapplied = append(mock.calls.ReplayUnapplied, callInfo)
	mock.lockReplayUnapplied.Unlock()
	return mock.ReplayUnappliedFunc(ctx, limit)
}

func (mock *replayerMock) ReplayUnappliedCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	var calls []struct {
		Ctx   context.Context
		Limit int
	}
	mock.lockReplayUnapplied.RLock()
	calls = mock.calls.ReplayUnapplied
	mock.lockReplayUnapplied.RUnlock()
	return calls
}
