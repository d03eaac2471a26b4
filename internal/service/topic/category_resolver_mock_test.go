package topic

import (
	"context"
	"sync"
)

var _ categoryResolver = &categoryResolverMock{}

type categoryResolverMock struct {
	ResolveFunc func(ctx context.Context, name string) (int64, error)

	calls struct {
		Resolve []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockResolve sync.RWMutex
}

func (mock *categoryResolverMock) Resolve(ctx context.Context, name string) (int64, error) {
	if mock.ResolveFunc == nil {
		panic("categoryResolverMock.ResolveFunc: method is nil but categoryResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, name)
}

func (mock *categoryResolverMock) ResolveCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
