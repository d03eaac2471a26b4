package topic

import (
	"context"
	"sync"

	"github.com/avolkov-dev/forum-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc func(ctx context.Context, id int64, include domain.TopicInclude) (*domain.Topic, error)
	InsertFunc  func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	UpdateFunc  func(ctx context.Context, id int64, params domain.TopicUpdateParams) (*domain.Topic, error)
	DeleteFunc  func(ctx context.Context, id int64) error

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			ID      int64
			Include domain.TopicInclude
		}
		Insert []struct {
			Ctx   context.Context
			Topic *domain.Topic
		}
		Update []struct {
			Ctx    context.Context
			ID     int64
			Params domain.TopicUpdateParams
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
	}
	lockGetByID sync.RWMutex
	lockInsert  sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, id int64, include domain.TopicInclude) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      int64
		Include domain.TopicInclude
	}{Ctx: ctx, ID: id, Include: include}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id, include)
}

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	ID      int64
	Include domain.TopicInclude
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) Insert(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.InsertFunc == nil {
		panic("topicRepoMock.InsertFunc: method is nil but topicRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic *domain.Topic
	}{Ctx: ctx, Topic: topic}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, topic)
}

func (mock *topicRepoMock) InsertCalls() []struct {
	Ctx   context.Context
	Topic *domain.Topic
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *topicRepoMock) Update(ctx context.Context, id int64, params domain.TopicUpdateParams) (*domain.Topic, error) {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     int64
		Params domain.TopicUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *topicRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	ID     int64
	Params domain.TopicUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *topicRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
