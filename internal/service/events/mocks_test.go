package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	CreateFunc  func(ctx context.Context, contractID uuid.UUID, eventType domain.EventType, date time.Time) (domain.Event, error)
	GetByIDFunc func(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	UpdateFunc  func(ctx context.Context, eventID uuid.UUID, eventType domain.EventType, date time.Time) (domain.Event, error)
	DeleteFunc  func(ctx context.Context, eventID uuid.UUID) error
	QueryFunc   func(ctx context.Context, userID uuid.UUID, f domain.EventFilter) ([]domain.EventRow, error)

	calls struct {
		Create []struct {
			ContractID uuid.UUID
			EventType  domain.EventType
			Date       time.Time
		}
		Update []struct {
			EventID   uuid.UUID
			EventType domain.EventType
			Date      time.Time
		}
		Delete []struct {
			EventID uuid.UUID
		}
		Query []struct {
			UserID uuid.UUID
			Filter domain.EventFilter
		}
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
	lockQuery  sync.RWMutex
}

func (mock *eventRepoMock) Create(ctx context.Context, contractID uuid.UUID, eventType domain.EventType, date time.Time) (domain.Event, error) {
	if mock.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc: method is nil but eventRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		ContractID uuid.UUID
		EventType  domain.EventType
		Date       time.Time
	}{ContractID: contractID, EventType: eventType, Date: date})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, contractID, eventType, date)
}

func (mock *eventRepoMock) CreateCalls() []struct {
	ContractID uuid.UUID
	EventType  domain.EventType
	Date       time.Time
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *eventRepoMock) GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, eventID)
}

func (mock *eventRepoMock) Update(ctx context.Context, eventID uuid.UUID, eventType domain.EventType, date time.Time) (domain.Event, error) {
	if mock.UpdateFunc == nil {
		panic("eventRepoMock.UpdateFunc: method is nil but eventRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		EventID   uuid.UUID
		EventType domain.EventType
		Date      time.Time
	}{EventID: eventID, EventType: eventType, Date: date})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, eventID, eventType, date)
}

func (mock *eventRepoMock) UpdateCalls() []struct {
	EventID   uuid.UUID
	EventType domain.EventType
	Date      time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *eventRepoMock) Delete(ctx context.Context, eventID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc: method is nil but eventRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ EventID uuid.UUID }{EventID: eventID})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, eventID)
}

func (mock *eventRepoMock) DeleteCalls() []struct{ EventID uuid.UUID } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *eventRepoMock) Query(ctx context.Context, userID uuid.UUID, f domain.EventFilter) ([]domain.EventRow, error) {
	if mock.QueryFunc == nil {
		panic("eventRepoMock.QueryFunc: method is nil but eventRepo.Query was just called")
	}
	mock.lockQuery.Lock()
	mock.calls.Query = append(mock.calls.Query, struct {
		UserID uuid.UUID
		Filter domain.EventFilter
	}{UserID: userID, Filter: f})
	mock.lockQuery.Unlock()
	return mock.QueryFunc(ctx, userID, f)
}

func (mock *eventRepoMock) QueryCalls() []struct {
	UserID uuid.UUID
	Filter domain.EventFilter
} {
	mock.lockQuery.RLock()
	calls := mock.calls.Query
	mock.lockQuery.RUnlock()
	return calls
}

var _ contractRepo = &contractRepoMock{}

type contractRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)
}

func (mock *contractRepoMock) GetByID(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error) {
	if mock.GetByIDFunc == nil {
		panic("contractRepoMock.GetByIDFunc: method is nil but contractRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, contractID)
}
