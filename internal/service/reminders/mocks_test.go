package reminders

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

var _ reminderRepo = &reminderRepoMock{}

type reminderRepoMock struct {
	UpsertFunc       func(ctx context.Context, rem domain.Reminder) (domain.Reminder, error)
	GetByEventIDFunc func(ctx context.Context, eventID uuid.UUID) (domain.Reminder, error)
	DeleteFunc       func(ctx context.Context, eventID uuid.UUID) error
	ListDueOnFunc    func(ctx context.Context, day time.Time) ([]domain.EventRow, error)

	calls struct {
		Upsert []struct {
			Rem domain.Reminder
		}
		GetByEventID []struct {
			EventID uuid.UUID
		}
		Delete []struct {
			EventID uuid.UUID
		}
		ListDueOn []struct {
			Day time.Time
		}
	}
	lockUpsert       sync.RWMutex
	lockGetByEventID sync.RWMutex
	lockDelete       sync.RWMutex
	lockListDueOn    sync.RWMutex
}

func (mock *reminderRepoMock) Upsert(ctx context.Context, rem domain.Reminder) (domain.Reminder, error) {
	if mock.UpsertFunc == nil {
		panic("reminderRepoMock.UpsertFunc: method is nil but reminderRepo.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ Rem domain.Reminder }{Rem: rem})
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, rem)
}

func (mock *reminderRepoMock) UpsertCalls() []struct{ Rem domain.Reminder } {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *reminderRepoMock) GetByEventID(ctx context.Context, eventID uuid.UUID) (domain.Reminder, error) {
	if mock.GetByEventIDFunc == nil {
		panic("reminderRepoMock.GetByEventIDFunc: method is nil but reminderRepo.GetByEventID was just called")
	}
	mock.lockGetByEventID.Lock()
	mock.calls.GetByEventID = append(mock.calls.GetByEventID, struct{ EventID uuid.UUID }{EventID: eventID})
	mock.lockGetByEventID.Unlock()
	return mock.GetByEventIDFunc(ctx, eventID)
}

func (mock *reminderRepoMock) Delete(ctx context.Context, eventID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("reminderRepoMock.DeleteFunc: method is nil but reminderRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ EventID uuid.UUID }{EventID: eventID})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, eventID)
}

func (mock *reminderRepoMock) DeleteCalls() []struct{ EventID uuid.UUID } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *reminderRepoMock) ListDueOn(ctx context.Context, day time.Time) ([]domain.EventRow, error) {
	if mock.ListDueOnFunc == nil {
		panic("reminderRepoMock.ListDueOnFunc: method is nil but reminderRepo.ListDueOn was just called")
	}
	mock.lockListDueOn.Lock()
	mock.calls.ListDueOn = append(mock.calls.ListDueOn, struct{ Day time.Time }{Day: day})
	mock.lockListDueOn.Unlock()
	return mock.ListDueOnFunc(ctx, day)
}

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	GetByIDFunc func(ctx context.Context, eventID uuid.UUID) (domain.Event, error)

	calls struct {
		GetByID []struct {
			EventID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *eventRepoMock) GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	if mock.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc: method is nil but eventRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ EventID uuid.UUID }{EventID: eventID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, eventID)
}

var _ contractRepo = &contractRepoMock{}

type contractRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)

	calls struct {
		GetByID []struct {
			UserID     uuid.UUID
			ContractID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *contractRepoMock) GetByID(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error) {
	if mock.GetByIDFunc == nil {
		panic("contractRepoMock.GetByIDFunc: method is nil but contractRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		UserID     uuid.UUID
		ContractID uuid.UUID
	}{UserID: userID, ContractID: contractID})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, contractID)
}

func (mock *contractRepoMock) GetByIDCalls() []struct {
	UserID     uuid.UUID
	ContractID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
