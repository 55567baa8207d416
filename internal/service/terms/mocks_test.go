package terms

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	UpsertFunc         func(ctx context.Context, t domain.Term) (domain.Term, error)
	GetByKeyFunc       func(ctx context.Context, contractID uuid.UUID, key string) (domain.Term, error)
	ListByContractFunc func(ctx context.Context, contractID uuid.UUID) ([]domain.Term, error)
	DeleteFunc         func(ctx context.Context, contractID uuid.UUID, key string) error

	calls struct {
		Upsert []struct {
			Term domain.Term
		}
		Delete []struct {
			ContractID uuid.UUID
			Key        string
		}
	}
	lockUpsert sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *termRepoMock) Upsert(ctx context.Context, t domain.Term) (domain.Term, error) {
	if mock.UpsertFunc == nil {
		panic("termRepoMock.UpsertFunc: method is nil but termRepo.Upsert was just called")
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ Term domain.Term }{Term: t})
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, t)
}

func (mock *termRepoMock) UpsertCalls() []struct{ Term domain.Term } {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *termRepoMock) GetByKey(ctx context.Context, contractID uuid.UUID, key string) (domain.Term, error) {
	if mock.GetByKeyFunc == nil {
		panic("termRepoMock.GetByKeyFunc: method is nil but termRepo.GetByKey was just called")
	}
	return mock.GetByKeyFunc(ctx, contractID, key)
}

func (mock *termRepoMock) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Term, error) {
	if mock.ListByContractFunc == nil {
		panic("termRepoMock.ListByContractFunc: method is nil but termRepo.ListByContract was just called")
	}
	return mock.ListByContractFunc(ctx, contractID)
}

func (mock *termRepoMock) Delete(ctx context.Context, contractID uuid.UUID, key string) error {
	if mock.DeleteFunc == nil {
		panic("termRepoMock.DeleteFunc: method is nil but termRepo.Delete was just called")
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		ContractID uuid.UUID
		Key        string
	}{ContractID: contractID, Key: key})
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, contractID, key)
}

func (mock *termRepoMock) DeleteCalls() []struct {
	ContractID uuid.UUID
	Key        string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	UpsertDerivedFunc func(ctx context.Context, contractID uuid.UUID, termKey string, eventType domain.EventType, date time.Time) (domain.Event, error)
	DeleteDerivedFunc func(ctx context.Context, contractID uuid.UUID, termKey string) error

	calls struct {
		UpsertDerived []struct {
			ContractID uuid.UUID
			TermKey    string
			EventType  domain.EventType
			Date       time.Time
		}
		DeleteDerived []struct {
			ContractID uuid.UUID
			TermKey    string
		}
	}
	lockUpsertDerived sync.RWMutex
	lockDeleteDerived sync.RWMutex
}

func (mock *eventRepoMock) UpsertDerived(ctx context.Context, contractID uuid.UUID, termKey string, eventType domain.EventType, date time.Time) (domain.Event, error) {
	if mock.UpsertDerivedFunc == nil {
		panic("eventRepoMock.UpsertDerivedFunc: method is nil but eventRepo.UpsertDerived was just called")
	}
	mock.lockUpsertDerived.Lock()
	mock.calls.UpsertDerived = append(mock.calls.UpsertDerived, struct {
		ContractID uuid.UUID
		TermKey    string
		EventType  domain.EventType
		Date       time.Time
	}{ContractID: contractID, TermKey: termKey, EventType: eventType, Date: date})
	mock.lockUpsertDerived.Unlock()
	return mock.UpsertDerivedFunc(ctx, contractID, termKey, eventType, date)
}

func (mock *eventRepoMock) UpsertDerivedCalls() []struct {
	ContractID uuid.UUID
	TermKey    string
	EventType  domain.EventType
	Date       time.Time
} {
	mock.lockUpsertDerived.RLock()
	calls := mock.calls.UpsertDerived
	mock.lockUpsertDerived.RUnlock()
	return calls
}

func (mock *eventRepoMock) DeleteDerived(ctx context.Context, contractID uuid.UUID, termKey string) error {
	if mock.DeleteDerivedFunc == nil {
		panic("eventRepoMock.DeleteDerivedFunc: method is nil but eventRepo.DeleteDerived was just called")
	}
	mock.lockDeleteDerived.Lock()
	mock.calls.DeleteDerived = append(mock.calls.DeleteDerived, struct {
		ContractID uuid.UUID
		TermKey    string
	}{ContractID: contractID, TermKey: termKey})
	mock.lockDeleteDerived.Unlock()
	return mock.DeleteDerivedFunc(ctx, contractID, termKey)
}

func (mock *eventRepoMock) DeleteDerivedCalls() []struct {
	ContractID uuid.UUID
	TermKey    string
} {
	mock.lockDeleteDerived.RLock()
	calls := mock.calls.DeleteDerived
	mock.lockDeleteDerived.RUnlock()
	return calls
}

var _ contractRepo = &contractRepoMock{}

type contractRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)
	GetByIDForUpdateFunc func(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)

	calls struct {
		GetByIDForUpdate []struct {
			UserID     uuid.UUID
			ContractID uuid.UUID
		}
	}
	lockGetByIDForUpdate sync.RWMutex
}

func (mock *contractRepoMock) GetByID(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error) {
	if mock.GetByIDFunc == nil {
		panic("contractRepoMock.GetByIDFunc: method is nil but contractRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, contractID)
}

func (mock *contractRepoMock) GetByIDForUpdate(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("contractRepoMock.GetByIDForUpdateFunc: method is nil but contractRepo.GetByIDForUpdate was just called")
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct {
		UserID     uuid.UUID
		ContractID uuid.UUID
	}{UserID: userID, ContractID: contractID})
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, userID, contractID)
}

func (mock *contractRepoMock) GetByIDForUpdateCalls() []struct {
	UserID     uuid.UUID
	ContractID uuid.UUID
} {
	mock.lockGetByIDForUpdate.RLock()
	calls := mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
