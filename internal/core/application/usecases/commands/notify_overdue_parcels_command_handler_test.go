package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/distributor"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDistributorRepository struct{ mock.Mock }

func (m *MockDistributorRepository) GetByNames(ctx context.Context, names []string) ([]*distributor.Distributor, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*distributor.Distributor), args.Error(1)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockNotificationUoW) DistributorRepository() ports.DistributorRepository {
	args := m.Called()
	return args.Get(0).(ports.DistributorRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockEmailSender struct{ mock.Mock }

func (m *MockEmailSender) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func staleParcel(t *testing.T, id, dist string) *parcel.Parcel {
	t.Helper()

	p, err := parcel.NewParcel(id, dist, "Received", "01",
		time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func testDistributor(t *testing.T, name, mail string) *distributor.Distributor {
	t.Helper()

	d, err := distributor.NewDistributor(kernel.NewUUID(), name, mail)
	require.NoError(t, err)
	return d
}

func TestNotifyOverdueParcelsCommandHandler_Handle_GroupsByDistributor(t *testing.T) {
	ctx := t.Context()

	parcels := []*parcel.Parcel{
		staleParcel(t, "PT-1", "Exelot"),
		staleParcel(t, "PT-2", "Exelot"),
		staleParcel(t, "PT-3", "FastShip"),
	}
	distributors := []*distributor.Distributor{
		testDistributor(t, "Exelot", "ops@exelot.example"),
		testDistributor(t, "FastShip", "ops@fastship.example"),
	}

	parcelRepo := new(MockTransitionParcelRepository)
	distributorRepo := new(MockDistributorRepository)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)
	sender := new(MockEmailSender)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("DistributorRepository").Return(distributorRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetStaleBefore", ctx, mock.AnythingOfType("time.Time")).Return(parcels, nil).Once()
	distributorRepo.On("GetByNames", ctx, mock.MatchedBy(func(names []string) bool {
		return len(names) == 2
	})).Return(distributors, nil).Once()
	factory.On("Create").Return(uow).Once()

	sender.On("Send", ctx, "ops@exelot.example", mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "PT-1") &&
			strings.Contains(body, "PT-2") &&
			strings.Contains(body, "https://portal.example")
	})).Return(nil).Once()
	sender.On("Send", ctx, "ops@fastship.example", mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "PT-3")
	})).Return(nil).Once()

	handler := commands.NewNotifyOverdueParcelsCommandHandler(
		factory, sender, "https://portal.example", discardLogger())
	cmd, err := commands.NewNotifyOverdueParcelsCommand(48 * time.Hour)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	sender.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	distributorRepo.AssertExpectations(t)
}

func TestNotifyOverdueParcelsCommandHandler_Handle_SendFailureDoesNotAbort(t *testing.T) {
	ctx := t.Context()

	parcels := []*parcel.Parcel{
		staleParcel(t, "PT-1", "Exelot"),
		staleParcel(t, "PT-3", "FastShip"),
	}
	distributors := []*distributor.Distributor{
		testDistributor(t, "Exelot", "ops@exelot.example"),
		testDistributor(t, "FastShip", "ops@fastship.example"),
	}

	parcelRepo := new(MockTransitionParcelRepository)
	distributorRepo := new(MockDistributorRepository)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)
	sender := new(MockEmailSender)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("DistributorRepository").Return(distributorRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetStaleBefore", ctx, mock.AnythingOfType("time.Time")).Return(parcels, nil).Once()
	distributorRepo.On("GetByNames", ctx, mock.Anything).Return(distributors, nil).Once()
	factory.On("Create").Return(uow).Once()

	// One mailbox is down; the other distributor is still notified.
	sender.On("Send", ctx, "ops@exelot.example", mock.Anything, mock.Anything).
		Return(errors.New("mailbox unavailable")).Once()
	sender.On("Send", ctx, "ops@fastship.example", mock.Anything, mock.Anything).
		Return(nil).Once()

	handler := commands.NewNotifyOverdueParcelsCommandHandler(
		factory, sender, "https://portal.example", discardLogger())
	cmd, err := commands.NewNotifyOverdueParcelsCommand(48 * time.Hour)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestNotifyOverdueParcelsCommandHandler_Handle_MissingContactIsSkipped(t *testing.T) {
	ctx := t.Context()

	parcels := []*parcel.Parcel{staleParcel(t, "PT-1", "Unknown Dist")}

	parcelRepo := new(MockTransitionParcelRepository)
	distributorRepo := new(MockDistributorRepository)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)
	sender := new(MockEmailSender)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("DistributorRepository").Return(distributorRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetStaleBefore", ctx, mock.AnythingOfType("time.Time")).Return(parcels, nil).Once()
	distributorRepo.On("GetByNames", ctx, mock.Anything).
		Return([]*distributor.Distributor{}, nil).Once()
	factory.On("Create").Return(uow).Once()

	handler := commands.NewNotifyOverdueParcelsCommandHandler(
		factory, sender, "https://portal.example", discardLogger())
	cmd, err := commands.NewNotifyOverdueParcelsCommand(48 * time.Hour)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNotifyOverdueParcelsCommandHandler_Handle_NoStaleParcels(t *testing.T) {
	ctx := t.Context()

	parcelRepo := new(MockTransitionParcelRepository)
	uow := new(MockNotificationUoW)
	factory := new(MockNotificationUoWFactory)
	sender := new(MockEmailSender)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	parcelRepo.On("GetStaleBefore", ctx, mock.AnythingOfType("time.Time")).
		Return([]*parcel.Parcel{}, nil).Once()
	factory.On("Create").Return(uow).Once()

	handler := commands.NewNotifyOverdueParcelsCommandHandler(
		factory, sender, "https://portal.example", discardLogger())
	cmd, err := commands.NewNotifyOverdueParcelsCommand(48 * time.Hour)
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
