package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for ParcelRepository
// using PostgreSQL containers to verify database persistence behavior.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel(id string, changedAt time.Time) *parcel.Parcel {
	p, err := parcel.NewParcel(id, "Exelot", "Received", "01", changedAt)
	suite.Require().NoError(err)
	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()

	testParcel := suite.createTestParcel("PT-1042", time.Now().UTC())
	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()

	err := suite.repository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_ExistingParcel_RoundTrip() {
	ctx := context.Background()

	changedAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	testParcel, err := parcel.RestoreParcel(
		"PT-1042", "Exelot", "Held", "52", "awaiting pickup", "TLV-3", changedAt)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	loaded, err := suite.repository.Get(ctx, "PT-1042")
	suite.Require().NoError(err)

	suite.Equal("PT-1042", loaded.ID())
	suite.Equal("Exelot", loaded.Distributor())
	suite.Equal("Held", loaded.Status())
	suite.Equal("52", loaded.ClassificationCode())
	suite.Equal("awaiting pickup", loaded.Comments())
	suite.Equal("TLV-3", loaded.Site())
	suite.True(loaded.StatusChangedAt().Equal(changedAt))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_UnknownParcel_NotFound() {
	ctx := context.Background()

	loaded, err := suite.repository.Get(ctx, "PT-404")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(loaded)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_ExistingParcel_PersistsTransition() {
	ctx := context.Background()

	createdAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	testParcel := suite.createTestParcel("PT-1042", createdAt)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testParcel))

	changedAt := createdAt.Add(2 * time.Hour)
	comments := ""
	suite.Require().NoError(testParcel.ChangeStatus("Delivered", "05", &comments, changedAt))

	suite.Require().NoError(suite.repository.Update(ctx, testParcel))

	loaded, err := suite.repository.Get(ctx, "PT-1042")
	suite.Require().NoError(err)
	suite.Equal("Delivered", loaded.Status())
	suite.Equal("05", loaded.ClassificationCode())
	// Empty comments overwrite the stored value rather than being skipped.
	suite.Empty(loaded.Comments())
	suite.True(loaded.StatusChangedAt().Equal(changedAt))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_UnknownParcel_NotFound() {
	ctx := context.Background()

	testParcel := suite.createTestParcel("PT-404", time.Now().UTC())

	err := suite.repository.Update(ctx, testParcel)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetStaleBefore_FiltersAndOrders() {
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	oldest := suite.createTestParcel("PT-1", now.Add(-96*time.Hour))
	older := suite.createTestParcel("PT-2", now.Add(-72*time.Hour))
	fresh := suite.createTestParcel("PT-3", now.Add(-1*time.Hour))

	for _, p := range []*parcel.Parcel{older, fresh, oldest} {
		suite.Require().NoError(suite.repository.Add(ctx, p))
	}

	stale, err := suite.repository.GetStaleBefore(ctx, now.Add(-48*time.Hour))

	suite.Require().NoError(err)
	suite.Require().Len(stale, 2)
	suite.Equal("PT-1", stale[0].ID())
	suite.Equal("PT-2", stale[1].ID())
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
