package queries_test

import (
	"context"
	"testing"
	"time"

	"parceltrack/internal/adapters/out/postgres/parcelrepo"
	"parceltrack/internal/adapters/out/postgres/statusrepo"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type StatusSummaryReportQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.StatusSummaryReportQueryHandler
	repo      *parcelrepo.GormParcelRepository
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{}, &statusrepo.ClassificationCodeDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewStatusSummaryReportQueryHandler(db)
	suite.repo = parcelrepo.NewGormParcelRepository(db, &mockAggregateTracker{})
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE classification_codes").Error)
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) saveParcel(id, dist, stat, code string, changedAt time.Time) {
	p, err := parcel.NewParcel(id, dist, stat, code, changedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), p))
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) saveCodeDescription(code, description string) {
	dto := statusrepo.ClassificationCodeDTO{Code: code, Description: description}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewStatusSummaryReportQuery(time.Time{}, time.Time{}, nil)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) TestHandle_GroupsAndDescribesCodes() {
	now := time.Now().UTC()
	suite.saveCodeDescription("05", "Delivered to recipient")

	suite.saveParcel("PT-1", "Exelot", "Delivered", "05", now)
	suite.saveParcel("PT-2", "Exelot", "Delivered", "05", now)
	suite.saveParcel("PT-3", "Exelot", "Held", "52", now)

	query := queries.NewStatusSummaryReportQuery(time.Time{}, time.Time{}, nil)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Delivered", result[0].Status)
	suite.Equal("Delivered to recipient", result[0].CodeDescription)
	suite.Equal(int64(2), result[0].Count)

	// Code 52 has no description row, so the report falls back.
	suite.Equal("Held", result[1].Status)
	suite.Equal("No description", result[1].CodeDescription)
	suite.Equal(int64(1), result[1].Count)
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) TestHandle_FiltersByDistributor() {
	now := time.Now().UTC()
	suite.saveParcel("PT-1", "Exelot", "Delivered", "05", now)
	suite.saveParcel("PT-2", "FastShip", "Delivered", "05", now)

	query := queries.NewStatusSummaryReportQuery(time.Time{}, time.Time{}, []string{"FastShip"})

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("FastShip", result[0].Distributor)
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) TestHandle_FiltersByDateRange() {
	now := time.Now().UTC()
	suite.saveParcel("PT-OLD", "Exelot", "Delivered", "05", now.Add(-30*24*time.Hour))
	suite.saveParcel("PT-NEW", "Exelot", "Delivered", "05", now)

	query := queries.NewStatusSummaryReportQuery(now.Add(-7*24*time.Hour), now.Add(time.Hour), nil)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(int64(1), result[0].Count)
}

func (suite *StatusSummaryReportQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.StatusSummaryReportQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewStatusSummaryReportQuery constructor")
}

func TestStatusSummaryReportQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(StatusSummaryReportQueryHandlerTestSuite))
}
