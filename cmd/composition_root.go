package cmd

import (
	"log/slog"
	"strconv"
	"time"

	httpin "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/email"
	"parceltrack/internal/adapters/out/postgres"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/jobs"

	"gorm.io/gorm"
)

const (
	defaultNotifyCronSpec   = "0 0 9 * * 0-4"
	defaultOverdueThreshold = 48 * time.Hour
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateImportParcelStatusesCommandHandler() commands.ImportParcelStatusesCommandHandler {
	return commands.NewImportParcelStatusesCommandHandler(
		c.CreateUpdateParcelStatusCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateAddStatusCommandHandler() commands.AddStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeactivateStatusCommandHandler() commands.DeactivateStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeactivateStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateNotifyOverdueParcelsCommandHandler() commands.NotifyOverdueParcelsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	sender := email.NewSMTPSender(
		c.configs.SMTPHost,
		c.configs.SMTPPort,
		c.configs.SMTPUser,
		c.configs.SMTPPassword,
		c.configs.SMTPFrom,
	)
	return commands.NewNotifyOverdueParcelsCommandHandler(f, sender, c.configs.PortalURL, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	spec := c.configs.NotifyCronSpec
	if spec == "" {
		spec = defaultNotifyCronSpec
	}

	threshold := defaultOverdueThreshold
	if hours, err := strconv.Atoi(c.configs.OverdueThresholdHours); err == nil && hours > 0 {
		threshold = time.Duration(hours) * time.Hour
	}

	return jobs.NewJobManager(
		c.CreateNotifyOverdueParcelsCommandHandler(), spec, threshold, c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateImportParcelStatusesCommandHandler(),
		c.CreateAddStatusCommandHandler(),
		c.CreateUpdateStatusCommandHandler(),
		c.CreateDeactivateStatusCommandHandler(),
		queries.NewGetParcelsQueryHandler(c.gormDB),
		queries.NewGetOverdueParcelsQueryHandler(c.gormDB),
		queries.NewGetParcelHistoryQueryHandler(c.gormDB),
		queries.NewGetActiveStatusesQueryHandler(c.gormDB),
		queries.NewGetStatusesQueryHandler(c.gormDB),
		queries.NewStatusSummaryReportQueryHandler(c.gormDB),
		queries.NewLostParcelsReportQueryHandler(c.gormDB),
		queries.NewHeldParcelsReportQueryHandler(c.gormDB),
		queries.NewPickupDropoffReportQueryHandler(c.gormDB),
	)
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
