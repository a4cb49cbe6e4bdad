package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"rentmoto/internal/adapters/out/postgres"
	"rentmoto/internal/core/application/usecases/commands"
	"rentmoto/internal/core/application/usecases/queries"
	"rentmoto/internal/core/domain/model/kernel"
	"rentmoto/internal/core/ports"
	"rentmoto/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	publisher  ports.EventPublisher
	storage    ports.PhotoStorage
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	storage ports.PhotoStorage,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      kernel.NewSystemClock(),
		publisher:  publisher,
		storage:    storage,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterMotorcycleCommandHandler() commands.RegisterMotorcycleCommandHandler {
	var f commands.MotorcycleUoWFactory = FuncMotorcycleUoWFactory(func() commands.MotorcycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterMotorcycleCommandHandler(f, c.clock, c.publisher, c.config.MQTTMotorcycleTopic)
}

func (c *CompositionRoot) CreateRenameMotorcycleCommandHandler() commands.RenameMotorcycleCommandHandler {
	var f commands.MotorcycleUoWFactory = FuncMotorcycleUoWFactory(func() commands.MotorcycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRenameMotorcycleCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeMotorcyclePlateCommandHandler() commands.ChangeMotorcyclePlateCommandHandler {
	var f commands.MotorcycleUoWFactory = FuncMotorcycleUoWFactory(func() commands.MotorcycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeMotorcyclePlateCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateDeleteMotorcycleCommandHandler() commands.DeleteMotorcycleCommandHandler {
	var f commands.MotorcycleUoWFactory = FuncMotorcycleUoWFactory(func() commands.MotorcycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMotorcycleCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterRiderCommandHandler() commands.RegisterRiderCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterRiderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateUpdateRiderCNHPhotoCommandHandler() commands.UpdateRiderCNHPhotoCommandHandler {
	var f commands.RiderUoWFactory = FuncRiderUoWFactory(func() commands.RiderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRiderCNHPhotoCommandHandler(f, c.storage, c.clock)
}

func (c *CompositionRoot) CreateCreateRentalCommandHandler() commands.CreateRentalCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRentalCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateReturnRentalCommandHandler() commands.ReturnRentalCommandHandler {
	var f commands.RentalUoWFactory = FuncRentalUoWFactory(func() commands.RentalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReturnRentalCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetMotorcyclesQueryHandler() queries.GetMotorcyclesQueryHandler {
	return queries.NewGetMotorcyclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMotorcycleQueryHandler() queries.GetMotorcycleQueryHandler {
	return queries.NewGetMotorcycleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRentalQueryHandler() queries.GetRentalQueryHandler {
	return queries.NewGetRentalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePreviewReturnQueryHandler() queries.PreviewReturnQueryHandler {
	return queries.NewPreviewReturnQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOverdueRentalsQueryHandler() queries.ListOverdueRentalsQueryHandler {
	return queries.NewListOverdueRentalsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListOverdueRentalsQueryHandler(), c.clock, c.logger)
}

type FuncMotorcycleUoWFactory func() commands.MotorcycleUoW

func (f FuncMotorcycleUoWFactory) Create() commands.MotorcycleUoW {
	return f()
}

type FuncRiderUoWFactory func() commands.RiderUoW

func (f FuncRiderUoWFactory) Create() commands.RiderUoW {
	return f()
}

type FuncRentalUoWFactory func() commands.RentalUoW

func (f FuncRentalUoWFactory) Create() commands.RentalUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
