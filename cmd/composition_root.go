package cmd

import (
	"context"

	http_adapter "sepulka/internal/adapters/in/http"
	"sepulka/internal/adapters/out/auth"
	"sepulka/internal/adapters/out/postgres"
	"sepulka/internal/core/application/usecases/commands"
	"sepulka/internal/core/application/usecases/queries"
	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  *postgres.GormUnitOfWorkFactory
	issuer      ports.TokenIssuer
	hasher      ports.PasswordHasher
	revocations ports.TokenRevocationStore
	logger      *zap.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	revocations ports.TokenRevocationStore,
	logger *zap.Logger,
) (CompositionRoot, error) {
	issuer, err := auth.NewJWTIssuer(config.JWTSecret, config.JWTIssuer, config.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		issuer:      issuer,
		hasher:      auth.NewBcryptHasher(config.BcryptCost),
		revocations: revocations,
		logger:      logger,
	}, nil
}

func (c *CompositionRoot) sepulkaUoWFactory() commands.SepulkaUoWFactory {
	return FuncSepulkaUoWFactory(func() commands.SepulkaUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateSepulkaCommandHandler() commands.CreateSepulkaCommandHandler {
	return commands.NewCreateSepulkaCommandHandler(c.sepulkaUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteSepulkaCommandHandler() commands.DeleteSepulkaCommandHandler {
	return commands.NewDeleteSepulkaCommandHandler(c.sepulkaUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAssignProcessResponsibleCommandHandler() commands.AssignProcessResponsibleCommandHandler {
	return commands.NewAssignProcessResponsibleCommandHandler(c.sepulkaUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateProcessPropertiesCommandHandler() commands.UpdateProcessPropertiesCommandHandler {
	return commands.NewUpdateProcessPropertiesCommandHandler(c.sepulkaUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.sepulkaUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.sepulkaUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAppendFlowCommandHandler() commands.AppendFlowCommandHandler {
	return commands.NewAppendFlowCommandHandler(c.sepulkaUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher, c.logger)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory(), c.hasher, c.logger)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.issuer, c.logger)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.revocations, c.logger)
}

func (c *CompositionRoot) CreateCreateStaffUserCommandHandler() commands.CreateStaffUserCommandHandler {
	return commands.NewCreateStaffUserCommandHandler(c.userUoWFactory(), c.hasher, c.logger)
}

func (c *CompositionRoot) CreateListSepulkasQueryHandler() queries.ListSepulkasQueryHandler {
	return queries.NewListSepulkasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSepulkaQueryHandler() queries.GetSepulkaQueryHandler {
	return queries.NewGetSepulkaQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListFlowQueryHandler() queries.ListFlowQueryHandler {
	return queries.NewListFlowQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

// CreateServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateServer(openapi *http_adapter.OpenAPI) *http_adapter.Server {
	handlers := http_adapter.Handlers{
		CreateSepulka:            c.CreateCreateSepulkaCommandHandler(),
		DeleteSepulka:            c.CreateDeleteSepulkaCommandHandler(),
		AssignProcessResponsible: c.CreateAssignProcessResponsibleCommandHandler(),
		UpdateProcessProperties:  c.CreateUpdateProcessPropertiesCommandHandler(),
		UpdateDelivery:           c.CreateUpdateDeliveryCommandHandler(),
		CompleteDelivery:         c.CreateCompleteDeliveryCommandHandler(),
		AppendFlow:               c.CreateAppendFlowCommandHandler(),
		RegisterUser:             c.CreateRegisterUserCommandHandler(),
		UpdateUser:               c.CreateUpdateUserCommandHandler(),
		DeleteUser:               c.CreateDeleteUserCommandHandler(),
		Login:                    c.CreateLoginCommandHandler(),
		Logout:                   c.CreateLogoutCommandHandler(),
		ListSepulkas:             c.CreateListSepulkasQueryHandler(),
		GetSepulka:               c.CreateGetSepulkaQueryHandler(),
		ListFlow:                 c.CreateListFlowQueryHandler(),
		ListUsers:                c.CreateListUsersQueryHandler(),
		GetUser:                  c.CreateGetUserQueryHandler(),
	}

	return http_adapter.NewServer(
		handlers,
		c.issuer,
		c.revocations,
		UoWUserLookup{factory: c.userUoWFactory()},
		openapi,
		c.logger,
		c.config.PageSize,
	)
}

// EnsureStaffUser creates or promotes the configured administrator. It does
// nothing when no administrator is configured.
func (c *CompositionRoot) EnsureStaffUser(ctx context.Context) error {
	if c.config.AdminUsername == "" {
		return nil
	}

	cmd, err := commands.NewCreateStaffUserCommand(
		c.config.AdminUsername,
		c.config.AdminEmail,
		c.config.AdminPassword,
		c.config.AdminRole,
	)
	if err != nil {
		return err
	}

	return c.CreateCreateStaffUserCommandHandler().Handle(ctx, cmd)
}

type FuncSepulkaUoWFactory func() commands.SepulkaUoW

func (f FuncSepulkaUoWFactory) Create() commands.SepulkaUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// UoWUserLookup loads users for the identity middleware through a fresh,
// non-transactional unit of work per request.
type UoWUserLookup struct {
	factory commands.UserUoWFactory
}

func (l UoWUserLookup) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	return l.factory.Create().UserRepository().Get(ctx, id)
}
