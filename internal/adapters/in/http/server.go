package http

import (
	"net/http"

	"sepulka/internal/core/application/usecases/commands"
	"sepulka/internal/core/application/usecases/queries"
	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/core/ports"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Handlers bundles the use cases the HTTP adapter dispatches to.
type Handlers struct {
	// Command handlers
	CreateSepulka            commands.CreateSepulkaCommandHandler
	DeleteSepulka            commands.DeleteSepulkaCommandHandler
	AssignProcessResponsible commands.AssignProcessResponsibleCommandHandler
	UpdateProcessProperties  commands.UpdateProcessPropertiesCommandHandler
	UpdateDelivery           commands.UpdateDeliveryCommandHandler
	CompleteDelivery         commands.CompleteDeliveryCommandHandler
	AppendFlow               commands.AppendFlowCommandHandler
	RegisterUser             commands.RegisterUserCommandHandler
	UpdateUser               commands.UpdateUserCommandHandler
	DeleteUser               commands.DeleteUserCommandHandler
	Login                    commands.LoginCommandHandler
	Logout                   commands.LogoutCommandHandler

	// Query handlers
	ListSepulkas queries.ListSepulkasQueryHandler
	GetSepulka   queries.GetSepulkaQueryHandler
	ListFlow     queries.ListFlowQueryHandler
	ListUsers    queries.ListUsersQueryHandler
	GetUser      queries.GetUserQueryHandler
}

// Server handles the HTTP API of the sepulka service. It coordinates
// between echo and the application use cases and holds no state of its own.
type Server struct {
	handlers    Handlers
	issuer      ports.TokenIssuer
	revocations ports.TokenRevocationStore
	users       UserLookup
	openapi     *OpenAPI
	logger      *zap.Logger
	pageSize    int
}

// NewServer creates a server. A non-positive pageSize falls back to
// kernel.DefaultPageSize.
func NewServer(
	handlers Handlers,
	issuer ports.TokenIssuer,
	revocations ports.TokenRevocationStore,
	users UserLookup,
	openapi *OpenAPI,
	logger *zap.Logger,
	pageSize int,
) *Server {
	if pageSize <= 0 || pageSize > kernel.MaxPageSize {
		pageSize = kernel.DefaultPageSize
	}
	return &Server{
		handlers:    handlers,
		issuer:      issuer,
		revocations: revocations,
		users:       users,
		openapi:     openapi,
		logger:      logger,
		pageSize:    pageSize,
	}
}

// Register installs middleware, the error handler and every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(s.logger)
	e.Validator = NewValidator()

	e.Use(Recover(s.logger))
	e.Use(RequestLogger(s.logger))

	e.GET("/health", s.Health)
	if s.openapi != nil {
		s.openapi.Register(e)
	}

	api := e.Group("/api/v1", Identity(s.issuer, s.revocations, s.users, s.logger))

	api.GET("/sepulkas", s.ListSepulkas)
	api.POST("/sepulkas", s.CreateSepulka)
	api.GET("/sepulkas/:code", s.GetSepulka)
	api.DELETE("/sepulkas/:code", s.DeleteSepulka)
	api.PUT("/sepulkas/:code/process/responsible", s.AssignProcessResponsible)
	api.PUT("/sepulkas/:code/process/conveyor", s.UpdateProcessProperties)
	api.PUT("/sepulkas/:code/delivery", s.UpdateDelivery)
	api.POST("/sepulkas/:code/delivery/complete", s.CompleteDelivery)
	api.GET("/sepulkas/:code/flow", s.ListFlow)
	api.POST("/sepulkas/:code/flow", s.AppendFlow)

	api.POST("/users", s.Signup)
	api.GET("/users", s.ListUsers)
	api.POST("/users/login", s.Login)
	api.POST("/users/logout", s.Logout)
	api.GET("/users/me", s.GetMe)
	api.PUT("/users/me", s.UpdateMe)
	api.DELETE("/users/me", s.DeleteMe)
	api.GET("/users/:username", s.GetUser)
	api.PUT("/users/:username", s.UpdateUser)
	api.DELETE("/users/:username", s.DeleteUser)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// authorize evaluates the policy for action before any parameter or
// payload of the request is read.
func authorize(c echo.Context, action policy.Action) (policy.Actor, error) {
	actor := ActorFrom(c)
	if err := policy.Authorize(actor, action); err != nil {
		return policy.Actor{}, err
	}
	return actor, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}
