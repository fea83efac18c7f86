package http

import (
	"net/http"

	"sepulka/internal/core/application/usecases/commands"
	"sepulka/internal/core/application/usecases/queries"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Signup handles POST /api/v1/users. Anyone may register.
func (s *Server) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewRegisterUserCommand(ActorFrom(c), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	u, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userViewOf(queries.ViewOf(u)))
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(c echo.Context) error {
	actor, err := authorize(c, policy.ListUsers)
	if err != nil {
		return err
	}
	page, err := pageParams(c, s.pageSize)
	if err != nil {
		return err
	}
	role, err := roleParam(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListUsersQuery(actor, page, role)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListUsers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pageViewOf(result, userViewOf))
}

// GetUser handles GET /api/v1/users/:username.
func (s *Server) GetUser(c echo.Context) error {
	actor := ActorFrom(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return err
	}
	username, err := pathParam(c, "username")
	if err != nil {
		return err
	}
	if err = authorizeAccount(actor, policy.RetrieveUser, username); err != nil {
		return err
	}
	return s.getUser(c, actor, username)
}

// GetMe handles GET /api/v1/users/me.
func (s *Server) GetMe(c echo.Context) error {
	actor := ActorFrom(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return err
	}
	return s.getUser(c, actor, actor.Username())
}

// UpdateUser handles PUT /api/v1/users/:username.
func (s *Server) UpdateUser(c echo.Context) error {
	actor := ActorFrom(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return err
	}
	username, err := pathParam(c, "username")
	if err != nil {
		return err
	}
	if err = authorizeAccount(actor, policy.UpdateUser, username); err != nil {
		return err
	}
	return s.updateUser(c, actor, username)
}

// UpdateMe handles PUT /api/v1/users/me.
func (s *Server) UpdateMe(c echo.Context) error {
	actor := ActorFrom(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return err
	}
	return s.updateUser(c, actor, actor.Username())
}

// DeleteUser handles DELETE /api/v1/users/:username.
func (s *Server) DeleteUser(c echo.Context) error {
	actor := ActorFrom(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return err
	}
	username, err := pathParam(c, "username")
	if err != nil {
		return err
	}
	if err = authorizeAccount(actor, policy.DestroyUser, username); err != nil {
		return err
	}
	return s.deleteUser(c, actor, username)
}

// DeleteMe handles DELETE /api/v1/users/me.
func (s *Server) DeleteMe(c echo.Context) error {
	actor := ActorFrom(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return err
	}
	return s.deleteUser(c, actor, actor.Username())
}

// Login handles POST /api/v1/users/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(req.Username, req.Password)
	if err != nil {
		return err
	}

	token, err := s.handlers.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tokenViewOf(token))
}

// Logout handles POST /api/v1/users/logout. It revokes the token the
// request was authenticated with.
func (s *Server) Logout(c echo.Context) error {
	actor := ActorFrom(c)
	if err := policy.RequireAuthenticated(actor); err != nil {
		return err
	}
	claims, ok := ClaimsFrom(c)
	if !ok {
		return errs.NewAuthenticationError("authentication credentials were not provided")
	}

	cmd, err := commands.NewLogoutCommand(actor, claims.TokenID, claims.ExpiresAt)
	if err != nil {
		return err
	}

	if err = s.handlers.Logout.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// authorizeAccount admits the caller acting on its own account and
// otherwise evaluates action.
func authorizeAccount(actor policy.Actor, action policy.Action, username string) error {
	if actor.IsAuthenticated() && actor.Username() == username {
		return nil
	}
	return policy.Authorize(actor, action)
}

func (s *Server) getUser(c echo.Context, actor policy.Actor, username string) error {
	query, err := queries.NewGetUserQuery(actor, username)
	if err != nil {
		return err
	}

	view, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userViewOf(view))
}

func (s *Server) updateUser(c echo.Context, actor policy.Actor, username string) error {
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(actor, username, req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	u, err := s.handlers.UpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userViewOf(queries.ViewOf(u)))
}

func (s *Server) deleteUser(c echo.Context, actor policy.Actor, username string) error {
	cmd, err := commands.NewDeleteUserCommand(actor, username)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
