package http

import (
	"net/http"

	"sepulka/internal/core/application/usecases/commands"
	"sepulka/internal/core/application/usecases/queries"
	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/policy"

	"github.com/labstack/echo/v4"
)

// ListSepulkas handles GET /api/v1/sepulkas - live orders, newest first.
func (s *Server) ListSepulkas(c echo.Context) error {
	actor, err := authorize(c, policy.ListSepulkas)
	if err != nil {
		return err
	}
	page, err := pageParams(c, s.pageSize)
	if err != nil {
		return err
	}
	state, err := stateParam(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListSepulkasQuery(actor, page, state)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListSepulkas.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pageViewOf(result, sepulkaListViewOf))
}

// CreateSepulka handles POST /api/v1/sepulkas.
func (s *Server) CreateSepulka(c echo.Context) error {
	actor, err := authorize(c, policy.CreateSepulka)
	if err != nil {
		return err
	}
	var req CreateSepulkaRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateSepulkaCommand(actor, req.Name, req.IsWarm, req.IsSquare, req.IsSoft, req.Size)
	if err != nil {
		return err
	}

	code, err := s.handlers.CreateSepulka.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return s.renderSepulka(c, actor, code, http.StatusCreated)
}

// GetSepulka handles GET /api/v1/sepulkas/:code. Deleted orders are returned
// with state "deleted".
func (s *Server) GetSepulka(c echo.Context) error {
	actor, err := authorize(c, policy.RetrieveSepulka)
	if err != nil {
		return err
	}
	code, err := codeParam(c)
	if err != nil {
		return err
	}
	return s.renderSepulka(c, actor, code, http.StatusOK)
}

// DeleteSepulka handles DELETE /api/v1/sepulkas/:code - a soft delete.
func (s *Server) DeleteSepulka(c echo.Context) error {
	actor, err := authorize(c, policy.DestroySepulka)
	if err != nil {
		return err
	}
	code, err := codeParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteSepulkaCommand(actor, code)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteSepulka.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// AssignProcessResponsible handles PUT /api/v1/sepulkas/:code/process/responsible.
func (s *Server) AssignProcessResponsible(c echo.Context) error {
	actor, err := authorize(c, policy.AssignProcessResponsible)
	if err != nil {
		return err
	}
	code, err := codeParam(c)
	if err != nil {
		return err
	}
	var req AssignResponsibleRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAssignProcessResponsibleCommand(actor, code, req.Responsible)
	if err != nil {
		return err
	}

	if err = s.handlers.AssignProcessResponsible.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderSepulka(c, actor, code, http.StatusOK)
}

// UpdateProcessProperties handles PUT /api/v1/sepulkas/:code/process/conveyor.
func (s *Server) UpdateProcessProperties(c echo.Context) error {
	actor, err := authorize(c, policy.UpdateProcessProperties)
	if err != nil {
		return err
	}
	code, err := codeParam(c)
	if err != nil {
		return err
	}
	var req ConveyorRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProcessPropertiesCommand(actor, code, req.IsVaccinated, req.IsProcessed)
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateProcessProperties.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderSepulka(c, actor, code, http.StatusOK)
}

// UpdateDelivery handles PUT /api/v1/sepulkas/:code/delivery.
func (s *Server) UpdateDelivery(c echo.Context) error {
	actor, err := authorize(c, policy.UpdateDelivery)
	if err != nil {
		return err
	}
	code, err := codeParam(c)
	if err != nil {
		return err
	}
	var req DeliveryRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDeliveryCommand(actor, code, req.Responsible.Patch(), req.Method.Patch())
	if err != nil {
		return err
	}

	if err = s.handlers.UpdateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderSepulka(c, actor, code, http.StatusOK)
}

// CompleteDelivery handles POST /api/v1/sepulkas/:code/delivery/complete.
func (s *Server) CompleteDelivery(c echo.Context) error {
	actor, err := authorize(c, policy.CompleteDelivery)
	if err != nil {
		return err
	}
	code, err := codeParam(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteDeliveryCommand(actor, code)
	if err != nil {
		return err
	}

	if err = s.handlers.CompleteDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderSepulka(c, actor, code, http.StatusOK)
}

// ListFlow handles GET /api/v1/sepulkas/:code/flow - history, oldest first.
func (s *Server) ListFlow(c echo.Context) error {
	actor, err := authorize(c, policy.ListFlow)
	if err != nil {
		return err
	}
	code, err := codeParam(c)
	if err != nil {
		return err
	}
	page, err := pageParams(c, s.pageSize)
	if err != nil {
		return err
	}

	query, err := queries.NewListFlowQuery(actor, code, page)
	if err != nil {
		return err
	}

	result, err := s.handlers.ListFlow.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pageViewOf(result, flowViewOf))
}

// AppendFlow handles POST /api/v1/sepulkas/:code/flow.
func (s *Server) AppendFlow(c echo.Context) error {
	actor, err := authorize(c, policy.AppendFlow)
	if err != nil {
		return err
	}
	code, err := codeParam(c)
	if err != nil {
		return err
	}
	var req AppendFlowRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewAppendFlowCommand(actor, code, req.Message)
	if err != nil {
		return err
	}

	flow, err := s.handlers.AppendFlow.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, FlowView{
		ID:          flow.ID(),
		Message:     flow.Message(),
		DateCreated: flow.DateCreated(),
	})
}

// renderSepulka answers with the detail view of code as seen by actor.
func (s *Server) renderSepulka(c echo.Context, actor policy.Actor, code kernel.UUID, status int) error {
	query, err := queries.NewGetSepulkaQuery(actor, code)
	if err != nil {
		return err
	}

	details, err := s.handlers.GetSepulka.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(status, sepulkaDetailViewOf(details))
}
