package commands_test

import (
	"testing"

	"sepulka/internal/core/application/usecases/commands"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T {
	return &v
}

func TestAssignProcessResponsibleCommandHandler_Handle_MovesToInProcess(t *testing.T) {
	ctx := t.Context()
	order := newOrderIn(t, sepulka.Created)
	bob := newTestUser(t, "bob", user.Grymzik)

	cmd, err := commands.NewAssignProcessResponsibleCommand(actorFor(t, "alice", user.Shmurdik), order.Code(), ptr("bob"))
	require.NoError(t, err)

	h := newSepulkaHarness()
	mock.InOrder(
		h.factory.On("Create").Return(h.uow).Once(),
		h.uow.On("Begin", ctx).Return(nil).Once(),
		h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
		h.users.On("GetByUsername", ctx, "bob").Return(bob, nil).Once(),
		h.sepulkas.On("UpdateProcessResponsible", ctx, order).Return(nil).Once(),
		h.sepulkas.On("UpdateState", ctx, order).Return(true, nil).Once(),
		h.flows.On("Add", ctx, flowWithMessage("state changed from created to in_process")).
			Return(savedFlow(t, order.Code(), "state changed from created to in_process"), nil).Once(),
		h.uow.On("Commit", ctx).Return(nil).Once(),
		h.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignProcessResponsibleCommandHandler(h.factory, zap.NewNop())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, sepulka.InProcess, order.State())
	require.NotNil(t, order.Process().Responsible())
	assert.True(t, bob.ID().IsEqual(*order.Process().Responsible()))
	h.assertExpectations(t)
}

func TestAssignProcessResponsibleCommandHandler_Handle_ReassignKeepsState(t *testing.T) {
	ctx := t.Context()
	order := newOrderIn(t, sepulka.InProcess)
	dave := newTestUser(t, "dave", user.Grymzik)

	cmd, err := commands.NewAssignProcessResponsibleCommand(actorFor(t, "alice", user.Shmurdik), order.Code(), ptr("dave"))
	require.NoError(t, err)

	h := newSepulkaHarness()
	mock.InOrder(
		h.factory.On("Create").Return(h.uow).Once(),
		h.uow.On("Begin", ctx).Return(nil).Once(),
		h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
		h.users.On("GetByUsername", ctx, "dave").Return(dave, nil).Once(),
		h.sepulkas.On("UpdateProcessResponsible", ctx, order).Return(nil).Once(),
		h.uow.On("Commit", ctx).Return(nil).Once(),
		h.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignProcessResponsibleCommandHandler(h.factory, zap.NewNop())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, sepulka.InProcess, order.State())
	h.sepulkas.AssertNotCalled(t, "UpdateState", ctx, order)
	h.assertExpectations(t)
}

func TestAssignProcessResponsibleCommandHandler_Handle_StaleTransitionWritesNoFlow(t *testing.T) {
	ctx := t.Context()
	order := newOrderIn(t, sepulka.Created)
	bob := newTestUser(t, "bob", user.Grymzik)

	cmd, err := commands.NewAssignProcessResponsibleCommand(actorFor(t, "alice", user.Shmurdik), order.Code(), ptr("bob"))
	require.NoError(t, err)

	h := newSepulkaHarness()
	mock.InOrder(
		h.factory.On("Create").Return(h.uow).Once(),
		h.uow.On("Begin", ctx).Return(nil).Once(),
		h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
		h.users.On("GetByUsername", ctx, "bob").Return(bob, nil).Once(),
		h.sepulkas.On("UpdateProcessResponsible", ctx, order).Return(nil).Once(),
		h.sepulkas.On("UpdateState", ctx, order).Return(false, nil).Once(),
		h.uow.On("Commit", ctx).Return(nil).Once(),
		h.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAssignProcessResponsibleCommandHandler(h.factory, zap.NewNop())
	require.NoError(t, handler.Handle(ctx, cmd))

	h.flows.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	h.assertExpectations(t)
}

func TestAssignProcessResponsibleCommandHandler_Handle_InvalidResponsible(t *testing.T) {
	tests := []struct {
		name     string
		username string
		found    *user.User
		lookup   error
	}{
		{"unknown user", "nobody", nil, errs.NewObjectNotFoundError("user", "nobody")},
		{"wrong role", "carol", newTestUser(t, "carol", user.Fufelnitsa), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			order := newOrderIn(t, sepulka.Created)
			cmd, err := commands.NewAssignProcessResponsibleCommand(
				actorFor(t, "alice", user.Shmurdik), order.Code(), ptr(tt.username),
			)
			require.NoError(t, err)

			h := newSepulkaHarness()
			mock.InOrder(
				h.factory.On("Create").Return(h.uow).Once(),
				h.uow.On("Begin", ctx).Return(nil).Once(),
				h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
				h.users.On("GetByUsername", ctx, tt.username).Return(tt.found, tt.lookup).Once(),
				h.uow.On("Rollback", ctx).Return(nil).Once(),
			)

			handler := commands.NewAssignProcessResponsibleCommandHandler(h.factory, zap.NewNop())
			err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, sepulka.Created, order.State())
			h.assertExpectations(t)
		})
	}
}

func TestAssignProcessResponsibleCommandHandler_Handle_GrymzikIsDenied(t *testing.T) {
	order := newOrderIn(t, sepulka.Created)
	cmd, err := commands.NewAssignProcessResponsibleCommand(actorFor(t, "bob", user.Grymzik), order.Code(), ptr("bob"))
	require.NoError(t, err)

	h := newSepulkaHarness()
	handler := commands.NewAssignProcessResponsibleCommandHandler(h.factory, zap.NewNop())

	require.ErrorIs(t, handler.Handle(t.Context(), cmd), errs.ErrPermissionDenied)
	h.factory.AssertNotCalled(t, "Create")
}

func TestUpdateProcessPropertiesCommandHandler_Handle_MovesToProcessed(t *testing.T) {
	ctx := t.Context()
	order := newOrderIn(t, sepulka.InProcess)
	cmd, err := commands.NewUpdateProcessPropertiesCommand(
		actorFor(t, "bob", user.Grymzik), order.Code(), ptr(true), ptr(true),
	)
	require.NoError(t, err)

	h := newSepulkaHarness()
	mock.InOrder(
		h.factory.On("Create").Return(h.uow).Once(),
		h.uow.On("Begin", ctx).Return(nil).Once(),
		h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
		h.sepulkas.On("UpdateProcessProperties", ctx, order).Return(nil).Once(),
		h.sepulkas.On("UpdateState", ctx, order).Return(true, nil).Once(),
		h.flows.On("Add", ctx, flowWithMessage("state changed from in_process to processed")).
			Return(savedFlow(t, order.Code(), "state changed from in_process to processed"), nil).Once(),
		h.uow.On("Commit", ctx).Return(nil).Once(),
		h.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateProcessPropertiesCommandHandler(h.factory, zap.NewNop())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, sepulka.Processed, order.State())
	assert.True(t, order.Process().IsVaccinated())
	assert.True(t, order.Process().IsProcessed())
	h.assertExpectations(t)
}

func TestUpdateProcessPropertiesCommandHandler_Handle_NilFlagsKeepStoredValues(t *testing.T) {
	ctx := t.Context()
	order := newOrderIn(t, sepulka.Processed)
	cmd, err := commands.NewUpdateProcessPropertiesCommand(
		actorFor(t, "bob", user.Grymzik), order.Code(), ptr(true), nil,
	)
	require.NoError(t, err)

	h := newSepulkaHarness()
	mock.InOrder(
		h.factory.On("Create").Return(h.uow).Once(),
		h.uow.On("Begin", ctx).Return(nil).Once(),
		h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
		h.sepulkas.On("UpdateProcessProperties", ctx, order).Return(nil).Once(),
		h.uow.On("Commit", ctx).Return(nil).Once(),
		h.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateProcessPropertiesCommandHandler(h.factory, zap.NewNop())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, order.Process().IsProcessed())
	assert.Equal(t, sepulka.Processed, order.State())
	h.assertExpectations(t)
}

func TestUpdateDeliveryCommandHandler_Handle_MovesToInDelivery(t *testing.T) {
	ctx := t.Context()
	order := newOrderIn(t, sepulka.Processed)
	carol := newTestUser(t, "carol", user.Fufelnitsa)

	cmd, err := commands.NewUpdateDeliveryCommand(
		actorFor(t, "carol", user.Fufelnitsa), order.Code(), commands.Set("carol"), commands.Set("airb"),
	)
	require.NoError(t, err)

	h := newSepulkaHarness()
	mock.InOrder(
		h.factory.On("Create").Return(h.uow).Once(),
		h.uow.On("Begin", ctx).Return(nil).Once(),
		h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
		h.users.On("GetByUsername", ctx, "carol").Return(carol, nil).Once(),
		h.sepulkas.On("UpdateDeliveryResponsible", ctx, order).Return(nil).Once(),
		h.sepulkas.On("UpdateDeliveryMethod", ctx, order).Return(nil).Once(),
		h.sepulkas.On("UpdateState", ctx, order).Return(true, nil).Once(),
		h.flows.On("Add", ctx, flowWithMessage("state changed from processed to in_delivery")).
			Return(savedFlow(t, order.Code(), "state changed from processed to in_delivery"), nil).Once(),
		h.uow.On("Commit", ctx).Return(nil).Once(),
		h.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateDeliveryCommandHandler(h.factory, zap.NewNop())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, sepulka.InDelivery, order.State())
	require.NotNil(t, order.Delivery().Method())
	assert.Equal(t, sepulka.AirBalloon, *order.Delivery().Method())
	h.assertExpectations(t)
}

func TestUpdateDeliveryCommandHandler_Handle_ClearMethodOnly(t *testing.T) {
	ctx := t.Context()
	order := newOrderIn(t, sepulka.Processed)
	cmd, err := commands.NewUpdateDeliveryCommand(
		actorFor(t, "carol", user.Fufelnitsa), order.Code(), commands.Keep[string](), commands.Clear[string](),
	)
	require.NoError(t, err)

	h := newSepulkaHarness()
	mock.InOrder(
		h.factory.On("Create").Return(h.uow).Once(),
		h.uow.On("Begin", ctx).Return(nil).Once(),
		h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
		h.sepulkas.On("UpdateDeliveryMethod", ctx, order).Return(nil).Once(),
		h.uow.On("Commit", ctx).Return(nil).Once(),
		h.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateDeliveryCommandHandler(h.factory, zap.NewNop())
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Nil(t, order.Delivery().Method())
	h.users.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	h.assertExpectations(t)
}

func TestNewUpdateDeliveryCommand_InvalidMethod(t *testing.T) {
	order := newOrderIn(t, sepulka.Processed)

	_, err := commands.NewUpdateDeliveryCommand(
		actorFor(t, "carol", user.Fufelnitsa), order.Code(), commands.Keep[string](), commands.Set("teleport"),
	)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCompleteDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("in delivery becomes completed", func(t *testing.T) {
		ctx := t.Context()
		order := newOrderIn(t, sepulka.InDelivery)
		cmd, err := commands.NewCompleteDeliveryCommand(actorFor(t, "carol", user.Fufelnitsa), order.Code())
		require.NoError(t, err)

		h := newSepulkaHarness()
		mock.InOrder(
			h.factory.On("Create").Return(h.uow).Once(),
			h.uow.On("Begin", ctx).Return(nil).Once(),
			h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
			h.sepulkas.On("UpdateState", ctx, order).Return(true, nil).Once(),
			h.flows.On("Add", ctx, flowWithMessage("state changed from in_delivery to completed")).
				Return(savedFlow(t, order.Code(), "state changed from in_delivery to completed"), nil).Once(),
			h.uow.On("Commit", ctx).Return(nil).Once(),
			h.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCompleteDeliveryCommandHandler(h.factory, zap.NewNop())
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, sepulka.Completed, order.State())
		h.assertExpectations(t)
	})

	t.Run("created cannot be completed", func(t *testing.T) {
		ctx := t.Context()
		order := newOrderIn(t, sepulka.Created)
		cmd, err := commands.NewCompleteDeliveryCommand(actorFor(t, "carol", user.Fufelnitsa), order.Code())
		require.NoError(t, err)

		h := newSepulkaHarness()
		mock.InOrder(
			h.factory.On("Create").Return(h.uow).Once(),
			h.uow.On("Begin", ctx).Return(nil).Once(),
			h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
			h.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewCompleteDeliveryCommandHandler(h.factory, zap.NewNop())
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, sepulka.Created, order.State())
		h.assertExpectations(t)
	})
}

func TestDeleteSepulkaCommandHandler_Handle(t *testing.T) {
	t.Run("soft deletes and records the transition", func(t *testing.T) {
		ctx := t.Context()
		order := newOrderIn(t, sepulka.InProcess)
		cmd, err := commands.NewDeleteSepulkaCommand(staffActor(t), order.Code())
		require.NoError(t, err)

		h := newSepulkaHarness()
		mock.InOrder(
			h.factory.On("Create").Return(h.uow).Once(),
			h.uow.On("Begin", ctx).Return(nil).Once(),
			h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
			h.sepulkas.On("UpdateState", ctx, order).Return(true, nil).Once(),
			h.flows.On("Add", ctx, flowWithMessage("state changed from in_process to deleted")).
				Return(savedFlow(t, order.Code(), "state changed from in_process to deleted"), nil).Once(),
			h.uow.On("Commit", ctx).Return(nil).Once(),
			h.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewDeleteSepulkaCommandHandler(h.factory, zap.NewNop())
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.True(t, order.IsDeleted())
		h.assertExpectations(t)
	})

	t.Run("deleting twice writes nothing", func(t *testing.T) {
		ctx := t.Context()
		order := newOrderIn(t, sepulka.Deleted)
		cmd, err := commands.NewDeleteSepulkaCommand(actorFor(t, "alice", user.Shmurdik), order.Code())
		require.NoError(t, err)

		h := newSepulkaHarness()
		mock.InOrder(
			h.factory.On("Create").Return(h.uow).Once(),
			h.uow.On("Begin", ctx).Return(nil).Once(),
			h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
			h.uow.On("Commit", ctx).Return(nil).Once(),
			h.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewDeleteSepulkaCommandHandler(h.factory, zap.NewNop())
		require.NoError(t, handler.Handle(ctx, cmd))
		h.assertExpectations(t)
	})

	t.Run("missing order is not found", func(t *testing.T) {
		ctx := t.Context()
		order := newOrderIn(t, sepulka.Created)
		cmd, err := commands.NewDeleteSepulkaCommand(staffActor(t), order.Code())
		require.NoError(t, err)

		h := newSepulkaHarness()
		mock.InOrder(
			h.factory.On("Create").Return(h.uow).Once(),
			h.uow.On("Begin", ctx).Return(nil).Once(),
			h.sepulkas.On("Get", ctx, order.Code()).
				Return(nil, errs.NewObjectNotFoundError("sepulka", order.Code().String())).Once(),
			h.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewDeleteSepulkaCommandHandler(h.factory, zap.NewNop())
		require.ErrorIs(t, handler.Handle(ctx, cmd), errs.ErrObjectNotFound)
		h.assertExpectations(t)
	})
}

func TestAppendFlowCommandHandler_Handle(t *testing.T) {
	t.Run("returns the stored message", func(t *testing.T) {
		ctx := t.Context()
		order := newOrderIn(t, sepulka.InProcess)
		cmd, err := commands.NewAppendFlowCommand(actorFor(t, "bob", user.Grymzik), order.Code(), "vaccine is late")
		require.NoError(t, err)

		stored := savedFlow(t, order.Code(), "vaccine is late")
		h := newSepulkaHarness()
		mock.InOrder(
			h.factory.On("Create").Return(h.uow).Once(),
			h.uow.On("Begin", ctx).Return(nil).Once(),
			h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
			h.flows.On("Add", ctx, flowWithMessage("vaccine is late")).Return(stored, nil).Once(),
			h.uow.On("Commit", ctx).Return(nil).Once(),
			h.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewAppendFlowCommandHandler(h.factory, zap.NewNop())
		flow, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, int64(1), flow.ID())
		h.assertExpectations(t)
	})

	t.Run("deleted order is not found", func(t *testing.T) {
		ctx := t.Context()
		order := newOrderIn(t, sepulka.Deleted)
		cmd, err := commands.NewAppendFlowCommand(actorFor(t, "bob", user.Grymzik), order.Code(), "hello")
		require.NoError(t, err)

		h := newSepulkaHarness()
		mock.InOrder(
			h.factory.On("Create").Return(h.uow).Once(),
			h.uow.On("Begin", ctx).Return(nil).Once(),
			h.sepulkas.On("Get", ctx, order.Code()).Return(order, nil).Once(),
			h.uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewAppendFlowCommandHandler(h.factory, zap.NewNop())
		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		h.assertExpectations(t)
	})

	t.Run("anonymous is unauthenticated", func(t *testing.T) {
		order := newOrderIn(t, sepulka.Created)
		h := newSepulkaHarness()
		cmd, err := commands.NewAppendFlowCommand(anonymous(), order.Code(), "hello")
		require.NoError(t, err)

		handler := commands.NewAppendFlowCommandHandler(h.factory, zap.NewNop())
		_, err = handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAuthenticationRequired)
		h.factory.AssertNotCalled(t, "Create")
	})
}
