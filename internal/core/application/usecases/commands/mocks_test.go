package commands_test

import (
	"context"
	"testing"
	"time"

	"sepulka/internal/core/application/usecases/commands"
	"sepulka/internal/core/domain/model/kernel"
	"sepulka/internal/core/domain/model/sepulka"
	"sepulka/internal/core/domain/model/user"
	"sepulka/internal/core/domain/policy"
	"sepulka/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockSepulkaRepository struct{ mock.Mock }

func (m *MockSepulkaRepository) Add(ctx context.Context, s *sepulka.Sepulka) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSepulkaRepository) Get(ctx context.Context, code kernel.UUID) (*sepulka.Sepulka, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sepulka.Sepulka), args.Error(1)
}

func (m *MockSepulkaRepository) UpdateState(ctx context.Context, s *sepulka.Sepulka) (bool, error) {
	args := m.Called(ctx, s)
	return args.Bool(0), args.Error(1)
}

func (m *MockSepulkaRepository) UpdateProcessResponsible(ctx context.Context, s *sepulka.Sepulka) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSepulkaRepository) UpdateProcessProperties(ctx context.Context, s *sepulka.Sepulka) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSepulkaRepository) UpdateDeliveryResponsible(ctx context.Context, s *sepulka.Sepulka) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSepulkaRepository) UpdateDeliveryMethod(ctx context.Context, s *sepulka.Sepulka) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockFlowRepository struct{ mock.Mock }

func (m *MockFlowRepository) Add(ctx context.Context, f *sepulka.Flow) (*sepulka.Flow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sepulka.Flow), args.Error(1)
}

type MockSepulkaUoW struct{ mock.Mock }

func (m *MockSepulkaUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSepulkaUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSepulkaUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSepulkaUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockSepulkaUoW) SepulkaRepository() ports.SepulkaRepository {
	args := m.Called()
	return args.Get(0).(ports.SepulkaRepository)
}

func (m *MockSepulkaUoW) FlowRepository() ports.FlowRepository {
	args := m.Called()
	return args.Get(0).(ports.FlowRepository)
}

type MockSepulkaUoWFactory struct{ mock.Mock }

func (m *MockSepulkaUoWFactory) Create() commands.SepulkaUoW {
	args := m.Called()
	return args.Get(0).(commands.SepulkaUoW)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

type MockTokenIssuer struct{ mock.Mock }

func (m *MockTokenIssuer) Issue(u *user.User) (ports.Token, error) {
	args := m.Called(u)
	return args.Get(0).(ports.Token), args.Error(1)
}

func (m *MockTokenIssuer) Parse(raw string) (ports.TokenClaims, error) {
	args := m.Called(raw)
	return args.Get(0).(ports.TokenClaims), args.Error(1)
}

type MockRevocationStore struct{ mock.Mock }

func (m *MockRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// sepulkaHarness wires a mocked unit of work whose repository getters may
// be called any number of times.
type sepulkaHarness struct {
	sepulkas *MockSepulkaRepository
	users    *MockUserRepository
	flows    *MockFlowRepository
	uow      *MockSepulkaUoW
	factory  *MockSepulkaUoWFactory
}

func newSepulkaHarness() sepulkaHarness {
	h := sepulkaHarness{
		sepulkas: new(MockSepulkaRepository),
		users:    new(MockUserRepository),
		flows:    new(MockFlowRepository),
		uow:      new(MockSepulkaUoW),
		factory:  new(MockSepulkaUoWFactory),
	}
	h.uow.On("SepulkaRepository").Return(h.sepulkas).Maybe()
	h.uow.On("UserRepository").Return(h.users).Maybe()
	h.uow.On("FlowRepository").Return(h.flows).Maybe()
	return h
}

func (h sepulkaHarness) assertExpectations(t *testing.T) {
	t.Helper()
	h.sepulkas.AssertExpectations(t)
	h.users.AssertExpectations(t)
	h.flows.AssertExpectations(t)
	h.uow.AssertExpectations(t)
	h.factory.AssertExpectations(t)
}

type userHarness struct {
	users   *MockUserRepository
	uow     *MockUserUoW
	factory *MockUserUoWFactory
}

func newUserHarness() userHarness {
	h := userHarness{
		users:   new(MockUserRepository),
		uow:     new(MockUserUoW),
		factory: new(MockUserUoWFactory),
	}
	h.uow.On("UserRepository").Return(h.users).Maybe()
	return h
}

func (h userHarness) assertExpectations(t *testing.T) {
	t.Helper()
	h.users.AssertExpectations(t)
	h.uow.AssertExpectations(t)
	h.factory.AssertExpectations(t)
}

func newTestUser(t *testing.T, username string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(username, "", "hash:"+username, role)
	require.NoError(t, err)
	return u
}

func actorFor(t *testing.T, username string, role user.Role) policy.Actor {
	t.Helper()
	return policy.AuthenticatedAs(newTestUser(t, username, role))
}

func staffActor(t *testing.T) policy.Actor {
	t.Helper()
	u := newTestUser(t, "root", user.Fufelnitsa)
	u.GrantStaff()
	return policy.AuthenticatedAs(u)
}

// newOrderIn builds a persisted order whose sub-records are consistent with state.
func newOrderIn(t *testing.T, state sepulka.State) *sepulka.Sepulka {
	t.Helper()
	now := time.Now().UTC()

	var processResponsible, deliveryResponsible *kernel.UUID
	var method *sepulka.Method
	processed := false

	if state >= sepulka.InProcess || state == sepulka.Deleted {
		id := kernel.NewUUID()
		processResponsible = &id
	}
	if state >= sepulka.Processed {
		processed = true
	}
	if state >= sepulka.InDelivery {
		id := kernel.NewUUID()
		deliveryResponsible = &id
		m := sepulka.AirBalloon
		method = &m
	}

	process, err := sepulka.RestoreProcess(processResponsible, false, processed, now)
	require.NoError(t, err)
	delivery, err := sepulka.RestoreDelivery(deliveryResponsible, method, now)
	require.NoError(t, err)

	s, err := sepulka.RestoreSepulka(
		kernel.NewUUID(),
		sepulka.Attributes{Name: "s-1", IsWarm: true, Size: sepulka.DefaultSize},
		state,
		kernel.NewUUID(),
		process,
		delivery,
		now,
		now,
	)
	require.NoError(t, err)
	return s
}

func flowWithMessage(message string) any {
	return mock.MatchedBy(func(f *sepulka.Flow) bool {
		return f.Message() == message
	})
}

func savedFlow(t *testing.T, code kernel.UUID, message string) *sepulka.Flow {
	t.Helper()
	f, err := sepulka.RestoreFlow(1, code, message, time.Now().UTC())
	require.NoError(t, err)
	return f
}

func anonymous() policy.Actor {
	return policy.Anonymous()
}
