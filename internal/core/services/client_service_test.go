package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/core/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	MockClientReaderRepository
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
	fixedNow time.Time
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.fixedNow = time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewClientService(
		suite.mockRepo,
		services.WithClientIDGenerator(fixedIDGenerator{id: "client-1"}),
		services.WithClientClock(func() time.Time { return suite.fixedNow }),
	)
}

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	req := dto.CreateClientRequest{Name: "  Acme Haulage  ", Phone: " 555-0101 "}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.ClientID == "client-1" && c.Name == "Acme Haulage" && c.Phone == "555-0101" && c.CreatedAt.Equal(suite.fixedNow)
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Acme Haulage", client.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_BlankName() {
	client, err := suite.service.CreateClient(context.Background(), dto.CreateClientRequest{Name: "   "})

	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(expectedErr).Once()

	client, err := suite.service.CreateClient(ctx, dto.CreateClientRequest{Name: "Acme"})

	suite.Nil(client)
	suite.ErrorIs(err, expectedErr)
}

func (suite *ClientServiceTestSuite) TestGetClient_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindClientByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClient(ctx, "missing")

	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_Success() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteClient", ctx, "client-1").Return(nil).Once()

	suite.NoError(suite.service.DeleteClient(ctx, "client-1"))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDeleteClient_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteClient", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	suite.ErrorIs(suite.service.DeleteClient(ctx, "missing"), apperrors.ErrNotFound)
}

// --- Run Suite ---
func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
