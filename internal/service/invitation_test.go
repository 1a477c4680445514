package service_test

import (
	"testing"
	"time"

	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/mocks"
	"taskboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// InvitationServiceTestSuite defines the test suite for InvitationService
type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockInvitationRepo *mocks.MockInvitationRepositoryInterface
	mockMembershipRepo *mocks.MockMembershipRepositoryInterface
	mockUserRepo       *mocks.MockUserRepositoryInterface
	mockAudit          *mocks.MockAuditServiceInterface
	invitationService  *service.InvitationService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockInvitationRepo = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.mockMembershipRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditServiceInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.invitationService = service.NewInvitationService(
		suite.mockInvitationRepo,
		suite.mockMembershipRepo,
		suite.mockUserRepo,
		suite.mockAudit,
		72*time.Hour,
		suite.validator,
	)
}

// TearDownTest cleans up after each test
func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateInvitation tests minting an invitation for a new user
func (suite *InvitationServiceTestSuite) TestCreateInvitation() {
	inviterID := uuid.New()
	req := &service.CreateInvitationRequest{
		OrganizationID: uuid.New(),
		Email:          "New.Hire@Test.com",
		Role:           models.RoleViewer,
	}

	// The invitee has no account yet.
	suite.mockUserRepo.EXPECT().
		GetByEmail("new.hire@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockInvitationRepo.EXPECT().
		GetPendingByEmailAndOrganization("new.hire@test.com", req.OrganizationID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockInvitationRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(suite.T(), "new.hire@test.com", inv.Email)
			assert.Equal(suite.T(), models.InvitationStatusPending, inv.Status)
			assert.Len(suite.T(), inv.Token, 64)
			return nil
		}).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(gomock.Any()).
		Times(1)

	response, err := suite.invitationService.Create(req, inviterID, models.RoleAdmin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new.hire@test.com", response.Email)
	assert.NotEmpty(suite.T(), response.Token)
}

// TestCreateInvitationAdminCannotGrantOwner tests the inviter role ceiling
func (suite *InvitationServiceTestSuite) TestCreateInvitationAdminCannotGrantOwner() {
	req := &service.CreateInvitationRequest{
		OrganizationID: uuid.New(),
		Email:          "new.hire@test.com",
		Role:           models.RoleOwner,
	}

	response, err := suite.invitationService.Create(req, uuid.New(), models.RoleAdmin)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrCannotGrantRole)
}

// TestCreateInvitationOwnerGrantsOwner tests that owners may grant any role
func (suite *InvitationServiceTestSuite) TestCreateInvitationOwnerGrantsOwner() {
	req := &service.CreateInvitationRequest{
		OrganizationID: uuid.New(),
		Email:          "new.hire@test.com",
		Role:           models.RoleOwner,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("new.hire@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockInvitationRepo.EXPECT().
		GetPendingByEmailAndOrganization("new.hire@test.com", req.OrganizationID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockInvitationRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(gomock.Any()).
		Times(1)

	response, err := suite.invitationService.Create(req, uuid.New(), models.RoleOwner)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleOwner, response.Role)
}

// TestCreateInvitationAlreadyMember tests inviting an existing member
func (suite *InvitationServiceTestSuite) TestCreateInvitationAlreadyMember() {
	orgID := uuid.New()
	userID := uuid.New()
	req := &service.CreateInvitationRequest{
		OrganizationID: orgID,
		Email:          "member@test.com",
		Role:           models.RoleViewer,
	}

	user := &models.User{Email: "member@test.com"}
	user.ID = userID

	suite.mockUserRepo.EXPECT().
		GetByEmail("member@test.com").
		Return(user, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		FindRole(userID, orgID).
		Return(models.RoleViewer, nil).
		Times(1)

	response, err := suite.invitationService.Create(req, uuid.New(), models.RoleOwner)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyMember)
}

// TestCreateInvitationDuplicatePending tests the one-pending-per-email rule
func (suite *InvitationServiceTestSuite) TestCreateInvitationDuplicatePending() {
	orgID := uuid.New()
	req := &service.CreateInvitationRequest{
		OrganizationID: orgID,
		Email:          "new.hire@test.com",
		Role:           models.RoleViewer,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("new.hire@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockInvitationRepo.EXPECT().
		GetPendingByEmailAndOrganization("new.hire@test.com", orgID).
		Return(&models.Invitation{Email: "new.hire@test.com"}, nil).
		Times(1)

	response, err := suite.invitationService.Create(req, uuid.New(), models.RoleOwner)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExists)
}

// TestAcceptInvitation tests redeeming a token
func (suite *InvitationServiceTestSuite) TestAcceptInvitation() {
	orgID := uuid.New()
	userID := uuid.New()

	invitation := &models.Invitation{
		OrganizationID: orgID,
		Email:          "new.hire@test.com",
		Role:           models.RoleAdmin,
		Status:         models.InvitationStatusPending,
		Token:          "sometoken",
		ExpiresAt:      time.Now().Add(time.Hour),
	}
	invitation.ID = uuid.New()

	suite.mockInvitationRepo.EXPECT().
		GetByToken("sometoken").
		Return(invitation, nil).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		FindRole(userID, orgID).
		Return(models.OrgRole(""), gorm.ErrRecordNotFound).
		Times(1)

	suite.mockMembershipRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Membership) error {
			assert.Equal(suite.T(), models.RoleAdmin, m.Role)
			assert.Equal(suite.T(), orgID, m.OrganizationID)
			return nil
		}).
		Times(1)

	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(suite.T(), models.InvitationStatusAccepted, inv.Status)
			return nil
		}).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(gomock.Any()).
		Times(1)

	req := &service.AcceptInvitationRequest{Token: "sometoken"}
	response, err := suite.invitationService.Accept(req, userID, "New.Hire@test.com")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleAdmin, response.Role)
	assert.Equal(suite.T(), userID, response.UserID)
}

// TestAcceptInvitationEmailMismatch tests that someone else's token reads as missing
func (suite *InvitationServiceTestSuite) TestAcceptInvitationEmailMismatch() {
	invitation := &models.Invitation{
		OrganizationID: uuid.New(),
		Email:          "intended@test.com",
		Status:         models.InvitationStatusPending,
		Token:          "sometoken",
		ExpiresAt:      time.Now().Add(time.Hour),
	}

	suite.mockInvitationRepo.EXPECT().
		GetByToken("sometoken").
		Return(invitation, nil).
		Times(1)

	req := &service.AcceptInvitationRequest{Token: "sometoken"}
	response, err := suite.invitationService.Accept(req, uuid.New(), "someone.else@test.com")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotFound)
}

// TestAcceptInvitationExpired tests redeeming an expired token
func (suite *InvitationServiceTestSuite) TestAcceptInvitationExpired() {
	invitation := &models.Invitation{
		OrganizationID: uuid.New(),
		Email:          "new.hire@test.com",
		Status:         models.InvitationStatusPending,
		Token:          "sometoken",
		ExpiresAt:      time.Now().Add(-time.Hour),
	}

	suite.mockInvitationRepo.EXPECT().
		GetByToken("sometoken").
		Return(invitation, nil).
		Times(1)

	req := &service.AcceptInvitationRequest{Token: "sometoken"}
	response, err := suite.invitationService.Accept(req, uuid.New(), "new.hire@test.com")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationExpired)
}

// TestAcceptInvitationNotPending tests redeeming a revoked token
func (suite *InvitationServiceTestSuite) TestAcceptInvitationNotPending() {
	invitation := &models.Invitation{
		OrganizationID: uuid.New(),
		Email:          "new.hire@test.com",
		Status:         models.InvitationStatusRevoked,
		Token:          "sometoken",
		ExpiresAt:      time.Now().Add(time.Hour),
	}

	suite.mockInvitationRepo.EXPECT().
		GetByToken("sometoken").
		Return(invitation, nil).
		Times(1)

	req := &service.AcceptInvitationRequest{Token: "sometoken"}
	response, err := suite.invitationService.Accept(req, uuid.New(), "new.hire@test.com")

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotPending)
}

// TestRevokeInvitation tests cancelling a pending invitation
func (suite *InvitationServiceTestSuite) TestRevokeInvitation() {
	invitationID := uuid.New()

	invitation := &models.Invitation{
		OrganizationID: uuid.New(),
		Email:          "new.hire@test.com",
		Status:         models.InvitationStatusPending,
	}
	invitation.ID = invitationID

	suite.mockInvitationRepo.EXPECT().
		GetByID(invitationID).
		Return(invitation, nil).
		Times(1)

	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.Equal(suite.T(), models.InvitationStatusRevoked, inv.Status)
			return nil
		}).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(gomock.Any()).
		Times(1)

	err := suite.invitationService.Revoke(invitationID, uuid.New())

	assert.NoError(suite.T(), err)
}

// TestRevokeAcceptedInvitation tests that only pending invitations can be revoked
func (suite *InvitationServiceTestSuite) TestRevokeAcceptedInvitation() {
	invitationID := uuid.New()

	invitation := &models.Invitation{
		OrganizationID: uuid.New(),
		Status:         models.InvitationStatusAccepted,
	}
	invitation.ID = invitationID

	suite.mockInvitationRepo.EXPECT().
		GetByID(invitationID).
		Return(invitation, nil).
		Times(1)

	err := suite.invitationService.Revoke(invitationID, uuid.New())

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvitationNotPending)
}

// TestResendInvitation tests that resend rotates the token and extends expiry
func (suite *InvitationServiceTestSuite) TestResendInvitation() {
	invitationID := uuid.New()
	oldExpiry := time.Now().Add(time.Hour)

	invitation := &models.Invitation{
		OrganizationID: uuid.New(),
		Email:          "new.hire@test.com",
		Status:         models.InvitationStatusPending,
		Token:          "oldtoken",
		ExpiresAt:      oldExpiry,
	}
	invitation.ID = invitationID

	suite.mockInvitationRepo.EXPECT().
		GetByID(invitationID).
		Return(invitation, nil).
		Times(1)

	suite.mockInvitationRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(inv *models.Invitation) error {
			assert.NotEqual(suite.T(), "oldtoken", inv.Token)
			assert.True(suite.T(), inv.ExpiresAt.After(oldExpiry))
			return nil
		}).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(gomock.Any()).
		Times(1)

	response, err := suite.invitationService.Resend(invitationID, uuid.New())

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response.Token)
	assert.NotEqual(suite.T(), "oldtoken", response.Token)
}

// TestInvitationServiceTestSuite runs the test suite
func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
