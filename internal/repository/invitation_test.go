//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"taskboard-backend/internal/database/models"
	"taskboard-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// InvitationRepositoryTestSuite tests the InvitationRepository
type InvitationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *InvitationRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *InvitationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewInvitationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *InvitationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *InvitationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *InvitationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedInvitation creates an inviter, an organization, and a pending invitation
func (suite *InvitationRepositoryTestSuite) seedInvitation(email string) *models.Invitation {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	org := suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(org))

	inv := suite.factories.Invitation.Create(org.ID, user.ID, email, models.RoleViewer)
	suite.NoError(suite.repo.Create(inv))

	return inv
}

// TestGetByToken tests the token lookup
func (suite *InvitationRepositoryTestSuite) TestGetByToken() {
	inv := suite.seedInvitation("new.hire@test.com")

	found, err := suite.repo.GetByToken(inv.Token)

	suite.NoError(err)
	suite.Equal(inv.ID, found.ID)
	suite.Equal("new.hire@test.com", found.Email)
}

// TestGetByTokenUnknown tests the lookup for a token that was never minted
func (suite *InvitationRepositoryTestSuite) TestGetByTokenUnknown() {
	_, err := suite.repo.GetByToken("no-such-token")

	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestGetPendingByEmailAndOrganization tests the duplicate-invitation lookup
func (suite *InvitationRepositoryTestSuite) TestGetPendingByEmailAndOrganization() {
	inv := suite.seedInvitation("new.hire@test.com")

	found, err := suite.repo.GetPendingByEmailAndOrganization("new.hire@test.com", inv.OrganizationID)

	suite.NoError(err)
	suite.Equal(inv.ID, found.ID)
}

// TestGetPendingIgnoresSettledInvitations tests that revoked invitations do
// not block a fresh invitation for the same email
func (suite *InvitationRepositoryTestSuite) TestGetPendingIgnoresSettledInvitations() {
	inv := suite.seedInvitation("new.hire@test.com")

	inv.Status = models.InvitationStatusRevoked
	suite.NoError(suite.repo.Update(inv))

	_, err := suite.repo.GetPendingByEmailAndOrganization("new.hire@test.com", inv.OrganizationID)

	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestGetByOrganizationID tests listing invitations with pagination
func (suite *InvitationRepositoryTestSuite) TestGetByOrganizationID() {
	inv := suite.seedInvitation("first@test.com")

	second := suite.factories.Invitation.Create(inv.OrganizationID, inv.InvitedByID, "second@test.com", models.RoleAdmin)
	suite.NoError(suite.repo.Create(second))

	invitations, total, err := suite.repo.GetByOrganizationID(inv.OrganizationID, 1, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(invitations, 1)
}

// TestInvitationRepositoryTestSuite runs the test suite
func TestInvitationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationRepositoryTestSuite))
}
