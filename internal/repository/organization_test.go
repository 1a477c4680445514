//go:build integration
// +build integration

package repository

import (
	"testing"

	"taskboard-backend/internal/database/models"
	"taskboard-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite  *testutils.BaseTestSuite
	repo           *OrganizationRepository
	userRepo       *UserRepository
	membershipRepo *MembershipRepository
	factories      *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.membershipRepo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithOwner tests that the organization and the owner membership
// are written together
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwner() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	org := suite.factories.Organization.Create()
	err := suite.repo.CreateWithOwner(org, user.ID)

	suite.NoError(err)

	role, err := suite.membershipRepo.FindRole(user.ID, org.ID)
	suite.NoError(err)
	suite.Equal(models.RoleOwner, role)
}

// TestCreateWithOwnerDuplicateName tests that a failed create leaves no
// membership behind
func (suite *OrganizationRepositoryTestSuite) TestCreateWithOwnerDuplicateName() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	first := suite.factories.Organization.WithName("acme")
	suite.NoError(suite.repo.CreateWithOwner(first, user.ID))

	second := suite.factories.Organization.WithName("acme")
	err := suite.repo.CreateWithOwner(second, user.ID)

	suite.Error(err)

	// Only the first organization's membership exists.
	memberships, total, err := suite.membershipRepo.GetByOrganizationID(first.ID, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(memberships, 1)
}

// TestGetByUserID tests listing the organizations a user belongs to
func (suite *OrganizationRepositoryTestSuite) TestGetByUserID() {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	mine := suite.factories.Organization.Create()
	suite.NoError(suite.repo.CreateWithOwner(mine, user.ID))

	foreign := suite.factories.Organization.Create()
	suite.NoError(suite.repo.Create(foreign))

	orgs, err := suite.repo.GetByUserID(user.ID)

	suite.NoError(err)
	suite.Len(orgs, 1)
	suite.Equal(mine.ID, orgs[0].ID)
}

// TestGetByName tests the name lookup used for uniqueness checks
func (suite *OrganizationRepositoryTestSuite) TestGetByName() {
	org := suite.factories.Organization.WithName("globex")
	suite.NoError(suite.repo.Create(org))

	found, err := suite.repo.GetByName("globex")

	suite.NoError(err)
	suite.Equal(org.ID, found.ID)
}

// TestOrganizationRepositoryTestSuite runs the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
