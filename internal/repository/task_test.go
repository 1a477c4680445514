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

// TaskRepositoryTestSuite tests the TaskRepository
type TaskRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TaskRepository
	userRepo      *UserRepository
	orgRepo       *OrganizationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TaskRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTaskRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.orgRepo = NewOrganizationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TaskRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TaskRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TaskRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedTask creates a user, an organization, and a task in it
func (suite *TaskRepositoryTestSuite) seedTask() *models.Task {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))

	org := suite.factories.Organization.Create()
	suite.NoError(suite.orgRepo.Create(org))

	task := suite.factories.Task.Create(org.ID, user.ID)
	suite.NoError(suite.repo.Create(task))

	return task
}

// TestGetByID tests retrieving a task
func (suite *TaskRepositoryTestSuite) TestGetByID() {
	task := suite.seedTask()

	found, err := suite.repo.GetByID(task.ID)

	suite.NoError(err)
	suite.Equal(task.Title, found.Title)
	suite.Equal(task.OrganizationID, found.OrganizationID)
}

// TestGetByIDExcludesDeleted tests that the default lookup hides soft-deleted rows
func (suite *TaskRepositoryTestSuite) TestGetByIDExcludesDeleted() {
	task := suite.seedTask()
	suite.NoError(suite.repo.Delete(task.ID))

	_, err := suite.repo.GetByID(task.ID)

	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestGetByIDIncludingDeleted tests the unscoped lookup restore depends on
func (suite *TaskRepositoryTestSuite) TestGetByIDIncludingDeleted() {
	task := suite.seedTask()
	suite.NoError(suite.repo.Delete(task.ID))

	found, err := suite.repo.GetByIDIncludingDeleted(task.ID)

	suite.NoError(err)
	suite.True(found.DeletedAt.Valid)
	suite.Equal(task.OrganizationID, found.OrganizationID)
}

// TestRestore tests clearing the soft-delete marker
func (suite *TaskRepositoryTestSuite) TestRestore() {
	task := suite.seedTask()
	suite.NoError(suite.repo.Delete(task.ID))

	suite.NoError(suite.repo.Restore(task.ID))

	found, err := suite.repo.GetByID(task.ID)
	suite.NoError(err)
	suite.False(found.DeletedAt.Valid)
}

// TestGetByOrganizationIDStatusFilter tests the optional status filter
func (suite *TaskRepositoryTestSuite) TestGetByOrganizationIDStatusFilter() {
	task := suite.seedTask()

	done := suite.factories.Task.WithStatus(task.OrganizationID, task.CreatedByID, models.TaskStatusDone)
	suite.NoError(suite.repo.Create(done))

	status := models.TaskStatusDone
	tasks, total, err := suite.repo.GetByOrganizationID(task.OrganizationID, &status, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(tasks, 1)
	suite.Equal(models.TaskStatusDone, tasks[0].Status)
}

// TestGetByOrganizationIDExcludesOtherOrganizations tests tenant scoping
func (suite *TaskRepositoryTestSuite) TestGetByOrganizationIDExcludesOtherOrganizations() {
	task := suite.seedTask()
	other := suite.seedTask()

	tasks, total, err := suite.repo.GetByOrganizationID(task.OrganizationID, nil, 20, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(tasks, 1)
	suite.NotEqual(other.ID, tasks[0].ID)
}

// TestTaskRepositoryTestSuite runs the test suite
func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
