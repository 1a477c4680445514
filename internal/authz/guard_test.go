package authz_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard-backend/internal/authz"
	"taskboard-backend/internal/database/models"
	"taskboard-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GuardTestSuite defines the test suite for the authorization guard
type GuardTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMemberships *mocks.MockMembershipResolver
	mockTasks       *mocks.MockTaskLookup
	mockInvitations *mocks.MockInvitationLookup
	guard           *authz.Guard

	userID uuid.UUID
	orgID  uuid.UUID
}

// SetupTest sets up the test suite
func (suite *GuardTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberships = mocks.NewMockMembershipResolver(suite.ctrl)
	suite.mockTasks = mocks.NewMockTaskLookup(suite.ctrl)
	suite.mockInvitations = mocks.NewMockInvitationLookup(suite.ctrl)
	suite.guard = authz.NewGuard(suite.mockMemberships, suite.mockTasks, suite.mockInvitations)

	suite.userID = uuid.New()
	suite.orgID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *GuardTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// identity simulates the auth middleware having already admitted the caller
func (suite *GuardTestSuite) identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", suite.userID)
		c.Set("email", "caller@test.com")
		c.Next()
	}
}

// echoContext terminates the chain and reports what the guard injected
func echoContext(c *gin.Context) {
	orgID, _ := authz.OrganizationID(c)
	role, _ := authz.CallerRole(c)
	c.JSON(http.StatusOK, gin.H{
		"organization_id": orgID.String(),
		"role":            string(role),
	})
}

func (suite *GuardTestSuite) serve(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *GuardTestSuite) TestMissingIdentityIsUnauthorized() {
	router := gin.New()
	router.GET("/orgs/:id/members",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromParam("id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/orgs/"+suite.orgID.String()+"/members", nil)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *GuardTestSuite) TestNonMemberIsDenied() {
	suite.mockMemberships.EXPECT().
		FindRole(suite.userID, suite.orgID).
		Return(models.OrgRole(""), gorm.ErrRecordNotFound)

	router := gin.New()
	router.Use(suite.identity())
	router.GET("/orgs/:id/members",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromParam("id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/orgs/"+suite.orgID.String()+"/members", nil)

	suite.Equal(http.StatusForbidden, recorder.Code)
	suite.JSONEq(`{"error": "access denied"}`, recorder.Body.String())
}

func (suite *GuardTestSuite) TestInsufficientRoleDenialMatchesNonMemberDenial() {
	suite.mockMemberships.EXPECT().
		FindRole(suite.userID, suite.orgID).
		Return(models.RoleViewer, nil)

	router := gin.New()
	router.Use(suite.identity())
	router.GET("/orgs/:id/audit-logs",
		suite.guard.Require(authz.MinimumRole(models.RoleAdmin), authz.OrgFromParam("id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/orgs/"+suite.orgID.String()+"/audit-logs", nil)

	// Same status and body as the non-member case, so the response cannot
	// be used to probe whether an organization exists or who belongs to it.
	suite.Equal(http.StatusForbidden, recorder.Code)
	suite.JSONEq(`{"error": "access denied"}`, recorder.Body.String())
}

func (suite *GuardTestSuite) TestMemberWithSufficientRoleIsAdmitted() {
	suite.mockMemberships.EXPECT().
		FindRole(suite.userID, suite.orgID).
		Return(models.RoleViewer, nil)

	router := gin.New()
	router.Use(suite.identity())
	router.GET("/orgs/:id/members",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromParam("id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/orgs/"+suite.orgID.String()+"/members", nil)

	suite.Equal(http.StatusOK, recorder.Code)

	var response map[string]string
	suite.NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	suite.Equal(suite.orgID.String(), response["organization_id"])
	suite.Equal("viewer", response["role"])
}

func (suite *GuardTestSuite) TestStoreErrorFailsClosed() {
	suite.mockMemberships.EXPECT().
		FindRole(suite.userID, suite.orgID).
		Return(models.OrgRole(""), errors.New("connection refused"))

	router := gin.New()
	router.Use(suite.identity())
	router.GET("/orgs/:id/members",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromParam("id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/orgs/"+suite.orgID.String()+"/members", nil)

	suite.Equal(http.StatusInternalServerError, recorder.Code)
}

func (suite *GuardTestSuite) TestMalformedOrganizationIDIsBadRequest() {
	router := gin.New()
	router.Use(suite.identity())
	router.GET("/orgs/:id/members",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromParam("id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/orgs/not-a-uuid/members", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *GuardTestSuite) TestMissingQueryParameterIsBadRequest() {
	router := gin.New()
	router.Use(suite.identity())
	router.GET("/tasks",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromQuery("organization_id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/tasks", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *GuardTestSuite) TestBodySourceResolvesAndRestoresBody() {
	suite.mockMemberships.EXPECT().
		FindRole(suite.userID, suite.orgID).
		Return(models.RoleAdmin, nil)

	router := gin.New()
	router.Use(suite.identity())
	router.POST("/tasks",
		suite.guard.Require(authz.MinimumRole(models.RoleAdmin), authz.OrgFromBody("organization_id")),
		func(c *gin.Context) {
			// The handler must still be able to bind the payload the guard
			// peeked at.
			var payload struct {
				OrganizationID uuid.UUID `json:"organization_id"`
				Title          string    `json:"title"`
			}
			suite.NoError(c.ShouldBindJSON(&payload))
			c.JSON(http.StatusOK, gin.H{"title": payload.Title})
		})

	recorder := suite.serve(router, "POST", "/tasks", gin.H{
		"organization_id": suite.orgID.String(),
		"title":           "write report",
	})

	suite.Equal(http.StatusOK, recorder.Code)
	suite.JSONEq(`{"title": "write report"}`, recorder.Body.String())
}

func (suite *GuardTestSuite) TestTaskSourceUsesStoredOrganization() {
	taskID := uuid.New()
	storedOrg := uuid.New()

	suite.mockTasks.EXPECT().
		GetByIDIncludingDeleted(taskID).
		Return(&models.Task{OrganizationID: storedOrg}, nil)
	// Membership is checked against the task's stored organization, not
	// anything the client supplied.
	suite.mockMemberships.EXPECT().
		FindRole(suite.userID, storedOrg).
		Return(models.OrgRole(""), gorm.ErrRecordNotFound)

	router := gin.New()
	router.Use(suite.identity())
	router.PUT("/tasks/:id",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromTask("id")),
		echoContext)

	// A forged organization_id in the payload changes nothing.
	recorder := suite.serve(router, "PUT", "/tasks/"+taskID.String(), gin.H{
		"organization_id": suite.orgID.String(),
		"status":          "DONE",
	})

	suite.Equal(http.StatusForbidden, recorder.Code)
}

func (suite *GuardTestSuite) TestTaskSourceMissingTaskIsNotFound() {
	taskID := uuid.New()
	suite.mockTasks.EXPECT().
		GetByIDIncludingDeleted(taskID).
		Return(nil, gorm.ErrRecordNotFound)

	router := gin.New()
	router.Use(suite.identity())
	router.GET("/tasks/:id",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromTask("id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/tasks/"+taskID.String(), nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *GuardTestSuite) TestTaskSourceMalformedIDIsBadRequest() {
	router := gin.New()
	router.Use(suite.identity())
	router.GET("/tasks/:id",
		suite.guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromTask("id")),
		echoContext)

	recorder := suite.serve(router, "GET", "/tasks/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *GuardTestSuite) TestInvitationSourceResolvesOrganization() {
	invitationID := uuid.New()
	suite.mockInvitations.EXPECT().
		GetByID(invitationID).
		Return(&models.Invitation{OrganizationID: suite.orgID}, nil)
	suite.mockMemberships.EXPECT().
		FindRole(suite.userID, suite.orgID).
		Return(models.RoleOwner, nil)

	router := gin.New()
	router.Use(suite.identity())
	router.DELETE("/invitations/:id",
		suite.guard.Require(authz.AnyOf(models.RoleOwner, models.RoleAdmin), authz.OrgFromInvitation("id")),
		echoContext)

	recorder := suite.serve(router, "DELETE", "/invitations/"+invitationID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *GuardTestSuite) TestAnyOfRejectsUnlistedRole() {
	suite.mockMemberships.EXPECT().
		FindRole(suite.userID, suite.orgID).
		Return(models.RoleViewer, nil)

	router := gin.New()
	router.Use(suite.identity())
	router.POST("/invitations",
		suite.guard.Require(authz.AnyOf(models.RoleOwner, models.RoleAdmin), authz.OrgFromBody("organization_id")),
		echoContext)

	recorder := suite.serve(router, "POST", "/invitations", gin.H{
		"organization_id": suite.orgID.String(),
		"email":           "new@test.com",
		"role":            "viewer",
	})

	suite.Equal(http.StatusForbidden, recorder.Code)
}

// TestGuardTestSuite runs the test suite
func TestGuardTestSuite(t *testing.T) {
	suite.Run(t, new(GuardTestSuite))
}
