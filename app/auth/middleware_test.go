package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/joefazee/bosko/internal/security"
	"github.com/joefazee/bosko/models"
)

type MiddlewareTestSuite struct {
	suite.Suite
	tokenMaker *security.MockMaker
	router     *gin.Engine
	seen       models.CurrentUser
	seenToken  string
}

func (suite *MiddlewareTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *MiddlewareTestSuite) SetupTest() {
	suite.tokenMaker = &security.MockMaker{}
	suite.seen = models.CurrentUser{}
	suite.seenToken = ""
	suite.router = gin.New()

	suite.router.Use(Middleware(suite.tokenMaker))
	suite.router.GET("/test", func(c *gin.Context) {
		u, ok := CurrentUser(c)
		suite.True(ok)
		suite.seen = u
		suite.seenToken = AccessToken(c)
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})
}

func TestMiddleware(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func (suite *MiddlewareTestSuite) serve(header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	if header != "" {
		req.Header.Set(AuthorizationHeaderKey, header)
	}
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *MiddlewareTestSuite) TestMissingAuthHeader() {
	w := suite.serve("")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.tokenMaker.AssertNotCalled(suite.T(), "VerifyToken")
}

func (suite *MiddlewareTestSuite) TestWrongScheme() {
	w := suite.serve("Basic abc")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *MiddlewareTestSuite) TestInvalidToken() {
	suite.tokenMaker.On("VerifyToken", "bad").Return(nil, security.ErrInvalidToken)

	w := suite.serve("Bearer bad")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.tokenMaker.AssertExpectations(suite.T())
}

func (suite *MiddlewareTestSuite) TestValidToken() {
	payload := &security.Payload{
		UserID:    "u-1",
		UserName:  "Ana",
		Plan:      "Premium mensual",
		ExpiredAt: time.Now().Add(time.Hour),
	}
	suite.tokenMaker.On("VerifyToken", "good").Return(payload, nil)

	w := suite.serve("Bearer good")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("u-1", suite.seen.ID)
	suite.Equal("Ana", suite.seen.Name)
	suite.Equal(models.PlanPlus, suite.seen.Plan.Tier)
	suite.Equal("good", suite.seenToken)
}

func (suite *MiddlewareTestSuite) TestUserFromPayloadDefaultsToFree() {
	u := UserFromPayload(&security.Payload{UserID: "u-2"})
	suite.Equal(models.PlanFree, u.Plan.Tier)
}
