package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type AmenityHandlerSuite struct {
	HandlerSuite
}

func TestAmenityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AmenityHandlerSuite))
}

func (s *AmenityHandlerSuite) adminToken() string {
	admin := testutil.CreateTestUser(s.T(), s.facade, "Ada", "Root", "admin@example.com", "adminpw123", true)
	return testutil.TokenFor(s.T(), admin, testJWTSecret)
}

func (s *AmenityHandlerSuite) TestCreateRequiresAdmin() {
	w := s.request(http.MethodPost, "/api/v1/amenities/", "", map[string]string{"name": "Pool"})
	s.Equal(http.StatusUnauthorized, w.Code)

	regular := testutil.CreateTestUser(s.T(), s.facade, "Reg", "Ular", "reg@example.com", "pw123456", false)
	w = s.request(http.MethodPost, "/api/v1/amenities/", testutil.TokenFor(s.T(), regular, testJWTSecret), map[string]string{"name": "Pool"})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPost, "/api/v1/amenities/", s.adminToken(), map[string]string{"name": "Pool"})
	s.Equal(http.StatusCreated, w.Code)
	body := s.parse(w)
	s.NotEmpty(body["id"])
	s.Equal("Pool", body["name"])
}

func (s *AmenityHandlerSuite) TestCreateRejectsMissingName() {
	w := s.request(http.MethodPost, "/api/v1/amenities/", s.adminToken(), map[string]string{})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Amenity name is required", s.errorMessage(w))
}

func (s *AmenityHandlerSuite) TestListAndGetArePublic() {
	amenity, err := s.facade.CreateAmenity("WiFi")
	s.Require().NoError(err)

	w := s.request(http.MethodGet, "/api/v1/amenities/", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Len(s.parseList(w), 1)

	w = s.request(http.MethodGet, "/api/v1/amenities/"+amenity.ID, "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("WiFi", s.parse(w)["name"])

	w = s.request(http.MethodGet, "/api/v1/amenities/no-such-id", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Amenity not found", s.errorMessage(w))
}

func (s *AmenityHandlerSuite) TestUpdateRequiresAdmin() {
	amenity, err := s.facade.CreateAmenity("Pool")
	s.Require().NoError(err)

	regular := testutil.CreateTestUser(s.T(), s.facade, "Reg", "Ular", "reg@example.com", "pw123456", false)
	w := s.request(http.MethodPut, "/api/v1/amenities/"+amenity.ID, testutil.TokenFor(s.T(), regular, testJWTSecret), map[string]string{"name": "Spa"})
	s.Equal(http.StatusForbidden, w.Code)

	w = s.request(http.MethodPut, "/api/v1/amenities/"+amenity.ID, s.adminToken(), map[string]string{"name": "Spa"})
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Spa", s.parse(w)["name"])
}

// Amenity deletion takes no token at all; the original service shipped
// it that way and the behavior is preserved.
func (s *AmenityHandlerSuite) TestDeleteIsUnauthenticated() {
	amenity, err := s.facade.CreateAmenity("Sauna")
	s.Require().NoError(err)

	w := s.request(http.MethodDelete, "/api/v1/amenities/"+amenity.ID, "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(fmt.Sprintf("Amenity %s deleted successfully", amenity.ID), s.parse(w)["message"])

	w = s.request(http.MethodGet, "/api/v1/amenities/"+amenity.ID, "", nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.request(http.MethodDelete, "/api/v1/amenities/no-such-id", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}
