package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stayloop/stayloop/internal/models"
	"github.com/stayloop/stayloop/internal/testutil"
	"github.com/stretchr/testify/suite"
)

type PlaceHandlerSuite struct {
	HandlerSuite

	owner      *models.User
	ownerToken string
}

func TestPlaceHandlerSuite(t *testing.T) {
	suite.Run(t, new(PlaceHandlerSuite))
}

func (s *PlaceHandlerSuite) SetupTest() {
	s.HandlerSuite.SetupTest()
	s.owner = testutil.CreateTestUser(s.T(), s.facade, "Olga", "Berg", "olga@example.com", "pw123456", false)
	s.ownerToken = testutil.TokenFor(s.T(), s.owner, testJWTSecret)
}

func (s *PlaceHandlerSuite) placePayload() map[string]any {
	return map[string]any{
		"title":       "Canal House",
		"description": "Two floors over the water",
		"price":       180.0,
		"latitude":    52.37,
		"longitude":   4.89,
		"owner_id":    s.owner.ID,
	}
}

func (s *PlaceHandlerSuite) TestCreatePlace() {
	w := s.request(http.MethodPost, "/api/v1/places/", s.ownerToken, s.placePayload())

	s.Equal(http.StatusCreated, w.Code)
	body := s.parse(w)
	s.NotEmpty(body["id"])
	s.Equal("Canal House", body["title"])
	s.Equal(s.owner.ID, body["owner_id"])
}

func (s *PlaceHandlerSuite) TestCreateRequiresCallerToBeOwner() {
	other := testutil.CreateTestUser(s.T(), s.facade, "Not", "Owner", "not@example.com", "pw123456", false)

	w := s.request(http.MethodPost, "/api/v1/places/", testutil.TokenFor(s.T(), other, testJWTSecret), s.placePayload())
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Unauthorized action, can only create place if you are the owner", s.errorMessage(w))

	w = s.request(http.MethodPost, "/api/v1/places/", "", s.placePayload())
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *PlaceHandlerSuite) TestCreateRejectsZeroPrice() {
	payload := s.placePayload()
	payload["price"] = 0.0

	w := s.request(http.MethodPost, "/api/v1/places/", s.ownerToken, payload)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.errorMessage(w), "price")
}

func (s *PlaceHandlerSuite) TestCreateRejectsUnknownAmenity() {
	payload := s.placePayload()
	payload["amenities"] = []string{"no-such-amenity"}

	w := s.request(http.MethodPost, "/api/v1/places/", s.ownerToken, payload)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("Amenity with ID no-such-amenity not found", s.errorMessage(w))
}

func (s *PlaceHandlerSuite) TestCreateWithAmenities() {
	pool, err := s.facade.CreateAmenity("Pool")
	s.Require().NoError(err)

	payload := s.placePayload()
	payload["amenities"] = []string{pool.ID}

	w := s.request(http.MethodPost, "/api/v1/places/", s.ownerToken, payload)
	s.Equal(http.StatusCreated, w.Code)
	s.Equal([]any{pool.ID}, s.parse(w)["amenities"])
}

func (s *PlaceHandlerSuite) TestGetEmbedsOwnerSummary() {
	place := testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "Canal House")

	w := s.request(http.MethodGet, "/api/v1/places/"+place.ID, "", nil)
	s.Equal(http.StatusOK, w.Code)

	body := s.parse(w)
	ownerSummary, ok := body["owner"].(map[string]any)
	s.Require().True(ok, "detail response should embed an owner object")
	s.Equal(s.owner.ID, ownerSummary["id"])
	s.Equal("olga@example.com", ownerSummary["email"])

	w = s.request(http.MethodGet, "/api/v1/places/no-such-id", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal("Place not found", s.errorMessage(w))
}

func (s *PlaceHandlerSuite) TestList() {
	testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "One")
	testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "Two")

	w := s.request(http.MethodGet, "/api/v1/places/", "", nil)
	s.Equal(http.StatusOK, w.Code)

	list := s.parseList(w)
	s.Require().Len(list, 2)
	s.Contains(list[0], "owner")
}

func (s *PlaceHandlerSuite) TestUpdatePartialMerge() {
	place := testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "Before")

	w := s.request(http.MethodPut, "/api/v1/places/"+place.ID, s.ownerToken, map[string]any{
		"title": "After",
	})

	s.Equal(http.StatusOK, w.Code)
	body := s.parse(w)
	s.Equal("After", body["title"])
	// Untouched fields keep their values.
	s.Equal(float64(120), body["price"])
}

func (s *PlaceHandlerSuite) TestUpdateOwnershipChecks() {
	place := testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "Guarded")
	stranger := testutil.CreateTestUser(s.T(), s.facade, "Str", "Anger", "stranger@example.com", "pw123456", false)

	w := s.request(http.MethodPut, "/api/v1/places/"+place.ID, testutil.TokenFor(s.T(), stranger, testJWTSecret), map[string]any{
		"title": "Taken over",
	})
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Unauthorized action, you must be the owner of the place to update it", s.errorMessage(w))

	// Admins bypass the ownership check.
	admin := testutil.CreateTestUser(s.T(), s.facade, "Ada", "Root", "admin@example.com", "pw123456", true)
	w = s.request(http.MethodPut, "/api/v1/places/"+place.ID, testutil.TokenFor(s.T(), admin, testJWTSecret), map[string]any{
		"title": "Admin edit",
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal("Admin edit", s.parse(w)["title"])

	w = s.request(http.MethodPut, "/api/v1/places/no-such-id", s.ownerToken, map[string]any{"title": "Ghost"})
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PlaceHandlerSuite) TestUpdateAmenities() {
	place := testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "Amenable")
	spa, err := s.facade.CreateAmenity("Spa")
	s.Require().NoError(err)

	w := s.request(http.MethodPut, "/api/v1/places/"+place.ID, s.ownerToken, map[string]any{
		"amenities": []string{spa.ID},
	})
	s.Equal(http.StatusOK, w.Code)
	s.Equal([]any{spa.ID}, s.parse(w)["amenities"])

	w = s.request(http.MethodPut, "/api/v1/places/"+place.ID, s.ownerToken, map[string]any{
		"amenities": []string{"bogus-id"},
	})
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(s.errorMessage(w), "bogus-id")
}

func (s *PlaceHandlerSuite) TestDeleteOwnershipChecks() {
	place := testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "Doomed")
	stranger := testutil.CreateTestUser(s.T(), s.facade, "Str", "Anger", "stranger@example.com", "pw123456", false)

	w := s.request(http.MethodDelete, "/api/v1/places/"+place.ID, testutil.TokenFor(s.T(), stranger, testJWTSecret), nil)
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal("Unauthorized action, you must be the owner of the place to delete it", s.errorMessage(w))

	w = s.request(http.MethodDelete, "/api/v1/places/"+place.ID, s.ownerToken, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(fmt.Sprintf("Place %s deleted successfully", place.ID), s.parse(w)["message"])

	w = s.request(http.MethodGet, "/api/v1/places/"+place.ID, "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *PlaceHandlerSuite) TestListReviewsByPlace() {
	place := testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "Reviewed")
	review := testutil.CreateTestReview(s.T(), s.facade, s.owner.ID, place.ID, 4)

	w := s.request(http.MethodGet, "/api/v1/places/"+place.ID+"/reviews", "", nil)
	s.Equal(http.StatusOK, w.Code)
	list := s.parseList(w)
	s.Require().Len(list, 1)
	s.Equal(review.ID, list[0]["id"])

	// A place with no reviews yields an empty list, not an error.
	quiet := testutil.CreateTestPlace(s.T(), s.facade, s.owner.ID, "Quiet")
	w = s.request(http.MethodGet, "/api/v1/places/"+quiet.ID+"/reviews", "", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Empty(s.parseList(w))

	w = s.request(http.MethodGet, "/api/v1/places/no-such-id/reviews", "", nil)
	s.Equal(http.StatusNotFound, w.Code)
}
