package testutil

import (
	"testing"
	"time"

	"github.com/stayloop/stayloop/internal/facade"
	"github.com/stayloop/stayloop/internal/models"
	"github.com/stayloop/stayloop/internal/utils"
)

// CreateTestUser persists a user through the facade with a real password
// hash and fails the test on error.
func CreateTestUser(t *testing.T, f *facade.Facade, firstName, lastName, email, password string, isAdmin bool) *models.User {
	t.Helper()
	user, err := f.CreateUser(facade.UserInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		IsAdmin:   isAdmin,
	})
	if err != nil {
		t.Fatalf("Failed to create test user %s: %v", email, err)
	}
	return user
}

// CreateTestPlace persists a place owned by the given user.
func CreateTestPlace(t *testing.T, f *facade.Facade, ownerID, title string) *models.Place {
	t.Helper()
	place, err := f.CreatePlace(facade.PlaceInput{
		Title:       title,
		Description: "A cozy spot near the old town square",
		Price:       120,
		Latitude:    48.2082,
		Longitude:   16.3738,
		OwnerID:     ownerID,
	})
	if err != nil {
		t.Fatalf("Failed to create test place %s: %v", title, err)
	}
	return place
}

// CreateTestReview persists a review for the given place and author.
func CreateTestReview(t *testing.T, f *facade.Facade, userID, placeID string, rating int) *models.Review {
	t.Helper()
	review, err := f.CreateReview(facade.ReviewInput{
		Text:    "Would stay again",
		Rating:  rating,
		PlaceID: placeID,
		UserID:  userID,
	})
	if err != nil {
		t.Fatalf("Failed to create test review: %v", err)
	}
	return review
}

// TokenFor issues a signed token for the user, valid for an hour.
func TokenFor(t *testing.T, user *models.User, secret string) string {
	t.Helper()
	token, err := utils.GenerateToken(user, secret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to generate token for %s: %v", user.Email, err)
	}
	return token
}
