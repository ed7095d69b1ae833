package facade

import (
	"github.com/stayloop/stayloop/internal/models"
	"github.com/stayloop/stayloop/internal/repository"
	"github.com/stayloop/stayloop/internal/utils"
	"github.com/stayloop/stayloop/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Facade is the single entry point for all business logic. It owns one
// repository per entity type and enforces every validation, uniqueness
// and referential-integrity rule before touching storage. Handlers only
// ever talk to this type, never to a repository directly.
type Facade struct {
	users     repository.Repository[models.User]
	places    repository.Repository[models.Place]
	amenities repository.Repository[models.Amenity]
	reviews   repository.Repository[models.Review]
}

func New(
	users repository.Repository[models.User],
	places repository.Repository[models.Place],
	amenities repository.Repository[models.Amenity],
	reviews repository.Repository[models.Review],
) *Facade {
	return &Facade{
		users:     users,
		places:    places,
		amenities: amenities,
		reviews:   reviews,
	}
}

// NewGorm wires a facade onto a relational database.
func NewGorm(db *gorm.DB) *Facade {
	return New(
		repository.NewGormRepository[models.User](db),
		repository.NewGormRepository[models.Place](db),
		repository.NewGormRepository[models.Amenity](db),
		repository.NewGormRepository[models.Review](db),
	)
}

// NewMemory wires a facade onto process-local maps.
func NewMemory() *Facade {
	return New(
		repository.NewMemoryRepository[models.User](),
		repository.NewMemoryRepository[models.Place](),
		repository.NewMemoryRepository[models.Amenity](),
		repository.NewMemoryRepository[models.Review](),
	)
}

type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

type PlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
}

type ReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// User methods

func (f *Facade) CreateUser(in UserInput) (*models.User, error) {
	if len(in.FirstName) < 1 || len(in.FirstName) > 50 {
		return nil, validationErrorf("first_name must be between 1 and 50 characters")
	}
	if len(in.LastName) < 1 || len(in.LastName) > 50 {
		return nil, validationErrorf("last_name must be between 1 and 50 characters")
	}

	existing, err := f.users.GetByAttribute("email", in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.Log.Warn("Email already registered",
			zap.String("email", in.Email),
		)
		return nil, validationErrorf("email already registered")
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		Base:         models.NewBase(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: passwordHash,
		IsAdmin:      in.IsAdmin,
	}
	if err := f.users.Add(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("User created",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)
	return user, nil
}

func (f *Facade) GetUser(id string) (*models.User, error) {
	return f.users.Get(id)
}

func (f *Facade) GetAllUsers() ([]*models.User, error) {
	return f.users.GetAll()
}

func (f *Facade) GetUserByEmail(email string) (*models.User, error) {
	return f.users.GetByAttribute("email", email)
}

func (f *Facade) UpdateUser(id string, fields map[string]any) (*models.User, error) {
	if err := f.users.Update(id, fields); err != nil {
		return nil, err
	}
	return f.users.Get(id)
}

// DeleteUser removes the user and, explicitly, everything the user owns:
// each owned place (with its reviews) and each review the user wrote.
// Doing the cascade here keeps the invariant identical across the
// relational and in-memory backends.
func (f *Facade) DeleteUser(id string) error {
	places, err := f.places.GetAll()
	if err != nil {
		return err
	}
	for _, place := range places {
		if place.OwnerID == id {
			if err := f.DeletePlace(place.ID); err != nil {
				return err
			}
		}
	}

	reviews, err := f.reviews.GetAll()
	if err != nil {
		return err
	}
	for _, review := range reviews {
		if review.UserID == id {
			if err := f.reviews.Delete(review.ID); err != nil {
				return err
			}
		}
	}

	logger.Log.Info("Deleting user", zap.String("user_id", id))
	return f.users.Delete(id)
}

// Amenity methods

func (f *Facade) CreateAmenity(name string) (*models.Amenity, error) {
	if len(name) < 1 || len(name) > 50 {
		return nil, validationErrorf("name must be between 1 and 50 characters")
	}

	amenity := &models.Amenity{
		Base: models.NewBase(),
		Name: name,
	}
	if err := f.amenities.Add(amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (f *Facade) GetAmenity(id string) (*models.Amenity, error) {
	return f.amenities.Get(id)
}

func (f *Facade) GetAllAmenities() ([]*models.Amenity, error) {
	return f.amenities.GetAll()
}

func (f *Facade) UpdateAmenity(id string, fields map[string]any) (*models.Amenity, error) {
	if err := f.amenities.Update(id, fields); err != nil {
		return nil, err
	}
	return f.amenities.Get(id)
}

func (f *Facade) DeleteAmenity(id string) error {
	logger.Log.Info("Deleting amenity", zap.String("amenity_id", id))
	return f.amenities.Delete(id)
}

// Place methods

// CreatePlace validates numeric ranges before string lengths and checks
// that the owner exists. The amenity list is attached separately through
// SetPlaceAmenities.
func (f *Facade) CreatePlace(in PlaceInput) (*models.Place, error) {
	if in.Price < 1 || in.Price > 1000000 {
		return nil, validationErrorf("price must be a number between 1 and 1000000")
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return nil, validationErrorf("latitude must be a number between -90 and 90")
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return nil, validationErrorf("longitude must be a number between -180 and 180")
	}
	if len(in.Title) < 1 || len(in.Title) > 50 {
		return nil, validationErrorf("title must be between 1 and 50 characters")
	}
	if len(in.Description) < 1 || len(in.Description) > 500 {
		return nil, validationErrorf("description must be between 1 and 500 characters")
	}

	owner, err := f.users.Get(in.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, validationErrorf("owner does not exist")
	}

	place := &models.Place{
		Base:        models.NewBase(),
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		OwnerID:     in.OwnerID,
		Amenities:   models.StringList{},
	}
	if err := f.places.Add(place); err != nil {
		logger.Log.Error("Failed to create place",
			zap.String("owner_id", in.OwnerID),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Place created",
		zap.String("place_id", place.ID),
		zap.String("owner_id", place.OwnerID),
	)
	return place, nil
}

func (f *Facade) GetPlace(id string) (*models.Place, error) {
	return f.places.Get(id)
}

func (f *Facade) GetAllPlaces() ([]*models.Place, error) {
	return f.places.GetAll()
}

func (f *Facade) UpdatePlace(id string, fields map[string]any) (*models.Place, error) {
	if err := f.places.Update(id, fields); err != nil {
		return nil, err
	}
	return f.places.Get(id)
}

// SetPlaceAmenities validates every amenity ID and replaces the place's
// amenity list. Returns nil without error when the place is absent.
func (f *Facade) SetPlaceAmenities(placeID string, amenityIDs []string) (*models.Place, error) {
	place, err := f.places.Get(placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, nil
	}

	for _, amenityID := range amenityIDs {
		amenity, err := f.amenities.Get(amenityID)
		if err != nil {
			return nil, err
		}
		if amenity == nil {
			return nil, validationErrorf("amenity with ID %s not found", amenityID)
		}
	}

	if err := f.places.Update(placeID, map[string]any{
		"amenities": models.StringList(amenityIDs),
	}); err != nil {
		return nil, err
	}
	return f.places.Get(placeID)
}

// DeletePlace removes the place and all reviews attached to it.
func (f *Facade) DeletePlace(id string) error {
	reviews, err := f.reviews.GetAll()
	if err != nil {
		return err
	}
	for _, review := range reviews {
		if review.PlaceID == id {
			if err := f.reviews.Delete(review.ID); err != nil {
				return err
			}
		}
	}

	logger.Log.Info("Deleting place", zap.String("place_id", id))
	return f.places.Delete(id)
}

// Review methods

// CreateReview checks referential integrity before field validity: the
// review's author and place must both exist.
func (f *Facade) CreateReview(in ReviewInput) (*models.Review, error) {
	user, err := f.users.Get(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, validationErrorf("user does not exist")
	}

	place, err := f.places.Get(in.PlaceID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, validationErrorf("place does not exist")
	}

	if in.Rating < 1 || in.Rating > 5 {
		return nil, validationErrorf("rating must be an integer between 1 and 5")
	}
	if len(in.Text) < 1 || len(in.Text) > 500 {
		return nil, validationErrorf("text must be between 1 and 500 characters")
	}

	review := &models.Review{
		Base:    models.NewBase(),
		Text:    in.Text,
		Rating:  in.Rating,
		PlaceID: in.PlaceID,
		UserID:  in.UserID,
	}
	if err := f.reviews.Add(review); err != nil {
		return nil, err
	}

	logger.Log.Info("Review created",
		zap.String("review_id", review.ID),
		zap.String("place_id", review.PlaceID),
		zap.String("user_id", review.UserID),
	)
	return review, nil
}

func (f *Facade) GetReview(id string) (*models.Review, error) {
	return f.reviews.Get(id)
}

func (f *Facade) GetAllReviews() ([]*models.Review, error) {
	return f.reviews.GetAll()
}

// GetReviewsByPlace returns every review for the place, in no particular
// order. A place with no reviews yields an empty slice, not an error.
func (f *Facade) GetReviewsByPlace(placeID string) ([]*models.Review, error) {
	reviews, err := f.reviews.GetAll()
	if err != nil {
		return nil, err
	}
	matched := make([]*models.Review, 0)
	for _, review := range reviews {
		if review.PlaceID == placeID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}

func (f *Facade) UpdateReview(id string, fields map[string]any) (*models.Review, error) {
	if err := f.reviews.Update(id, fields); err != nil {
		return nil, err
	}
	return f.reviews.Get(id)
}

func (f *Facade) DeleteReview(id string) error {
	logger.Log.Info("Deleting review", zap.String("review_id", id))
	return f.reviews.Delete(id)
}
