// services/meal_service.go
package services

import (
	"errors"
	"time"

	"github.com/deividev5/Daily-Diet/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrMealNotFound covers both "no such meal" and "meal owned by another
	// user" — the two are deliberately indistinguishable so that meal ids
	// leak nothing about other users' records.
	ErrMealNotFound = errors.New("meal not found")

	// ErrNoMeals is returned when a user has an empty meal history.
	ErrNoMeals = errors.New("no meals found")
)

type MealService struct{ db *gorm.DB }

func NewMealService(db *gorm.DB) *MealService { return &MealService{db: db} }

// CreateMealRequest is the validated body of POST /meals. IsOnDiet is a
// pointer so an explicit false still satisfies the required binding.
type CreateMealRequest struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description" binding:"required"`
	DateTime    time.Time `json:"dateTime" binding:"required"`
	IsOnDiet    *bool     `json:"isOnDiet" binding:"required"`
}

// UpdateMealRequest is the PATCH body. Pointer fields distinguish "omitted"
// from "explicitly set"; only non-nil fields are written.
type UpdateMealRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	DateTime    *time.Time `json:"dateTime"`
	IsOnDiet    *bool      `json:"isOnDiet"`
}

func (s *MealService) Create(user *models.User, req CreateMealRequest) (*models.Meal, error) {
	meal := models.Meal{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
		DateTime:    req.DateTime,
		IsOnDiet:    *req.IsOnDiet,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// Get returns the meal only when it exists and belongs to user.
func (s *MealService) Get(user *models.User, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, user.ID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// List returns every meal owned by user. An empty history is ErrNoMeals
// rather than an empty slice; the HTTP layer surfaces it as 404.
func (s *MealService) List(user *models.User) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.Where("user_id = ?", user.ID).Find(&meals).Error; err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, ErrNoMeals
	}
	return meals, nil
}

// Update applies a partial update and returns the re-read meal. updated_at
// is refreshed on every successful update, even when no field was sent.
func (s *MealService) Update(user *models.User, mealID string, req UpdateMealRequest) (*models.Meal, error) {
	if _, err := s.Get(user, mealID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DateTime != nil {
		updates["date_time"] = *req.DateTime
	}
	if req.IsOnDiet != nil {
		updates["is_on_diet"] = *req.IsOnDiet
	}

	err := s.db.Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, user.ID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}

	return s.Get(user, mealID)
}

// Delete removes the meal permanently once ownership is confirmed.
func (s *MealService) Delete(user *models.User, mealID string) error {
	if _, err := s.Get(user, mealID); err != nil {
		return err
	}
	return s.db.
		Where("id = ? AND user_id = ?", mealID, user.ID).
		Delete(&models.Meal{}).Error
}
