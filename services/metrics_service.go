// services/metrics_service.go
package services

import (
	"github.com/deividev5/Daily-Diet/models"

	"gorm.io/gorm"
)

// MealMetrics is the derived summary of a user's meal history.
type MealMetrics struct {
	TotalMeals   int `json:"totalMeals"`
	MealsOnDiet  int `json:"mealsOnDiet"`
	MealsOffDiet int `json:"mealsOffDiet"`
	BestSequence int `json:"bestSequence"`
}

type MetricsService struct{ db *gorm.DB }

func NewMetricsService(db *gorm.DB) *MetricsService { return &MetricsService{db: db} }

// Compute recalculates the summary from the full meal history on every
// call; nothing is cached. Meals are ordered by date_time so the streak is
// chronological regardless of insertion order. A single pass keeps a
// current run counter that an off-diet meal resets to zero.
func (s *MetricsService) Compute(user *models.User) (*MealMetrics, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ?", user.ID).
		Order("date_time ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	m := &MealMetrics{TotalMeals: len(meals)}

	current := 0
	for _, meal := range meals {
		if meal.IsOnDiet {
			m.MealsOnDiet++
			current++
			if current > m.BestSequence {
				m.BestSequence = current
			}
		} else {
			m.MealsOffDiet++
			current = 0
		}
	}

	return m, nil
}
