package services

import (
	"strings"

	apperrors "hostel/errors"
	"hostel/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// FindResident looks a resident up by exact email first, then by fuzzy
// name match (accent-insensitive closest-match with a levenshtein
// cutoff). Returns the resident with the assigned room preloaded.
func FindResident(db *gorm.DB, query string) (*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Search query is required", nil)
	}

	var user models.User
	if err := db.Preload("AssignedRoom").
		Where("email = ?", strings.ToLower(query)).
		First(&user).Error; err == nil {
		return &user, nil
	}

	var residents []models.User
	if err := db.Where("role = ?", models.RoleResident).Find(&residents).Error; err != nil {
		return nil, err
	}

	normalizedQuery := normalizeInput(query)
	keywords := make([]string, 0, len(residents))
	for _, r := range residents {
		keywords = append(keywords, normalizeInput(r.Name))
	}

	var best *models.User
	bestScore := 0.0
	if len(keywords) > 0 {
		closest := createMatcher(keywords).Closest(normalizedQuery)
		for i := range residents {
			name := normalizeInput(residents[i].Name)
			score := calculateSimilarity(normalizedQuery, name)
			if name == closest && score > bestScore {
				best = &residents[i]
				bestScore = score
			}
			if strings.Contains(name, normalizedQuery) && score+0.3 > bestScore {
				best = &residents[i]
				bestScore = score + 0.3
			}
		}
	}

	if best == nil || bestScore < 0.3 {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUserNotFound, "Resident not found", nil)
	}

	if err := db.Preload("AssignedRoom").First(&user, best.ID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
