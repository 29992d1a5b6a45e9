package services

import (
	"sort"
	"strings"

	"github.com/kizunaworks/sasaeru/internal/models"
	"github.com/kizunaworks/sasaeru/internal/utils"
	"gorm.io/gorm"
)

// ServiceUserFilters narrows the service-user list.
type ServiceUserFilters struct {
	Search string
	Area   string
}

// ServiceUserInput carries a service-user create/update form.
type ServiceUserInput struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	Address      string `json:"address"`
	Area         string `json:"area"`
	SpecialNotes string `json:"special_notes"`
}

// ListServiceUsers returns service users matching the filters, newest first.
func ListServiceUsers(db *gorm.DB, f ServiceUserFilters) ([]models.ServiceUser, error) {
	query := db.Model(&models.ServiceUser{})

	if f.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}
	if hasFilter(f.Area) {
		query = query.Where("area = ?", f.Area)
	}

	var users []models.ServiceUser
	if err := query.Order("created_at DESC, id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetServiceUser returns one service user, or gorm.ErrRecordNotFound.
func GetServiceUser(db *gorm.DB, id string) (*models.ServiceUser, error) {
	var user models.ServiceUser
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateServiceUser creates a service user from a validated form.
func CreateServiceUser(db *gorm.DB, in ServiceUserInput) (*models.ServiceUser, error) {
	user := models.ServiceUser{
		Name:         in.Name,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		Area:         in.Area,
		SpecialNotes: in.SpecialNotes,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateServiceUser replaces a service user's scalar fields.
func UpdateServiceUser(db *gorm.DB, id string, in ServiceUserInput) (*models.ServiceUser, error) {
	var user models.ServiceUser
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":          in.Name,
		"phone":         in.Phone,
		"email":         in.Email,
		"address":       in.Address,
		"area":          in.Area,
		"special_notes": in.SpecialNotes,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteServiceUser removes a service user.
func DeleteServiceUser(db *gorm.DB, id string) (int64, error) {
	res := db.Where("id = ?", id).Delete(&models.ServiceUser{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return res.RowsAffected, nil
}

// ListAreas returns the distinct non-empty areas across supporters and
// service users, for filter dropdowns.
func ListAreas(db *gorm.DB) ([]string, error) {
	var supporterAreas, userAreas []string
	if err := db.Model(&models.Supporter{}).
		Where("area <> ''").Distinct().Order("area").Pluck("area", &supporterAreas).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.ServiceUser{}).
		Where("area <> ''").Distinct().Order("area").Pluck("area", &userAreas).Error; err != nil {
		return nil, err
	}

	areas := make([]string, 0, len(supporterAreas)+len(userAreas))
	areas = append(areas, supporterAreas...)
	areas = append(areas, userAreas...)
	sort.Strings(areas)
	return utils.Unique(areas), nil
}
