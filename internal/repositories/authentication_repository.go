package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
	"github.com/zeroonedevs/SheRisesv1/internal/utils"
)

type AuthenticationRepository struct {
	db *gorm.DB
}

func NewAuthenticationRepository(db *gorm.DB) *AuthenticationRepository {
	return &AuthenticationRepository{
		db: db,
	}
}

func (ar *AuthenticationRepository) CreateUser(user *models.User) (*models.User, []error) {
	var errorList []error
	result := ar.db.Create(user)
	if result.Error != nil {
		errorList = append(errorList, result.Error)
		return nil, errorList
	}
	if result.RowsAffected == 0 {
		errorList = append(errorList, errs.ErrUserNotFound)
		return nil, errorList
	}
	return user, nil
}

func (ar *AuthenticationRepository) CheckIfUserExists(email string) *models.User {
	var user models.User
	result := ar.db.Where("email = ?", email).First(&user)
	if result.Error == nil && result.RowsAffected > 0 {
		return &user
	}
	return nil
}

func (ar *AuthenticationRepository) Login(login *models.LoginRequestBody) (*models.User, []error) {
	var errorList []error
	user := ar.CheckIfUserExists(login.Email)
	if user == nil {
		errorList = append(errorList, errs.ErrUserNotFound)
		return nil, errorList
	}
	if err := utils.CompareHashAndPassword(user.PasswordHash, login.Password); err != nil {
		errorList = append(errorList, errs.ErrWrongPassword)
		return nil, errorList
	}
	return user, nil
}

func (ar *AuthenticationRepository) FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	result := ar.db.First(&user, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (ar *AuthenticationRepository) GetAllUsersWithPagination(page, size, offset int) (*models.GetUsersResponse, []error) {
	var errorList []error
	var users []models.User
	var total int64

	transactionErr := ar.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Offset(offset).Limit(size).Order("id").Find(&users).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errorList = append(errorList, transactionErr)
		return nil, errorList
	}

	userResponses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, *user.ToUserResponse())
	}

	return &models.GetUsersResponse{
		Users: userResponses,
		Page:  page,
		Size:  size,
		Total: total,
	}, nil
}

func (ar *AuthenticationRepository) UpdateUserProfilePhoto(userID uint, url string) error {
	return ar.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_photo", url).Error
}

// Lookup implements interfaces.UserDirectory.
func (ar *AuthenticationRepository) Lookup(userID uint) (*models.UserResponse, error) {
	user, err := ar.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	return user.ToUserResponse(), nil
}

// LookupMany batch-resolves display profiles. Unknown ids are simply absent
// from the result, they do not fail the whole lookup.
func (ar *AuthenticationRepository) LookupMany(userIDs []uint) (map[uint]*models.UserResponse, error) {
	profiles := make(map[uint]*models.UserResponse, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}
	var users []models.User
	if err := ar.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		profiles[users[i].ID] = users[i].ToUserResponse()
	}
	return profiles, nil
}
