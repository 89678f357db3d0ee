package services

import (
	"log"
	"time"

	"github.com/zeroonedevs/SheRisesv1/configs"
	"github.com/zeroonedevs/SheRisesv1/internal/errs"
	"github.com/zeroonedevs/SheRisesv1/internal/models"
	"github.com/zeroonedevs/SheRisesv1/internal/repositories"
	"github.com/zeroonedevs/SheRisesv1/internal/utils"
	"github.com/zeroonedevs/SheRisesv1/internal/validators"
)

type AuthenticationService struct {
	authRepo *repositories.AuthenticationRepository
	config   *configs.Config
}

func NewAuthenticationService(
	authRepo *repositories.AuthenticationRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		authRepo: authRepo,
		config:   config,
	}
}

func (as *AuthenticationService) Register(user *models.User) (*models.User, []error) {
	var errors []error
	if as.CheckIfUserExists(user.Email) {
		errors = append(errors, errs.ErrUserAlreadyExists)
		return nil, errors
	}
	validationErrs := validators.ValidateUser(user)
	if len(validationErrs) > 0 {
		errors = append(errors, validationErrs...)
		return nil, errors
	}
	password, err := utils.HashPassword(user.Password)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	user.PasswordHash = password
	return as.authRepo.CreateUser(user)
}

func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	user, loginErrs := as.authRepo.Login(loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		return nil, errors
	}

	jwtExpiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, jwtErr := utils.CreateJwtToken(
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		utils.GetJwtKey(),
		jwtExpiration,
	)
	if jwtErr != nil {
		errors = append(errors, jwtErr)
		return nil, errors
	}

	return &models.LoginResponse{
		User:  *user.ToUserResponse(),
		Token: token,
	}, nil
}

func (as *AuthenticationService) CheckIfUserExists(email string) bool {
	return as.authRepo.CheckIfUserExists(email) != nil
}

func (as *AuthenticationService) GetAllUsersWithPagination(page, size int) (*models.GetUsersResponse, []error) {
	var errors []error
	if page < 1 || size < 1 {
		log.Println("Invalid page or size")
		errors = append(errors, errs.ErrInvalidPageOrSize)
		return nil, errors
	}
	offset := (page - 1) * size
	return as.authRepo.GetAllUsersWithPagination(page, size, offset)
}

// GetOwnProfile includes the email, which never leaves through UserResponse.
func (as *AuthenticationService) GetOwnProfile(userID uint) (*models.ProfileResponse, []error) {
	user, err := as.authRepo.FindUserByID(userID)
	if err != nil {
		return nil, []error{err}
	}
	return user.ToProfileResponse(), nil
}

func (as *AuthenticationService) GetSingleUser(id int) (*models.UserResponse, []error) {
	user, err := as.authRepo.FindUserByID(uint(id))
	if err != nil {
		return nil, []error{err}
	}
	return user.ToUserResponse(), nil
}

func (as *AuthenticationService) UpdateProfilePhoto(userID uint, url string) []error {
	if err := as.authRepo.UpdateUserProfilePhoto(userID, url); err != nil {
		return []error{err}
	}
	return nil
}
