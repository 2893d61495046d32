package service

import (
	"encoding/json"

	"relationship_mojo_backend/internal/model"
	"relationship_mojo_backend/internal/repository"
	"relationship_mojo_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateDemographics replaces the user's stored demographics. All fields
// are optional; absent fields are simply omitted from the analysis input.
func (s *UserService) UpdateDemographics(userID uint, demographics model.UserDemographics) error {
	payload, err := json.Marshal(demographics)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdateDemographics(userID, payload)
}

func (s *UserService) GetDemographics(userID uint) (model.UserDemographics, error) {
	var demographics model.UserDemographics

	user, err := s.GetUserByID(userID)
	if err != nil {
		return demographics, err
	}
	if len(user.Demographics) == 0 {
		return demographics, nil
	}
	if err := json.Unmarshal(user.Demographics, &demographics); err != nil {
		return demographics, err
	}
	return demographics, nil
}

func (s *UserService) UpdateProfile(userID uint, name string) (*model.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		user.Name = name
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) TouchLastSeen(userID uint) {
	_ = s.UserRepo.UpdateLastSeen(userID)
}
