package service

import (
	"errors"

	"prompthub-go/internal/api/dto"
	"prompthub-go/internal/repository"

	"gorm.io/gorm"
)

var ErrNoFieldsToUpdate = errors.New("没有需要更新的字段")

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUser 根据 ID 获取用户信息
func (s *UserService) GetUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// UpdateProfile 更新用户资料（仅本人）
func (s *UserService) UpdateProfile(userID int64, req *dto.UserUpdateRequest) (*dto.UserInfo, error) {
	updates := make(map[string]interface{})
	if req.Username != nil {
		exists, err := s.userRepo.ExistsByUsername(*req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrUsernameExists
		}
		updates["user_name"] = *req.Username
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	user, err := s.userRepo.Update(userID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return toUserInfo(user), nil
}
