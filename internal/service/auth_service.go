package service

import (
	"errors"
	"fmt"
	"time"
	"yalla-server/internal/common"
	"yalla-server/internal/config"
	"yalla-server/internal/consts"
	"yalla-server/internal/model"
	"yalla-server/internal/repository"
	"yalla-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *model.User
}

// Register 注册新用户。受 registration_enabled 开关控制。
func Register(input RegisterInput) (*model.User, error) {
	if !FeatureEnabled(consts.ConfigAllowRegister) {
		return nil, common.NewForbiddenError("注册功能暂时关闭")
	}

	if ok, msg := utils.ValidateUsername(input.Username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(input.Email); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(input.Password); !ok {
		return nil, common.NewValidationError(msg)
	}

	usernameTaken, err := repository.User.FieldExists(consts.UserFieldUsername, input.Username, nil)
	if err != nil {
		return nil, common.NewInternalError("注册失败")
	}
	if usernameTaken {
		return nil, common.NewConflictError("用户名已存在")
	}

	emailTaken, err := repository.User.FieldExists(consts.UserFieldEmail, input.Email, nil)
	if err != nil {
		return nil, common.NewInternalError("注册失败")
	}
	if emailTaken {
		return nil, common.NewConflictError("邮箱已被注册")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewInternalError("注册失败")
	}

	user := model.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashedPassword),
		Admin:    false,
		Status:   consts.UserStatusActive,
	}

	if err := repository.User.Create(&user); err != nil {
		return nil, common.NewInternalError("注册失败")
	}

	return &user, nil
}

// Login 用户名或邮箱登录。
// 封禁用户拒绝登录并返回封禁原因；停用账号同样拒绝。
func Login(userInput string, password string) (*LoginResult, error) {
	user, err := repository.User.FindByUsernameOrEmail(userInput)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError("用户名或密码错误")
		}
		return nil, common.NewInternalError("登录失败")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, common.NewUnauthorizedError("用户名或密码错误")
	}

	if user.Status == consts.UserStatusBanned {
		reason := consts.DefaultBanReason
		if user.BanReason != nil && *user.BanReason != "" {
			reason = *user.BanReason
		}
		return nil, common.NewForbiddenError(fmt.Sprintf("账号已被封禁：%s", reason))
	}
	if user.Status == consts.UserStatusDeactivated {
		return nil, common.NewForbiddenError("账号已停用")
	}

	expiration := time.Duration(config.Get().JWT.ExpirationHours) * time.Hour
	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Admin, expiration)
	if err != nil {
		return nil, common.NewInternalError("登录失败")
	}

	return &LoginResult{Token: token, User: user}, nil
}

// CurrentUser 根据上下文中的用户 id 取当前用户快照。
func CurrentUser(userID uint) (*model.User, error) {
	user, err := repository.User.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("用户不存在")
		}
		return nil, common.NewInternalError("获取用户失败")
	}
	return user, nil
}
