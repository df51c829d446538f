package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"somangchurch_backend/internals/features/users/auth/dto"
	"somangchurch_backend/internals/features/users/auth/model"
	"somangchurch_backend/internals/features/users/auth/service"
	helper "somangchurch_backend/internals/helpers"
	helperauth "somangchurch_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := ctrl.DB.Where("user_email = ?", req.UserEmail).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !user.UserIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := service.IssueAccessToken(user)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        dto.FromUserModel(user),
	})
}

/* ===================== REGISTER ===================== */
// POST /a/users
// Admin creates staff accounts; there is no self sign-up.
func (ctrl *AuthController) RegisterUser(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserEmail:        req.UserEmail,
		UserName:         req.UserName,
		UserPasswordHash: string(hash),
		UserRole:         req.UserRole,
		UserMinistryID:   req.UserMinistryID,
		UserIsActive:     true,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusConflict, "Email is already registered")
	}

	return helper.JsonCreated(c, "User created", dto.FromUserModel(user))
}

/* ===================== ME ===================== */
// GET /u/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.FromUserModel(user))
}

/* ===================== CHANGE PASSWORD ===================== */
// PUT /u/auth/password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helperauth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}

	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPasswordHash), []byte(req.CurrentPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password_hash", string(hash)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update password")
	}
	return helper.JsonUpdated(c, "Password updated", nil)
}

/* ===================== DEACTIVATE ===================== */
// DELETE /a/users/:id
func (ctrl *AuthController) DeactivateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}

	res := ctrl.DB.Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("user_is_active", false)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate user")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	return helper.JsonDeleted(c, "User deactivated", fiber.Map{"user_id": id})
}
