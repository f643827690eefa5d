package controllers

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/ChurchCMS/initializers"
	"github.com/ChurchCMS/models"
	"github.com/ChurchCMS/services"

	"github.com/doug-martin/goqu/v9"
	"golang.org/x/crypto/bcrypt"
)

const tokenExpiry = 7 * 24 * time.Hour

func issueToken(user models.UserProfile) (string, error) {
	generateToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.User_Profile_ID,
		"email": user.Email,
		"role":  user.Role,
		"name":  user.DisplayName(),
		"exp":   time.Now().Add(tokenExpiry).Unix(),
	})
	return generateToken.SignedString([]byte(os.Getenv("SECRET")))
}

func Register(c *gin.Context) {
	var req models.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	emailCount, err := initializers.DB.From("user_profile").
		Select("email").
		Where(goqu.C("email").Eq(req.Email)).
		Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email"})
		return
	}
	if emailCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	now := time.Now()
	user := models.UserProfile{
		Email:           req.Email,
		Password:        string(passwordHash),
		First_Name:      req.FirstName,
		Last_Name:       req.LastName,
		Role:            "member",
		Datetime_Create: now,
		Datetime_Update: now,
	}

	var insertedID int
	_, err = initializers.DB.Insert("user_profile").
		Rows(user).
		Returning("user_profile_id").
		Executor().ScanVal(&insertedID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user.User_Profile_ID = insertedID

	token, err := issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user.Shape(),
	})
}

func Login(c *gin.Context) {
	var req models.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.UserProfile
	found, err := initializers.DB.From("user_profile").
		Select("*").
		Where(goqu.C("email").Eq(req.Email)).
		ScanStruct(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Shape(),
	})
}

func GetCurrentUser(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	c.JSON(http.StatusOK, gin.H{
		"user":  user.Shape(),
		"admin": c.MustGet("admin"),
	})
}

func generate6DigitCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// ForgotPassword emails a 6-digit reset code. The response never reveals
// whether the email exists.
func ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email address is required", "details": err.Error()})
		return
	}

	neutral := gin.H{"message": "If this email exists in our system, a verification code has been sent."}

	var user models.UserProfile
	found, err := initializers.DB.From("user_profile").
		Select("*").
		Where(goqu.C("email").Eq(req.Email)).
		ScanStruct(&user)
	if err != nil || !found {
		c.JSON(http.StatusOK, neutral)
		return
	}

	code, err := generate6DigitCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate verification code"})
		return
	}

	resetToken := models.PasswordResetToken{
		User_Profile_ID: user.User_Profile_ID,
		Code:            code,
		Expires_At:      time.Now().Add(15 * time.Minute),
		Used:            false,
	}

	insert := initializers.DB.Insert("password_reset_token").Rows(resetToken).Executor()
	if _, err := insert.Exec(); err != nil {
		log.Printf("Failed to store password reset token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process password reset request"})
		return
	}

	if err := services.GetEmailService().SendPasswordResetEmail(user.Email, code, user.First_Name); err != nil {
		log.Printf("Failed to send password reset email: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send verification email"})
		return
	}

	c.JSON(http.StatusOK, neutral)
}

// ResetPassword exchanges a valid, unexpired, unused code for a new password.
func ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, code and new password are required", "details": err.Error()})
		return
	}

	var user models.UserProfile
	found, err := initializers.DB.From("user_profile").
		Select("*").
		Where(goqu.C("email").Eq(req.Email)).
		ScanStruct(&user)
	if err != nil || !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or verification code"})
		return
	}

	var resetToken models.PasswordResetToken
	found, err = initializers.DB.From("password_reset_token").
		Select("*").
		Where(goqu.And(
			goqu.C("user_profile_id").Eq(user.User_Profile_ID),
			goqu.C("code").Eq(req.Code),
			goqu.C("used").Eq(false),
			goqu.C("expires_at").Gt(time.Now()),
		)).
		Order(goqu.I("expires_at").Desc()).
		ScanStruct(&resetToken)
	if err != nil || !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or verification code"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	_, err = initializers.DB.Update("user_profile").
		Set(goqu.Record{
			"password":        string(passwordHash),
			"datetime_update": time.Now(),
		}).
		Where(goqu.C("user_profile_id").Eq(user.User_Profile_ID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	_, err = initializers.DB.Update("password_reset_token").
		Set(goqu.Record{"used": true}).
		Where(goqu.C("password_reset_token_id").Eq(resetToken.Token_ID)).
		Executor().Exec()
	if err != nil {
		log.Printf("Failed to mark reset token used: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
}
