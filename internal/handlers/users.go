package handlers

import (
	"net/http"

	"victory-pos/internal/models"
	"victory-pos/internal/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Role     models.Role `json:"role" binding:"required,oneof=SUPER_ADMIN OWNER ADMIN"`
	Password string      `json:"password"`
}

// ListUsers returns operator accounts without password material.
func (a *API) ListUsers(c *gin.Context) {
	users := a.Store.Snapshot().Users
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Redacted())
	}
	c.JSON(http.StatusOK, out)
}

func (a *API) AddUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user, err := a.Store.AddUser(store.UserInput{
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hashed),
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user.Redacted())
}

// UpdateUser replaces an account. An empty password keeps the current one.
func (a *API) UpdateUser(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	input := store.UserInput{Name: req.Name, Email: req.Email, Role: req.Role}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		input.PasswordHash = string(hashed)
	}

	user, err := a.Store.UpdateUser(c.Param("id"), input)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user.Redacted())
}

func (a *API) DeleteUser(c *gin.Context) {
	if err := a.Store.DeleteUser(c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
