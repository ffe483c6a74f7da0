package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rental-project/rental-server/internal/logger"
	"github.com/rental-project/rental-server/internal/models"
)

// bcryptCost matches the salt rounds of the previous backend
const bcryptCost = 10

// UserStore is the subset of the user queries the handler needs
type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// NoteStore guards user deletion against still-assigned tasks
type NoteStore interface {
	UserHasNotes(ctx context.Context, userID uuid.UUID) (bool, error)
}

type UserHandler struct {
	users UserStore
	notes NoteStore
	log   logger.Logger
}

func NewUserHandler(users UserStore, notes NoteStore, log logger.Logger) *UserHandler {
	return &UserHandler{users: users, notes: notes, log: log}
}

// ListUsers returns all users without password hashes.
// An empty table is answered with 400, not an empty array: the SPA client
// depends on this convention, so it is kept on purpose.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Error("failed to list users", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if len(users) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nie znaleziono użytkowników."})
		return
	}

	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Username       string   `json:"username" binding:"required"`
	Password       string   `json:"password" binding:"required"`
	Roles          []string `json:"roles" binding:"required,min=1"`
	Name           string   `json:"name" binding:"required"`
	Surname        string   `json:"surname" binding:"required"`
	DateOfBirth    string   `json:"dateOfBirth" binding:"required"`
	Nationality    string   `json:"nationality" binding:"required"`
	Address        string   `json:"address" binding:"required"`
	Gender         string   `json:"gender" binding:"required"`
	PhoneNumber    string   `json:"phoneNumber" binding:"required"`
	ProfilePicture string   `json:"profilePicture" binding:"required"`
}

// CreateUser registers a new account. The profile fields are validated but
// only username, password hash and roles are persisted at creation; the
// profile is filled in later through update. Inherited behavior.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wszystkie pola są wymagane."})
		return
	}

	ctx := c.Request.Context()

	if _, err := h.users.GetUserByUsername(ctx, req.Username); err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "Zduplikowano nazwę użytkownika."})
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		h.log.Error("failed to check username", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.log.Error("failed to hash password", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user := &models.User{
		ID:       uuid.New(),
		Username: req.Username,
		Password: string(hash),
		Roles:    req.Roles,
	}
	if err := h.users.CreateUser(ctx, user); err != nil {
		h.log.Error("failed to create user", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Nowy użytkownik o nazwie: %s został utworzony.", req.Username),
	})
}

type updateUserRequest struct {
	ID             uuid.UUID `json:"id" binding:"required"`
	Username       string    `json:"username" binding:"required"`
	Roles          []string  `json:"roles" binding:"required,min=1"`
	Active         *bool     `json:"active" binding:"required"`
	Password       string    `json:"password"`
	Name           string    `json:"name" binding:"required"`
	Surname        string    `json:"surname" binding:"required"`
	DateOfBirth    string    `json:"dateOfBirth" binding:"required"`
	Nationality    string    `json:"nationality" binding:"required"`
	Address        string    `json:"address" binding:"required"`
	Gender         string    `json:"gender" binding:"required"`
	PhoneNumber    string    `json:"phoneNumber" binding:"required"`
	ProfilePicture string    `json:"profilePicture" binding:"required"`
}

// UpdateUser overwrites an existing account. The password is re-hashed only
// when a new one is supplied.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wszystkie pola poza hasłem są wymagane."})
		return
	}

	ctx := c.Request.Context()

	user, err := h.users.GetUserByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Użytkownik nie został znaleziony."})
			return
		}
		h.log.Error("failed to load user", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Updating a record to its own username is fine; colliding with a
	// different record is a conflict.
	if duplicate, err := h.users.GetUserByUsername(ctx, req.Username); err == nil {
		if duplicate.ID != req.ID {
			c.JSON(http.StatusConflict, gin.H{"message": "Zduplikowano nazwę użytkownika."})
			return
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		h.log.Error("failed to check username", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user.Username = req.Username
	user.Roles = req.Roles
	user.Active = *req.Active
	user.Name = req.Name
	user.Surname = req.Surname
	user.DateOfBirth = req.DateOfBirth
	user.Nationality = req.Nationality
	user.Address = req.Address
	user.Gender = req.Gender
	user.PhoneNumber = req.PhoneNumber
	user.ProfilePicture = req.ProfilePicture

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			h.log.Error("failed to hash password", logger.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		user.Password = string(hash)
	}

	if err := h.users.UpdateUser(ctx, user); err != nil {
		h.log.Error("failed to update user", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Użytkownik o nazwie: %s został zaktualizowany.", user.Username),
	})
}

type deleteUserRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// DeleteUser removes an account unless the task-tracking service still has
// notes assigned to it.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var req deleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Wymagane jest ID użytkownika."})
		return
	}

	ctx := c.Request.Context()

	hasNotes, err := h.notes.UserHasNotes(ctx, req.ID)
	if err != nil {
		h.log.Error("failed to check notes", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if hasNotes {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Użytkownik ma przypisane zadania!"})
		return
	}

	user, err := h.users.GetUserByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Użytkownik nie został znaleziony."})
			return
		}
		h.log.Error("failed to load user", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if err := h.users.DeleteUser(ctx, req.ID); err != nil {
		h.log.Error("failed to delete user", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, fmt.Sprintf(
		"Użytkownik: %s z ID %s został usunięty.", user.Username, user.ID,
	))
}
