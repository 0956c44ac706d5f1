package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"opentrip/internal/domain"
	"opentrip/internal/http/middleware"
)

// AuthUser is the credential-free user payload returned by auth endpoints.
type AuthUser struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Active   bool   `json:"is_active"`
}

func authUserFrom(u domain.User) AuthUser {
	return AuthUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Active:   u.Active,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// POST /api/auth/register
func (a API) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if req.Username == "" || req.Email == "" {
		RespondError(c, http.StatusBadRequest, "username dan email wajib diisi", nil)
		return
	}
	if len(req.Password) < 6 {
		RespondError(c, http.StatusBadRequest, "password minimal 6 karakter", nil)
		return
	}

	if _, err := a.findUser(req.Username, req.Email); err == nil {
		RespondError(c, http.StatusBadRequest, "username atau email sudah terdaftar", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal meng-hash password", err)
		return
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.Users.Save(user.ID, user); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registrasi berhasil",
		"user":    authUserFrom(user),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (a API) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := a.findUser(req.Username, req.Username)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "username atau password salah", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "username atau password salah", nil)
		return
	}
	if !user.Active {
		RespondError(c, http.StatusForbidden, "akun tidak aktif", nil)
		return
	}

	ttl := a.Env.TokenTTL
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     user.Username,
		"user_id": user.ID,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	tokenString, err := token.SignedString([]byte(a.Env.JWTSecret))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      tokenString,
		"token_type": "bearer",
		"expires_in": int64(ttl.Seconds()),
		"user":       authUserFrom(user),
	})
}

// GET /api/auth/me
func (a API) Me(c *gin.Context) {
	rc, ok := middleware.GetAuthUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "token tidak valid", nil)
		return
	}
	user, err := a.findUser(rc.Username, rc.Username)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, authUserFrom(user))
}

// findUser scans the keyed store by username or email; there is no
// secondary index in the storage contract.
func (a API) findUser(username, email string) (domain.User, error) {
	users, err := a.Users.List()
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "user"}
}
