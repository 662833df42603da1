package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 60 * time.Minute

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleSignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "name, email and password are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}

	s.mu.Lock()
	if _, exists := s.users[req.Email]; exists {
		s.mu.Unlock()
		c.JSON(http.StatusBadRequest, gin.H{"detail": "User already exists"})
		return
	}
	u := user{id: uuid.NewString(), name: req.Name, email: req.Email, passwordHash: hash}
	s.users[req.Email] = u
	s.mu.Unlock()

	s.issueToken(c, u)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "email and password are required"})
		return
	}

	s.mu.Lock()
	u, exists := s.users[req.Email]
	s.mu.Unlock()

	if !exists || bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
		return
	}

	s.issueToken(c, u)
}

func (s *Server) issueToken(c *gin.Context, u user) {
	claims := jwt.MapClaims{
		"user_id": u.id,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// requireUser validates the bearer token and stores the resolved user in
// the request context.
func (s *Server) requireUser(c *gin.Context) {
	header := c.GetHeader("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		detail := "Invalid token"
		if err != nil && strings.Contains(err.Error(), "expired") {
			detail = "Token expired"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}
	userID, _ := claims["user_id"].(string)

	s.mu.Lock()
	var found *user
	for _, u := range s.users {
		if u.id == userID {
			u := u
			found = &u
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return
	}

	c.Set("user", *found)
	c.Next()
}
