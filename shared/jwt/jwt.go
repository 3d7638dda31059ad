package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/coursehub/forumtree/shared/domain"
	internal_errors "github.com/coursehub/forumtree/shared/errors"
	"github.com/coursehub/forumtree/shared/logger"
	"github.com/golang-jwt/jwt/v5"
)

type JwtService interface {
	NewToken(sess domain.Session) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
	Session(jwtStr string) (*domain.Session, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(sess domain.Session) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = sess.UserId
	claims["role"] = sess.Role
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("cannot sign token", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("token rejected", "error", err)
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	if !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	return token, nil
}

// Session decodes jwtStr into the acting user. The raw token is kept so it
// can be forwarded to the backend.
func (j *Jwt) Session(jwtStr string) (*domain.Session, error) {
	token, err := j.DecodeToken(jwtStr)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	var uid domain.UserId
	switch v := claims["uid"].(type) {
	case string:
		uid = domain.UserId(v)
	case float64:
		uid = domain.UserId(strconv.FormatInt(int64(v), 10))
	}
	if uid == "" {
		return nil, ErrInvalidClaims
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = domain.RoleStudent
	}

	return &domain.Session{UserId: uid, Role: role, Token: jwtStr}, nil
}

var ErrInvalidClaims = &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
