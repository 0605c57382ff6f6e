package mock

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/viant/clinic/schema"
)

const accessTokenType = "access_token"

// Claims are carried by issued access tokens.
type Claims struct {
	Email string      `json:"email"`
	Role  schema.Role `json:"role"`
	Type  string      `json:"typ"`
	jwt.RegisteredClaims
}

func (s *Service) createAccessToken(user *schema.User) (string, error) {
	now := s.now()
	claims := &Claims{
		Email: user.Email,
		Role:  user.Role,
		Type:  accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.AccessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// ParseAccess validates an access token and returns its claims.
func (s *Service) ParseAccess(tokenString string) (*Claims, error) {
	if revoked, _ := s.revoked.Get(tokenString); revoked {
		return nil, errors.New("token revoked")
	}
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}
	if claims.Type != accessTokenType {
		return nil, fmt.Errorf("unexpected token type: %v", claims.Type)
	}
	return claims, nil
}
