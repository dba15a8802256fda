// Package jwt emite y valida los bearer tokens de la aplicación (HS256).
package jwt

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar más la lista de roles de la cuenta, para
// que el gate de autorización decida sin consultar la DB en cada chequeo.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Service firma y valida tokens con una clave derivada una sola vez del
// secreto configurado.
type Service struct {
	key    []byte
	issuer string
	ttl    time.Duration
}

// NewService deriva la clave de firma: si el secreto es base64 válido se usa
// decodificado; si no, los bytes crudos son la clave. Este doble modo debe
// preservarse tal cual, la compatibilidad de tokens ya emitidos depende de él.
func NewService(secret, issuer string, expMinutes int) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	key := []byte(secret)
	if decoded, err := base64.StdEncoding.DecodeString(secret); err == nil {
		key = decoded
	}
	return &Service{
		key:    key,
		issuer: issuer,
		ttl:    time.Duration(expMinutes) * time.Minute,
	}, nil
}

// Generate emite un token compacto firmado con subject=username, issuer,
// issued-at, expiración y el claim de roles.
func (s *Service) Generate(username string, roles []string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Roles: roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.key)
}

// Validate verifica firma y expiración. Falla cerrado: cualquier error de
// parseo, firma o expiración devuelve false, nunca propaga.
func (s *Service) Validate(tokenString string) bool {
	_, err := s.parse(tokenString)
	return err == nil
}

// Username devuelve el subject del token. Asume un Validate previo exitoso.
func (s *Service) Username(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	sub, _ := claims.GetSubject()
	return sub, nil
}

// Roles devuelve el claim de roles del token. Un claim malformado o ausente
// produce un conjunto vacío en lugar de fallar.
func (s *Service) Roles(tokenString string) []string {
	claims, err := s.parse(tokenString)
	if err != nil {
		return []string{}
	}
	raw, ok := claims["roles"].([]interface{})
	if !ok {
		return []string{}
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if name, ok := r.(string); ok {
			roles = append(roles, name)
		}
	}
	return roles
}

// parse usa MapClaims para que un claim de roles malformado no invalide un
// token con firma y expiración correctas.
func (s *Service) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
