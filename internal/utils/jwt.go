package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "AT-service"
	tokenAudience = "automic-template"
)

// JWTMaker erstellt und verifiziert HS256-signierte Access-Tokens. Die
// Session-Gültigkeit wird nicht hier geprüft, sondern gegen Redis (jti).
type JWTMaker struct {
	secret []byte
}

func NewJWTMaker(secret string) (*JWTMaker, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT-Secret muss mindestens 32 Zeichen haben, hat %d", len(secret))
	}
	return &JWTMaker{secret: []byte(secret)}, nil
}

// CreateToken erstellt ein Access-Token mit sub/email/jti und der gegebenen
// Lebensdauer.
func (m *JWTMaker) CreateToken(userID, email, sessionID string, duration time.Duration) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"iss":   tokenIssuer,
		"aud":   tokenAudience,
		"sub":   userID,
		"email": email,
		"jti":   sessionID,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("Token signieren: %w", err)
	}

	return signed, nil
}

type TokenPayload struct {
	UserID    string
	Email     string
	JTI       string
	ExpiresAt time.Time
}

// VerifyToken prüft Signatur, Ablauf, Issuer und Audience und liefert die
// Claims zurück. Jeder Fehler bedeutet: Token ungültig oder abgelaufen.
func (m *JWTMaker) VerifyToken(tokenString string) (*TokenPayload, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unerwartete Signaturmethode: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("Token-Verifikation fehlgeschlagen: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("Token-Claims unlesbar")
	}

	userID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	jti, _ := claims["jti"].(string)

	var exp time.Time
	if expClaim, err := claims.GetExpirationTime(); err == nil && expClaim != nil {
		exp = expClaim.Time
	}

	if userID == "" || jti == "" {
		return nil, fmt.Errorf("Token ohne sub/jti")
	}

	return &TokenPayload{
		UserID:    userID,
		Email:     email,
		JTI:       jti,
		ExpiresAt: exp,
	}, nil
}
