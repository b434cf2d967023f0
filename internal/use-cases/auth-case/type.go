package auth_case

import "fmt"

// SessionTracker ist der Redis-Wert hinter session:{jti}: die serverseitig
// verfolgte Sitzung. Token und RefreshToken zeigen immer auf die zuletzt
// ausgegebenen Werte; ältere Access-Tokens fallen damit beim Abgleich im
// Auth-Gate durch.
type SessionTracker struct {
	JTI          string `json:"jti"`
	UserID       string `json:"user_id"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	Device       string `json:"device"`
	UserAgent    string `json:"user_agent"`
	IP           string `json:"ip"`
	LoginAt      string `json:"login_at"`
}

func SessionKey(jti string) string {
	return fmt.Sprintf("session:%s", jti)
}

func UserSessionsKey(userID string) string {
	return fmt.Sprintf("user_sessions:%s", userID)
}

func RefreshKey(token string) string {
	return fmt.Sprintf("refresh:%s", token)
}
