package auth_case

import (
	"context"
	"testing"
	"time"

	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
)

// Test devices come back newest first with the current one flagged
func TestListSessions_Success(t *testing.T) {
	ctx := context.Background()

	older := time.Now().Add(-2 * time.Hour).Format(time.RFC3339)
	newer := time.Now().Add(-5 * time.Minute).Format(time.RFC3339)

	trackers := map[string]*SessionTracker{
		SessionKey("jti-alt"): {JTI: "jti-alt", UserID: "user-1", Device: "Desktop", IP: "198.51.100.4", LoginAt: older},
		SessionKey("jti-neu"): {JTI: "jti-neu", UserID: "user-1", Device: "iPhone", IP: "203.0.113.9", LoginAt: newer},
	}
	sessions := &use_cases.MockCache{
		SetMembersFn: func(ctx context.Context, key string) ([]string, *app_errors.AppError) {
			return []string{"jti-alt", "jti-neu"}, nil
		},
		GetJSONFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
			if v, ok := dest.(*SessionTracker); ok {
				if tr, exists := trackers[key]; exists {
					*v = *tr
					return true, nil
				}
			}
			return false, nil
		},
	}

	service := &AuthService{sessions: sessions}

	resp, err := service.ListSessions(ctx, "user-1", "jti-neu")

	assert.Nil(t, err)
	assert.Len(t, resp, 2)

	assert.Equal(t, "jti-neu", resp[0].ID)
	assert.True(t, resp[0].Current)
	assert.Equal(t, "jti-alt", resp[1].ID)
	assert.False(t, resp[1].Current)
}

// Test expired sessions are pruned from the set instead of listed
func TestListSessions_PrunesExpired(t *testing.T) {
	ctx := context.Background()

	live := &SessionTracker{JTI: "jti-live", UserID: "user-1", Device: "Desktop", LoginAt: time.Now().Format(time.RFC3339)}
	sessions := &use_cases.MockCache{
		SetMembersFn: func(ctx context.Context, key string) ([]string, *app_errors.AppError) {
			return []string{"jti-live", "jti-abgelaufen"}, nil
		},
		GetJSONFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
			if v, ok := dest.(*SessionTracker); ok && key == SessionKey("jti-live") {
				*v = *live
				return true, nil
			}
			return false, nil
		},
	}

	service := &AuthService{sessions: sessions}

	resp, err := service.ListSessions(ctx, "user-1", "jti-live")

	assert.Nil(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "jti-live", resp[0].ID)
	assert.Equal(t, 1, sessions.RemoveCalled)
}
