package use_cases

import (
	"context"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

var _ cache.SessionStore = (*MockCache)(nil)

// MockCache implementiert cache.SessionStore über Funktionsfelder; nicht
// gesetzte Felder verhalten sich wie ein leerer Cache.
type MockCache struct {
	GetJSONFn       func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	SetJSONFn       func(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	DelFn           func(ctx context.Context, keys ...string) error
	AddToSetFn      func(ctx context.Context, key string, members ...string) *app_errors.AppError
	RemoveFromSetFn func(ctx context.Context, key string, members ...string) *app_errors.AppError
	SetMembersFn    func(ctx context.Context, key string) ([]string, *app_errors.AppError)

	GetCalled        int
	SetCalled        int
	DelCalled        int
	AddCalled        int
	RemoveCalled     int
	MembersCalled    int
	LastSetKey       string
	LastDeletedKeys  []string
	LastAddedMembers []string
}

func (m *MockCache) GetJSON(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	m.GetCalled++
	if m.GetJSONFn == nil {
		return false, nil
	}
	return m.GetJSONFn(ctx, key, dest)
}

func (m *MockCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError {
	m.SetCalled++
	m.LastSetKey = key
	if m.SetJSONFn == nil {
		return nil
	}
	return m.SetJSONFn(ctx, key, value, ttl)
}

func (m *MockCache) Del(ctx context.Context, keys ...string) error {
	m.DelCalled++
	m.LastDeletedKeys = append(m.LastDeletedKeys, keys...)
	if m.DelFn == nil {
		return nil
	}
	return m.DelFn(ctx, keys...)
}

func (m *MockCache) AddToSet(ctx context.Context, key string, members ...string) *app_errors.AppError {
	m.AddCalled++
	m.LastAddedMembers = append(m.LastAddedMembers, members...)
	if m.AddToSetFn == nil {
		return nil
	}
	return m.AddToSetFn(ctx, key, members...)
}

func (m *MockCache) RemoveFromSet(ctx context.Context, key string, members ...string) *app_errors.AppError {
	m.RemoveCalled++
	if m.RemoveFromSetFn == nil {
		return nil
	}
	return m.RemoveFromSetFn(ctx, key, members...)
}

func (m *MockCache) SetMembers(ctx context.Context, key string) ([]string, *app_errors.AppError) {
	m.MembersCalled++
	if m.SetMembersFn == nil {
		return []string{}, nil
	}
	return m.SetMembersFn(ctx, key)
}
