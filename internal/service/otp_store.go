package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore guarda un código de verificación vigente por email, con expiración.
// La capacidad se inyecta en OTPService; nunca es un singleton de paquete.
type OTPStore interface {
	Put(email, value string, ttl time.Duration) error
	Get(email string) (string, bool, error)
	Delete(email string) error
}

type otpEntry struct {
	value     string
	expiresAt time.Time
}

type memoryOTPStore struct {
	mu    sync.Mutex
	items map[string]otpEntry
}

func NewMemoryOTPStore() OTPStore {
	return &memoryOTPStore{
		items: make(map[string]otpEntry),
	}
}

// Put sobrescribe cualquier código previo para el mismo email.
func (s *memoryOTPStore) Put(email, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if email == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	s.items[email] = otpEntry{
		value:     value,
		expiresAt: time.Now().UTC().Add(ttl),
	}
	return nil
}

func (s *memoryOTPStore) Get(email string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.items[email]
	if !ok {
		return "", false, nil
	}
	if time.Now().UTC().After(entry.expiresAt) {
		delete(s.items, email)
		return "", false, nil
	}
	return entry.value, true, nil
}

func (s *memoryOTPStore) Delete(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, email)
	return nil
}

type redisOTPStore struct {
	client redisKV
	prefix string
}

type redisKV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// NewRedisOTPStore permite compartir los códigos entre instancias del servicio.
func NewRedisOTPStore(client *redis.Client) OTPStore {
	if client == nil {
		return nil
	}
	return &redisOTPStore{
		client: client,
		prefix: "otp:code:",
	}
}

func (s *redisOTPStore) Put(email, value string, ttl time.Duration) error {
	if email == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Set(ctx, s.prefix+email, value, ttl).Err()
}

func (s *redisOTPStore) Get(email string) (string, bool, error) {
	if email == "" {
		return "", false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	val, err := s.client.Get(ctx, s.prefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *redisOTPStore) Delete(email string) error {
	if email == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+email).Err()
}
