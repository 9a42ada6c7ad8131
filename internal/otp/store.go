package otp

import (
	"context"
	"sync"
	"time"
)

// CodeStore guarda códigos de verificação de uso único com expiração.
// Verify consome o código quando ele confere.
type CodeStore interface {
	Set(ctx context.Context, identifier, code string, ttl time.Duration) error
	Verify(ctx context.Context, identifier, code string) (bool, error)
}

// MemoryStore é o armazenamento padrão: um mapa local ao processo com
// expiração. Não sobrevive a restart nem é compartilhado entre
// instâncias — papel apenas consultivo; para múltiplos processos use o
// RedisStore.
type MemoryStore struct {
	mu    sync.Mutex
	codes map[string]memoryEntry
}

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{codes: make(map[string]memoryEntry)}
	go s.janitor()
	return s
}

func (s *MemoryStore) Set(_ context.Context, identifier, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[identifier] = memoryEntry{
		code:      code,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Verify(_ context.Context, identifier, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[identifier]
	if !ok {
		return false, nil
	}

	if time.Now().After(entry.expiresAt) {
		delete(s.codes, identifier)
		return false, nil
	}

	if entry.code != code {
		return false, nil
	}

	delete(s.codes, identifier)
	return true, nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		s.mu.Lock()
		for id, entry := range s.codes {
			if now.After(entry.expiresAt) {
				delete(s.codes, id)
			}
		}
		s.mu.Unlock()
	}
}
