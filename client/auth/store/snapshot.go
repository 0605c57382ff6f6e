package store

import (
	"context"
	"sync"
)

// Snapshot is the persisted form of the credential pair.
type Snapshot struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

func (s *Snapshot) get(kind Kind) string {
	switch kind {
	case Access:
		return s.AccessToken
	case Refresh:
		return s.RefreshToken
	}
	return ""
}

func (s *Snapshot) set(kind Kind, value string) {
	switch kind {
	case Access:
		s.AccessToken = value
	case Refresh:
		s.RefreshToken = value
	}
}

// persister loads and saves a whole snapshot.
type persister interface {
	load(ctx context.Context) (*Snapshot, error)
	save(ctx context.Context, snapshot *Snapshot) error
}

// persistentStore keeps the snapshot in memory and writes it through on every change.
type persistentStore struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	persister persister
}

func (p *persistentStore) init(ctx context.Context) error {
	snapshot, err := p.persister.load(ctx)
	if err != nil {
		return err
	}
	if snapshot != nil {
		p.snapshot = *snapshot
	}
	return nil
}

func (p *persistentStore) Get(kind Kind) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	value := p.snapshot.get(kind)
	return value, value != ""
}

func (p *persistentStore) Set(kind Kind, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	snapshot := p.snapshot
	snapshot.set(kind, value)
	if err := p.persister.save(context.Background(), &snapshot); err != nil {
		return err
	}
	p.snapshot = snapshot
	return nil
}

func (p *persistentStore) Clear(kind Kind) error {
	return p.Set(kind, "")
}
