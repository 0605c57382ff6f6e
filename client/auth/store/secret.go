package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/scy"
)

// DefaultSecretKey is the scy kms key used when none is supplied.
const DefaultSecretKey = "blowfish://default"

// SecretStore persists the credential pair encrypted with a scy key.
type SecretStore struct {
	persistentStore
}

type secretPersister struct {
	fs       afs.Service
	secrets  *scy.Service
	resource *scy.Resource
}

func (s *secretPersister) load(ctx context.Context) (*Snapshot, error) {
	exists, err := s.fs.Exists(ctx, s.resource.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check credentials %v: %w", s.resource.URL, err)
	}
	if !exists {
		return nil, nil
	}
	secret, err := s.secrets.Load(ctx, s.resource)
	if err != nil {
		return nil, fmt.Errorf("failed to load credentials %v: %w", s.resource.URL, err)
	}
	snapshot := &Snapshot{}
	switch target := secret.Target.(type) {
	case *Snapshot:
		*snapshot = *target
	case Snapshot:
		*snapshot = target
	default:
		if err = json.Unmarshal([]byte(secret.String()), snapshot); err != nil {
			return nil, fmt.Errorf("failed to decode credentials %v: %w", s.resource.URL, err)
		}
	}
	return snapshot, nil
}

func (s *secretPersister) save(ctx context.Context, snapshot *Snapshot) error {
	secret := scy.NewSecret(snapshot, s.resource)
	if err := s.secrets.Store(ctx, secret); err != nil {
		return fmt.Errorf("failed to store credentials %v: %w", s.resource.URL, err)
	}
	return nil
}

// NewSecretStore creates a store persisted at URL, encrypted with key
// (DefaultSecretKey when empty). The kms implementation behind the key
// scheme must be registered by the caller, e.g. `_ "github.com/viant/scy/kms/blowfish"`.
func NewSecretStore(ctx context.Context, URL, key string) (*SecretStore, error) {
	if key == "" {
		key = DefaultSecretKey
	}
	ret := &SecretStore{}
	ret.persister = &secretPersister{
		fs:       afs.New(),
		secrets:  scy.New(),
		resource: scy.NewResource(&Snapshot{}, URL, key),
	}
	if err := ret.init(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}
