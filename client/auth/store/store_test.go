package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/viant/scy/kms/blowfish"
)

func TestKind_Key(t *testing.T) {
	assert.Equal(t, "accessToken", Access.Key())
	assert.Equal(t, "refreshToken", Refresh.Key())
}

func TestStores(t *testing.T) {
	ctx := context.Background()
	var testCases = []struct {
		description string
		newStore    func(t *testing.T) Store
	}{
		{
			description: "memory",
			newStore:    func(t *testing.T) Store { return NewMemoryStore() },
		},
		{
			description: "file",
			newStore: func(t *testing.T) Store {
				s, err := NewFileStore(ctx, filepath.Join(t.TempDir(), "session.json"))
				require.NoError(t, err)
				return s
			},
		},
		{
			description: "secret",
			newStore: func(t *testing.T) Store {
				s, err := NewSecretStore(ctx, filepath.Join(t.TempDir(), "session.enc"), "")
				require.NoError(t, err)
				return s
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			s := testCase.newStore(t)

			_, ok := s.Get(Access)
			assert.False(t, ok, "empty store")

			require.NoError(t, s.Set(Access, "X"))
			require.NoError(t, s.Set(Access, "X"))
			value, ok := s.Get(Access)
			assert.True(t, ok)
			assert.Equal(t, "X", value)

			require.NoError(t, s.Set(Access, "Y"))
			value, _ = s.Get(Access)
			assert.Equal(t, "Y", value, "last write wins")

			require.NoError(t, s.Set(Refresh, "R1"))
			require.NoError(t, s.Clear(Access))
			_, ok = s.Get(Access)
			assert.False(t, ok, "cleared")
			value, ok = s.Get(Refresh)
			assert.True(t, ok, "kinds are independent")
			assert.Equal(t, "R1", value)

			require.NoError(t, s.Set(Access, ""))
			_, ok = s.Get(Access)
			assert.False(t, ok, "empty value is absent")

			require.NoError(t, ClearAll(s))
			_, ok = s.Get(Refresh)
			assert.False(t, ok)
		})
	}
}

type failingPersister struct {
	saves int
}

func (f *failingPersister) load(ctx context.Context) (*Snapshot, error) {
	return nil, nil
}

func (f *failingPersister) save(ctx context.Context, snapshot *Snapshot) error {
	f.saves++
	return errors.New("disk full")
}

func TestPersistentStore_SaveFailure(t *testing.T) {
	persister := &failingPersister{}
	s := &persistentStore{snapshot: Snapshot{AccessToken: "A1", RefreshToken: "R1"}, persister: persister}

	assert.Error(t, s.Set(Access, "A2"))
	assert.Error(t, s.Clear(Refresh))
	assert.Equal(t, 2, persister.saves)

	access, _ := s.Get(Access)
	assert.Equal(t, "A1", access, "unsaved write is not visible")
	refresh, ok := s.Get(Refresh)
	assert.True(t, ok)
	assert.Equal(t, "R1", refresh)
}

func TestFileStore_Reload(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "session.json")

	first, err := NewFileStore(ctx, location)
	require.NoError(t, err)
	require.NoError(t, first.Set(Access, "A1"))
	require.NoError(t, first.Set(Refresh, "R1"))

	second, err := NewFileStore(ctx, location)
	require.NoError(t, err)
	access, _ := second.Get(Access)
	refresh, _ := second.Get(Refresh)
	assert.Equal(t, "A1", access)
	assert.Equal(t, "R1", refresh)
}

func TestFileStore_Corrupted(t *testing.T) {
	location := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(location, []byte("{not json"), 0o600))
	_, err := NewFileStore(context.Background(), location)
	assert.Error(t, err)
}

func TestSecretStore_Reload(t *testing.T) {
	ctx := context.Background()
	location := filepath.Join(t.TempDir(), "session.enc")

	first, err := NewSecretStore(ctx, location, DefaultSecretKey)
	require.NoError(t, err)
	require.NoError(t, first.Set(Access, "A1"))
	require.NoError(t, first.Set(Refresh, "refresh-credential-value"))

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "refresh-credential-value", "credentials are encrypted at rest")

	second, err := NewSecretStore(ctx, location, DefaultSecretKey)
	require.NoError(t, err)
	refresh, ok := second.Get(Refresh)
	assert.True(t, ok)
	assert.Equal(t, "refresh-credential-value", refresh)
}

func TestTokenSource(t *testing.T) {
	s := NewMemoryStore()
	_, err := TokenSource(s).Token()
	assert.ErrorIs(t, err, ErrNoAccessToken)

	s = NewMemoryStore(WithCredentials("A", "R"))
	token, err := TokenSource(s).Token()
	require.NoError(t, err)
	assert.Equal(t, "A", token.AccessToken)
	assert.Equal(t, "R", token.RefreshToken)
	assert.True(t, token.Valid())
}
