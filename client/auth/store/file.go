package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/afs"
)

// FileStore persists the credential pair as a JSON document at an afs URL
// (file://, mem:// or any registered storage). The document is read once on
// construction and rewritten on every Set or Clear.
type FileStore struct {
	persistentStore
}

type filePersister struct {
	fs  afs.Service
	URL string
}

func (f *filePersister) load(ctx context.Context) (*Snapshot, error) {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check credentials %v: %w", f.URL, err)
	}
	if !exists {
		return nil, nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials %v: %w", f.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	snapshot := &Snapshot{}
	if err = json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode credentials %v: %w", f.URL, err)
	}
	return snapshot, nil
}

func (f *filePersister) save(ctx context.Context, snapshot *Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write credentials %v: %w", f.URL, err)
	}
	return nil
}

// NewFileStore creates a store persisted at URL.
func NewFileStore(ctx context.Context, URL string) (*FileStore, error) {
	ret := &FileStore{}
	ret.persister = &filePersister{fs: afs.New(), URL: URL}
	if err := ret.init(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}
