// Package archive extracts readable article content from arbitrary URLs
// and keeps the extracted text in a local content cache, so summarizing
// the same URL twice only hits the network once.
package archive

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dgraph-io/badger/v4"
)

// extract is what we keep per article id: the readable parts, not the
// full page.
type extract struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// Store caches extracted content in Badger, gzip-compressed. Keys are
// normalized article ids.
type Store struct {
	db *badger.DB
}

// OpenStore opens the content cache at path. An empty path opens an
// in-memory database, used by tests and by the one-shot CLI commands.
func OpenStore(path string) (*Store, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) get(id string) (extract, bool, error) {
	var compressed []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if err != nil {
			return err
		}
		compressed, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return extract{}, false, nil
	} else if err != nil {
		return extract{}, false, err
	}

	gz, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return extract{}, false, err
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return extract{}, false, err
	}

	var e extract
	if err := json.Unmarshal(raw, &e); err != nil {
		return extract{}, false, err
	}
	return e, true, nil
}

func (s *Store) set(id string, e extract) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(raw); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(id), buf.Bytes())
	})
}
