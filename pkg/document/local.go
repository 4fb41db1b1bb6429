package document

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// LocalStore keeps documents as files below a base directory.
type LocalStore struct {
	basePath string
}

var _ Store = (*LocalStore)(nil)

// NewLocalStore creates the base directory if needed.
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, dirPerm); err != nil {
		return nil, errors.Wrap(err, "failed to create base directory")
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve absolute path")
	}

	return &LocalStore{basePath: absPath}, nil
}

// Save writes data atomically: it goes to a temporary file first and is renamed into place.
func (s *LocalStore) Save(_ context.Context, name string, data []byte) error {
	fullPath, err := s.fullPath(name)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrap(err, "failed to create directories")
	}

	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(fullPath)+"-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to write file")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to sync file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to close file")
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to set file mode")
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to move file into place")
	}

	return nil
}

func (s *LocalStore) Load(_ context.Context, name string) ([]byte, error) {
	fullPath, err := s.fullPath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrNotFound, name)
		}
		return nil, errors.Wrap(err, "failed to read file")
	}
	return data, nil
}

// Remove deletes a file or a whole directory.
func (s *LocalStore) Remove(_ context.Context, name string) error {
	fullPath, err := s.fullPath(name)
	if err != nil {
		return err
	}

	if _, err := os.Lstat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(ErrNotFound, name)
		}
		return errors.Wrap(err, "failed to stat file")
	}

	if err := os.RemoveAll(fullPath); err != nil {
		return errors.Wrap(err, "failed to delete")
	}
	return nil
}

func (s *LocalStore) Exists(_ context.Context, name string) (bool, error) {
	fullPath, err := s.fullPath(name)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateDir creates a directory. Without parents, the parent must exist and
// the directory itself must not.
func (s *LocalStore) CreateDir(_ context.Context, name string, parents bool) error {
	fullPath, err := s.fullPath(name)
	if err != nil {
		return err
	}

	if parents {
		err = os.MkdirAll(fullPath, dirPerm)
	} else {
		err = os.Mkdir(fullPath, dirPerm)
	}
	if err != nil {
		return errors.Wrap(err, "failed to create directory")
	}
	return nil
}

// BasePath returns the absolute base directory
func (s *LocalStore) BasePath() string {
	return s.basePath
}

// fullPath resolves name below the base directory
func (s *LocalStore) fullPath(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyName
	}
	if !filepath.IsLocal(name) {
		return "", errors.Wrap(ErrInvalidName, name)
	}
	return filepath.Join(s.basePath, name), nil
}
