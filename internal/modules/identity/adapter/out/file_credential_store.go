package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"notehub/internal/modules/identity/domain"
	identityout "notehub/internal/modules/identity/port/out"
	apperrors "notehub/internal/platform/errors"
)

type FileCredentialStore struct {
	path string
}

func NewFileCredentialStore(dataDir string) identityout.CredentialStore {
	return &FileCredentialStore{path: filepath.Join(dataDir, "identity.json")}
}

func (s *FileCredentialStore) Save(_ context.Context, user domain.User) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create identity dir: %w", err)
	}
	payload, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write identity: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) Load(_ context.Context) (domain.User, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.User{}, apperrors.ErrAuthRequired
		}
		return domain.User{}, fmt.Errorf("read identity: %w", err)
	}
	user := domain.User{}
	if err := json.Unmarshal(payload, &user); err != nil {
		return domain.User{}, fmt.Errorf("decode identity: %w", err)
	}
	if user.ID == "" {
		return domain.User{}, apperrors.ErrAuthRequired
	}
	return user, nil
}

func (s *FileCredentialStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear identity: %w", err)
	}
	return nil
}
