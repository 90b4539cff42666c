package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore guarda un objeto JSON clave→valor en disco, como un almacenamiento
// clave-valor local. Solo se usa la clave del token; las demás claves se preservan.
type FileStore struct {
	mu     sync.Mutex
	path   string
	key    string
	sealer *Sealer // nil = texto plano
}

// NewFileStore crea el driver. El archivo se crea en el primer Set.
func NewFileStore(path, key string, sealer *Sealer) *FileStore {
	return &FileStore{path: path, key: key, sealer: sealer}
}

// Get devuelve "" si el archivo o la clave no existen.
func (s *FileStore) Get(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", err
	}
	v := data[s.key]
	if v == "" || s.sealer == nil {
		return v, nil
	}
	token, err := s.sealer.Open(v)
	if err != nil {
		return "", fmt.Errorf("tokenstore: abrir token: %w", err)
	}
	return token, nil
}

func (s *FileStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	v := token
	if s.sealer != nil {
		if v, err = s.sealer.Seal(token); err != nil {
			return fmt.Errorf("tokenstore: sellar token: %w", err)
		}
	}
	data[s.key] = v
	return s.write(data)
}

func (s *FileStore) Delete(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := data[s.key]; !ok {
		return nil
	}
	delete(data, s.key)
	return s.write(data)
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tokenstore: leer %s: %w", s.path, err)
	}
	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("tokenstore: archivo corrupto %s: %w", s.path, err)
	}
	return data, nil
}

// write reemplaza el archivo de forma atómica (temporal + rename), permisos 0600.
func (s *FileStore) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("tokenstore: serializar: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("tokenstore: crear directorio: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".storage-*")
	if err != nil {
		return fmt.Errorf("tokenstore: crear temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("tokenstore: escribir: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("tokenstore: permisos: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tokenstore: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("tokenstore: reemplazar %s: %w", s.path, err)
	}
	return nil
}
