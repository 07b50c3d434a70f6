// Package files guarda los adjuntos de las notas en disco, fuera del
// snapshot JSON. La referencia interna es un nombre UUID; el nombre original
// vive en la entidad.
package files

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/delp/portal-notas-api/internal/application/ports"
	"github.com/delp/portal-notas-api/internal/domain"
)

// Verificar en tiempo de compilación que DiskStorage implementa FileStorage.
var _ ports.FileStorage = (*DiskStorage)(nil)

// DiskStorage almacenamiento de adjuntos bajo un directorio raíz.
type DiskStorage struct {
	dir string
}

// NewDiskStorage crea el directorio si no existe.
func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("files: crear directorio %s: %w", dir, err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Save persiste el contenido bajo un nombre UUID (conservando la extensión
// original) y devuelve esa referencia.
func (s *DiskStorage) Save(fileName string, r io.Reader) (string, error) {
	ref := uuid.New().String() + filepath.Ext(fileName)
	dst, err := os.Create(filepath.Join(s.dir, ref))
	if err != nil {
		return "", fmt.Errorf("files: crear adjunto: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("files: escribir adjunto: %w", err)
	}
	return ref, nil
}

// Open abre un adjunto por su referencia. La referencia se reduce a su base
// para que nunca escape del directorio raíz.
func (s *DiskStorage) Open(ref string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("files: abrir adjunto %s: %w", ref, err)
	}
	return f, nil
}

// Zip empaqueta varios adjuntos en un ZIP en memoria. Entradas cuya
// referencia no existe se omiten; nombres repetidos reciben un sufijo.
func (s *DiskStorage) Zip(entries []ports.ZipEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	seen := make(map[string]int)

	for _, e := range entries {
		src, err := s.Open(e.Ref)
		if err != nil {
			continue
		}
		name := e.Name
		if n := seen[name]; n > 0 {
			ext := filepath.Ext(name)
			name = fmt.Sprintf("%s_%d%s", name[:len(name)-len(ext)], n+1, ext)
		}
		seen[e.Name]++

		w, err := zw.Create(name)
		if err != nil {
			src.Close()
			return nil, fmt.Errorf("files: crear entrada ZIP %s: %w", name, err)
		}
		if _, err := io.Copy(w, src); err != nil {
			src.Close()
			return nil, fmt.Errorf("files: copiar adjunto al ZIP: %w", err)
		}
		src.Close()
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("files: cerrar ZIP: %w", err)
	}
	return buf.Bytes(), nil
}
