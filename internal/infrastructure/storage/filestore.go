// Package storage implementa la persistencia del portal sobre un único
// snapshot JSON en disco (sin base de datos servidor). Un FileStore carga el
// snapshot al abrir y lo reescribe completo en cada mutación; los repositorios
// por entidad comparten el mismo store.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/pkg/logger"
)

// Snapshot estado completo persistido. Mapas por ID.
type Snapshot struct {
	Version   int                         `json:"version"`
	Invoices  map[string]*entity.Invoice  `json:"invoices"`
	Users     map[string]*entity.User     `json:"users"`
	Suppliers map[string]*entity.Supplier `json:"suppliers"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		Version:   1,
		Invoices:  map[string]*entity.Invoice{},
		Users:     map[string]*entity.User{},
		Suppliers: map[string]*entity.Supplier{},
		UpdatedAt: time.Now(),
	}
}

// FileStore snapshot en memoria + archivo JSON. Las operaciones son síncronas
// desde el punto de vista del caller; el mutex solo protege el proceso, no hay
// escritores concurrentes externos.
type FileStore struct {
	mu   sync.RWMutex
	path string
	snap *Snapshot
	log  *logger.Logger
}

// Open carga (o crea) el snapshot en path. Un archivo corrupto NO tumba la
// aplicación: se arranca con colecciones vacías y se deja rastro en el log
// para que el usuario restaure desde un backup.
func Open(path string, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio: %w", err)
	}

	fs := &FileStore{path: path, log: log}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		fs.snap = emptySnapshot()
		if err := fs.flushLocked(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("storage: leer snapshot: %w", err)
	default:
		var snap Snapshot
		if jsonErr := json.Unmarshal(raw, &snap); jsonErr != nil {
			log.Error().Err(jsonErr).Str("path", path).
				Msg("snapshot corrupto, iniciando con colecciones vacías; restaure desde backup")
			fs.snap = emptySnapshot()
		} else {
			normalize(&snap)
			fs.snap = &snap
		}
	}
	return fs, nil
}

// normalize garantiza mapas no-nil tras deserializar snapshots antiguos.
func normalize(s *Snapshot) {
	if s.Invoices == nil {
		s.Invoices = map[string]*entity.Invoice{}
	}
	if s.Users == nil {
		s.Users = map[string]*entity.User{}
	}
	if s.Suppliers == nil {
		s.Suppliers = map[string]*entity.Supplier{}
	}
}

// flushLocked escribe el snapshot a disco vía archivo temporal + rename,
// para no dejar un JSON truncado si el proceso muere a mitad de escritura.
// Requiere fs.mu tomado en escritura.
func (fs *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(fs.snap, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: serializar snapshot: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("storage: escribir snapshot: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("storage: reemplazar snapshot: %w", err)
	}
	return nil
}

func (fs *FileStore) withWrite(fn func(*Snapshot) error) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := fn(fs.snap); err != nil {
		return err
	}
	fs.snap.UpdatedAt = time.Now()
	return fs.flushLocked()
}

func (fs *FileStore) withRead(fn func(*Snapshot)) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	fn(fs.snap)
}

// ── BackupRepository ──────────────────────────────────────────────────────────

// ExportAll devuelve copias de todas las colecciones para el backup JSON.
func (fs *FileStore) ExportAll() (invoices []*entity.Invoice, users []*entity.User, suppliers []*entity.Supplier, err error) {
	fs.withRead(func(s *Snapshot) {
		for _, v := range s.Invoices {
			c := *v
			invoices = append(invoices, &c)
		}
		for _, v := range s.Users {
			c := *v
			users = append(users, &c)
		}
		for _, v := range s.Suppliers {
			c := *v
			suppliers = append(suppliers, &c)
		}
	})
	return invoices, users, suppliers, nil
}

// ReplaceAll reemplaza el estado completo (restore). No hay merge: lo que no
// venga en el documento deja de existir.
func (fs *FileStore) ReplaceAll(invoices []*entity.Invoice, users []*entity.User, suppliers []*entity.Supplier) error {
	return fs.withWrite(func(s *Snapshot) error {
		s.Invoices = map[string]*entity.Invoice{}
		s.Users = map[string]*entity.User{}
		s.Suppliers = map[string]*entity.Supplier{}
		for _, v := range invoices {
			c := *v
			s.Invoices[c.ID] = &c
		}
		for _, v := range users {
			c := *v
			s.Users[c.ID] = &c
		}
		for _, v := range suppliers {
			c := *v
			s.Suppliers[c.ID] = &c
		}
		return nil
	})
}
