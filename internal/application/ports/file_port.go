package ports

import "io"

// ZipEntry un adjunto a incluir en el paquete: nombre visible + referencia interna.
type ZipEntry struct {
	Name string
	Ref  string
}

// FileStorage puerto hacia el almacenamiento de adjuntos en disco.
type FileStorage interface {
	// Save persiste el contenido y devuelve la referencia interna (no el nombre original).
	Save(fileName string, r io.Reader) (ref string, err error)
	// Open abre un adjunto por su referencia interna.
	Open(ref string) (io.ReadCloser, error)
	// Zip empaqueta varios adjuntos en un único archivo ZIP.
	Zip(entries []ZipEntry) ([]byte, error)
}
