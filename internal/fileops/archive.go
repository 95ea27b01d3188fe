package fileops

import (
	"archive/tar"
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// archiveFormat names a supported container/compression layout.
type archiveFormat int

const (
	formatUnknown archiveFormat = iota
	formatZip
	formatTar
	formatTarGzip
	formatTarZstd
)

// UnpackArchive extracts the archive at path into extractTo, creating the
// destination directory if absent. The format is detected from file
// contents, with the file extension as fallback. Supported layouts: zip,
// tar, tar+gzip, tar+zstd.
func (m *Manager) UnpackArchive(ctx context.Context, path, extractTo string) error {
	const op = "unpack_archive"
	full := m.resolve(path)
	fullDest := m.resolve(extractTo)

	if m.Classify(path) != KindFile {
		return m.precondition(op, full, "archive does not exist")
	}

	format := detectFormat(full)
	if format == formatUnknown {
		return m.precondition(op, full, "unsupported archive format")
	}

	if err := os.MkdirAll(fullDest, 0o755); err != nil {
		return m.failure(op, fullDest, err)
	}

	var err error
	switch format {
	case formatZip:
		err = extractZip(ctx, full, fullDest)
	default:
		err = extractTar(ctx, full, fullDest, format)
	}
	if err != nil {
		return m.failure(op, full, err)
	}
	return nil
}

// detectFormat sniffs the archive layout from file contents, falling back
// to the extension when the bytes are inconclusive.
func detectFormat(path string) archiveFormat {
	if mtype, err := mimetype.DetectFile(path); err == nil {
		switch {
		case mtype.Is("application/zip"):
			return formatZip
		case mtype.Is("application/gzip"):
			return formatTarGzip
		case mtype.Is("application/zstd"):
			return formatTarZstd
		case mtype.Is("application/x-tar"):
			return formatTar
		}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return formatZip
	case ".tar":
		return formatTar
	case ".gz", ".tgz":
		return formatTarGzip
	case ".zst":
		return formatTarZstd
	default:
		return formatUnknown
	}
}

// extractZip unpacks a zip archive into dest.
func extractZip(ctx context.Context, archive, dest string) error {
	reader, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, file := range reader.File {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		destPath, err := entryPath(dest, file.Name)
		if err != nil {
			return err
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
			return err
		}

		src, err := file.Open()
		if err != nil {
			return err
		}
		err = writeEntry(destPath, src)
		src.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// extractTar unpacks a tar archive into dest, unwrapping the compression
// layer format indicates.
func extractTar(ctx context.Context, archive, dest string, format archiveFormat) error {
	file, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer file.Close()

	var tarReader *tar.Reader
	switch format {
	case formatTarGzip:
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			return err
		}
		defer gzReader.Close()
		tarReader = tar.NewReader(gzReader)
	case formatTarZstd:
		zstdReader, err := zstd.NewReader(file)
		if err != nil {
			return err
		}
		defer zstdReader.Close()
		tarReader = tar.NewReader(zstdReader)
	default:
		tarReader = tar.NewReader(file)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		header, err := tarReader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		destPath, err := entryPath(dest, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(destPath, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
				return err
			}
			if err := writeEntry(destPath, tarReader); err != nil {
				return err
			}
		}
	}
}

// entryPath joins an archive entry name onto dest, rejecting entries that
// escape the destination (zip-slip).
func entryPath(dest, name string) (string, error) {
	destPath := filepath.Join(dest, name)
	if destPath != filepath.Clean(dest) &&
		!strings.HasPrefix(destPath, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes destination", name)
	}
	return destPath, nil
}

// writeEntry streams src into a new file at path.
func writeEntry(path string, src io.Reader) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
