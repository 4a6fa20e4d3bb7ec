package huffman

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CompressFile compresses the text in src and writes the container to dst.
func CompressFile(src, dst string) error {
	text, err := readFile(src)
	if err != nil {
		return err
	}
	c, err := Compress(string(text))
	if err != nil {
		return errors.Wrapf(err, "compress %q", src)
	}
	return writeFileAtomic(dst, c.Bytes())
}

// DecompressFile decompresses the container in src and writes the text to
// dst.
func DecompressFile(src, dst string) error {
	data, err := readFile(src)
	if err != nil {
		return err
	}
	text, err := Decompress(data)
	if err != nil {
		return errors.Wrapf(err, "decompress %q", src)
	}
	return writeFileAtomic(dst, []byte(text))
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: errors.WithStack(err)}
	}
	return data, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so that path never holds a partial file.
func writeFileAtomic(path string, data []byte) error {
	fail := func(op string, err error) error {
		return &IOError{Op: op, Path: path, Err: errors.WithStack(err)}
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fail("create", err)
	}
	tmp := f.Name()
	needRemove := true
	defer func() {
		if needRemove {
			_ = os.Remove(tmp)
		}
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fail("write", err)
	}
	if err := f.Close(); err != nil {
		return fail("close", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return fail("chmod", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fail("rename", err)
	}
	needRemove = false
	return nil
}
