package materialize

import (
	"io"
	"os"
	"path"
	"path/filepath"
)

// copyDir recursively copies src into dst, recording copied files in res
// relative to the destination root. rel is src's path relative to the
// template root.
func (m *Materializer) copyDir(src, dst, rel string, res *Result) error {
	srcInfo, err := m.Fs.Stat(src)
	if err != nil {
		return err
	}

	if err := m.Fs.MkdirAll(dst, srcInfo.Mode().Perm()|0700); err != nil {
		return err
	}

	f, err := m.Fs.Open(src)
	if err != nil {
		return err
	}
	entries, err := f.Readdir(-1)
	f.Close()
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		relPath := path.Join(rel, entry.Name())

		if entry.IsDir() {
			if err := m.copyDir(srcPath, dstPath, relPath, res); err != nil {
				return err
			}
			continue
		}

		if err := m.copyFile(srcPath, dstPath); err != nil {
			return err
		}
		res.Files = append(res.Files, relPath)
	}

	return nil
}

// copyFile copies a single file byte-for-byte, preserving its permission
// bits and replacing any existing file at dst.
func (m *Materializer) copyFile(src, dst string) error {
	in, err := m.Fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := m.Fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	// OpenFile only applies the mode when it creates the file.
	return m.Fs.Chmod(dst, info.Mode().Perm())
}
