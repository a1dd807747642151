package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
//
// Every file is first staged next to its destination and renamed into
// place only once all of them were written, so a failed write leaves the
// directory as it was.
func WriteFiles(files []*GeneratedFile, outputDir string) error {
	for _, file := range files {
		if file.Filename == "" || filepath.Base(file.Filename) != file.Filename {
			return fmt.Errorf("invalid output file name %q", file.Filename)
		}
	}

	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		info, err := os.Stat(filepath.Join(outputDir, file.Filename))
		if err == nil && info.IsDir() {
			return fmt.Errorf("output path %s is a directory", file.Filename)
		}
	}

	staged := make([]string, 0, len(files))

	removeStaged := func(paths []string) {
		for _, p := range paths {
			_ = os.Remove(p)
		}
	}

	for _, file := range files {
		tmp, err := stageFile(outputDir, file)
		if err != nil {
			removeStaged(staged)
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}

		staged = append(staged, tmp)
	}

	for i, file := range files {
		err := os.Rename(staged[i], filepath.Join(outputDir, file.Filename))
		if err != nil {
			removeStaged(staged[i:])
			return fmt.Errorf("moving file %s into place: %w", file.Filename, err)
		}
	}

	return nil
}

// stageFile writes file to a temporary file in dir and returns its path.
func stageFile(dir string, file *GeneratedFile) (string, error) {
	tmp, err := os.CreateTemp(dir, "."+file.Filename+".*.tmp")
	if err != nil {
		return "", err
	}

	_, err = tmp.Write(file.Content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err == nil {
		err = os.Chmod(tmp.Name(), filePerm)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}
