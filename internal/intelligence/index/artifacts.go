package index

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// Artifact file names under the configured artifact directory.
const (
	LawsIndexFile  = "laws_tfidf_index.json"
	CasesIndexFile = "cases_tfidf_index.json"
	DictionaryFile = "legal_keywords_dict.json"
)

// Artifacts bundles everything the offline build produces.
type Artifacts struct {
	Laws       *Index
	Cases      *Index
	Dictionary Dictionary
}

// SaveArtifacts writes all three artifacts under dir.  Each file is written
// to a temp file first and renamed into place, so a concurrent reader never
// observes a half-written artifact.
func SaveArtifacts(dir string, a Artifacts) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, errors.ErrCodeArtifactWriteFailed, "creating artifact dir")
	}
	if err := writeJSON(filepath.Join(dir, LawsIndexFile), a.Laws); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(dir, CasesIndexFile), a.Cases); err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, DictionaryFile), a.Dictionary)
}

// LoadArtifacts reads all three artifacts from dir.
func LoadArtifacts(dir string) (Artifacts, error) {
	var a Artifacts
	if err := readJSON(filepath.Join(dir, LawsIndexFile), &a.Laws); err != nil {
		return Artifacts{}, err
	}
	if err := readJSON(filepath.Join(dir, CasesIndexFile), &a.Cases); err != nil {
		return Artifacts{}, err
	}
	if err := readJSON(filepath.Join(dir, DictionaryFile), &a.Dictionary); err != nil {
		return Artifacts{}, err
	}
	return a, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeArtifactWriteFailed, "encoding "+filepath.Base(path))
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeArtifactWriteFailed, "creating temp file")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeArtifactWriteFailed, "writing "+filepath.Base(path))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeArtifactWriteFailed, "closing temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeArtifactWriteFailed, "replacing "+filepath.Base(path))
	}
	return nil
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeArtifactReadFailed, "reading "+filepath.Base(path))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, errors.ErrCodeArtifactReadFailed, "decoding "+filepath.Base(path))
	}
	return nil
}
