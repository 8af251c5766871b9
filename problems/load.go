package problems

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// on-disk problem definition format
type tomlProblem struct {
	ID    string `toml:"id"`
	Title string `toml:"title"`

	Reference *struct {
		SrcCode string `toml:"src_code"`
		LangID  int    `toml:"lang_id"`
	} `toml:"reference"`

	Tests []struct {
		Input string `toml:"input"`
	} `toml:"tests"`
}

// LoadDir reads every *.toml problem definition in dir into the repo.
// File basename is the fallback problem id.
func LoadDir(repo *InMemRepo, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read problem dir: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		p, err := loadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return loaded, err
		}
		if p.ID == "" {
			p.ID = strings.TrimSuffix(entry.Name(), ".toml")
		}
		repo.Upsert(p)
		loaded++
	}
	return loaded, nil
}

func loadFile(path string) (Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Problem{}, fmt.Errorf("failed to read problem file: %w", err)
	}

	var def tomlProblem
	if err := toml.Unmarshal(raw, &def); err != nil {
		return Problem{}, ErrInvalidProblemFile().SetDebug(
			fmt.Errorf("%s: %w", path, err))
	}
	if len(def.Tests) == 0 {
		return Problem{}, ErrInvalidProblemFile().SetDebug(
			fmt.Errorf("%s: problem has no tests", path))
	}

	p := Problem{
		ID:    def.ID,
		Title: def.Title,
		Tests: make([]TestCase, len(def.Tests)),
	}
	for i, t := range def.Tests {
		p.Tests[i] = TestCase{Input: t.Input}
	}
	if def.Reference != nil {
		p.Reference = &Solution{
			SrcCode: def.Reference.SrcCode,
			LangID:  def.Reference.LangID,
		}
	}
	return p, nil
}
