package langlist

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Language is one judge-executable language. IDs belong to the judge's
// catalog and are opaque to this service.
type Language struct {
	ID      int    `toml:"id" json:"id"`
	Name    string `toml:"name" json:"name"`
	Monaco  string `toml:"monaco" json:"monaco"` // editor syntax id
	Enabled bool   `toml:"enabled" json:"enabled"`
}

//go:embed languages.toml
var catalogToml []byte

var (
	loadOnce sync.Once
	catalog  []Language
	loadErr  error
)

func load() {
	var file struct {
		Languages []Language `toml:"languages"`
	}
	if err := toml.Unmarshal(catalogToml, &file); err != nil {
		loadErr = fmt.Errorf("failed to parse embedded language catalog: %w", err)
		return
	}
	catalog = file.Languages
}

// ListLanguages returns every enabled language in catalog order.
func ListLanguages() ([]Language, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return nil, loadErr
	}
	res := make([]Language, 0, len(catalog))
	for _, l := range catalog {
		if l.Enabled {
			res = append(res, l)
		}
	}
	return res, nil
}

func GetLanguageByID(id int) (Language, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return Language{}, loadErr
	}
	for _, l := range catalog {
		if l.ID == id && l.Enabled {
			return l, nil
		}
	}
	return Language{}, ErrInvalidLanguage()
}
