package lang

import (
	"github.com/smacker/go-tree-sitter/rust"
)

func init() {
	Languages["rust"] = &Language{
		Name:       "rust",
		Extensions: []string{".rs"},
		lang:       rust.GetLanguage(),
	}
}
