// Package catalog holds the built-in ASTERIX category definitions used
// by the sample generator, the smoke tests, and a process's default
// registration set. Each category is assembled with the same
// schema.Category/ItemDef/ElementDef builders a hand-written schema
// loader would use, so this package doubles as a worked example of
// valid schema construction.
package catalog

import (
	"fmt"

	"github.com/asterixgo/codec/internal/registry"
	"github.com/asterixgo/codec/internal/schema"
)

func builders() map[uint8]func() schema.Category {
	return map[uint8]func() schema.Category{
		1:  cat01,
		2:  cat02,
		34: cat34,
		48: cat48,
		62: cat62,
	}
}

// Register installs the built-in categories named by cats into reg. With
// no cats given, all five built-in categories (CAT01, CAT02, CAT34,
// CAT48, CAT62) are registered. An unknown CAT number is an error.
func Register(reg *registry.Registry, cats ...uint8) error {
	all := builders()
	if len(cats) == 0 {
		for _, build := range all {
			if err := reg.Register(build()); err != nil {
				return err
			}
		}
		return nil
	}
	for _, cat := range cats {
		build, ok := all[cat]
		if !ok {
			return fmt.Errorf("catalog: no built-in category for CAT%d", cat)
		}
		if err := reg.Register(build()); err != nil {
			return err
		}
	}
	return nil
}
