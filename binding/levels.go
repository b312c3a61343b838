package binding

import (
	"fmt"

	"github.com/philipp01105/elfnlog/core"
	"github.com/philipp01105/elfnlog/elf"
)

// nativeLevels maps every loggable facade level onto the backend scale.
var nativeLevels = [elf.OFF]core.Level{
	elf.TRACE: core.FinestLevel,
	elf.DEBUG: core.FineLevel,
	elf.INFO:  core.InfoLevel,
	elf.WARN:  core.WarningLevel,
	elf.ERROR: core.SevereLevel,
}

func init() {
	if err := checkLevelMapping(nativeLevels[:]); err != nil {
		panic(err)
	}
}

// checkLevelMapping verifies that m covers every loggable level and
// preserves the facade's ordering.
func checkLevelMapping(m []core.Level) error {
	if len(m) != int(elf.OFF) {
		return fmt.Errorf("binding: level mapping has %d entries, want %d", len(m), elf.OFF)
	}
	for i, native := range m {
		lvl := elf.Level(i)
		if native == 0 || native == core.AllLevel || native == core.OffLevel {
			return fmt.Errorf("binding: no native level for %v", lvl)
		}
		if i > 0 && native <= m[i-1] {
			return fmt.Errorf("binding: native level of %v (%v) does not rank above %v (%v)",
				lvl, native, elf.Level(i-1), m[i-1])
		}
	}
	return nil
}

// toNative returns the backend level for a loggable level. OFF has no
// native counterpart and never reaches here.
func toNative(level elf.Level) core.Level {
	return nativeLevels[level]
}
