package accounts

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// DefaultThresholds returns the boundaries used for any key login.defs does
// not set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		UIDMin:    1000,
		UIDMax:    60000,
		SysUIDMin: 0,
		SysUIDMax: 999,
	}
}

// LoadThresholds reads UID_MIN, UID_MAX, SYS_UID_MIN and SYS_UID_MAX from a
// login.defs-format file. Unknown keys are ignored and absent keys keep
// their defaults, but a recognized key that does not carry an integer value
// is an error. When a key appears more than once the last value wins.
func LoadThresholds(path string) (Thresholds, error) {
	th := DefaultThresholds()

	cfg, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters: " \t",
		AllowBooleanKeys:   true,
	}, path)
	if err != nil {
		return th, fmt.Errorf("failed to open defs file: %w", err)
	}

	section := cfg.Section("")

	if err := readThreshold(section, "UID_MIN", &th.UIDMin); err != nil {
		return th, fmt.Errorf("bad value in %s: %w", path, err)
	}
	if err := readThreshold(section, "UID_MAX", &th.UIDMax); err != nil {
		return th, fmt.Errorf("bad value in %s: %w", path, err)
	}
	if err := readThreshold(section, "SYS_UID_MIN", &th.SysUIDMin); err != nil {
		return th, fmt.Errorf("bad value in %s: %w", path, err)
	}
	if err := readThreshold(section, "SYS_UID_MAX", &th.SysUIDMax); err != nil {
		return th, fmt.Errorf("bad value in %s: %w", path, err)
	}

	return th, nil
}

// readThreshold overwrites dst when the key is present in the section.
func readThreshold(section *ini.Section, name string, dst *int) error {
	if !section.HasKey(name) {
		return nil
	}

	v, err := section.Key(name).Int()
	if err != nil {
		return fmt.Errorf("%s is not an integer: %w", name, err)
	}

	*dst = v
	return nil
}
