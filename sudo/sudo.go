// Package sudo resolves sudo rights from the sudoers file and the group
// database.
package sudo

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"
)

// privilegedGroups are the groups whose members hold sudo rights.
var privilegedGroups = []string{"wheel", "admin", "sudo"}

// Checker answers sudo-rights queries against a snapshot of the sudoers and
// group files taken at load time.
type Checker struct {
	sudoers []string
	groups  []string
}

// Load reads both files once. Either file failing to open is an error.
func Load(groupPath, sudoersPath string) (*Checker, error) {
	groups, err := readLines(groupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open group file: %w", err)
	}

	sudoers, err := readLines(sudoersPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sudoers file: %w", err)
	}

	return &Checker{sudoers: sudoers, groups: groups}, nil
}

// IsSudo reports whether name holds sudo rights: either some sudoers line
// contains name followed by a space, or name is listed as a member of
// wheel, admin, or sudo.
func (c *Checker) IsSudo(name string) bool {
	needle := name + " "
	for _, line := range c.sudoers {
		if strings.Contains(line, needle) {
			return true
		}
	}

	for _, line := range c.groups {
		parts := strings.Split(strings.TrimSpace(line), ":")
		if len(parts) < 4 {
			continue
		}

		if !slices.Contains(privilegedGroups, parts[0]) {
			continue
		}

		for member := range strings.SplitSeq(parts[3], ",") {
			if member == name {
				return true
			}
		}
	}

	return false
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines := []string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}
