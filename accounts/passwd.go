package accounts

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Load reads every account from a passwd-format file, preserving file order.
func Load(path string) ([]Account, error) {
	accounts := []Account{}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open passwd file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ":")
		if len(parts) < 7 {
			continue
		}

		uid, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}

		gid, err := strconv.Atoi(parts[3])
		if err != nil {
			continue
		}

		accounts = append(accounts, Account{
			Username: parts[0],
			UID:      uid,
			GID:      gid,
			Gecos:    parts[4],
			HomeDir:  parts[5],
			Shell:    parts[6],
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading passwd file: %w", err)
	}

	return accounts, nil
}
