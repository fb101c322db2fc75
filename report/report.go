// Package report turns classified accounts into table rows and JSON
// entries.
package report

import (
	"strconv"
	"unicode/utf8"

	"github.com/mordilloSan/getusers/accounts"
)

// SudoChecker reports sudo rights for an account name.
type SudoChecker interface {
	IsSudo(name string) bool
}

// LoginSource reports the most recent login for an account name.
type LoginSource interface {
	LastLogin(name string) string
}

// Builder assembles report rows from classified accounts.
type Builder struct {
	Sudo   SudoChecker
	Logins LoginSource
}

// Row is one table line, one string per cell.
type Row []string

// Entry is the JSON form of one reported account. It always carries the
// full record, with the comment field left untruncated.
type Entry struct {
	UID       int    `json:"uid"`
	Username  string `json:"username"`
	GID       int    `json:"gid"`
	Gecos     string `json:"gecos"`
	HomeDir   string `json:"homeDir"`
	Shell     string `json:"shell"`
	Sudo      bool   `json:"sudo"`
	LastLogin string `json:"lastLogin"`
}

// Headers returns the column titles for the standard or full row shape.
func Headers(full bool) []string {
	if full {
		return []string{"ID", "User", "Group ID", "GECOS", "Home", "Shell", "Sudo", "Last Login"}
	}
	return []string{"ID", "User", "Home", "Shell", "Sudo", "Last Login"}
}

// Build produces one row per account, in input order.
func (b *Builder) Build(accts []accounts.Account, full bool) []Row {
	rows := []Row{}
	for _, a := range accts {
		sudo := "no"
		if b.Sudo.IsSudo(a.Username) {
			sudo = "yes"
		}
		last := b.Logins.LastLogin(a.Username)

		if full {
			rows = append(rows, Row{
				strconv.Itoa(a.UID),
				a.Username,
				strconv.Itoa(a.GID),
				comment(a.Gecos),
				a.HomeDir,
				a.Shell,
				sudo,
				last,
			})
			continue
		}

		rows = append(rows, Row{
			strconv.Itoa(a.UID),
			a.Username,
			a.HomeDir,
			a.Shell,
			sudo,
			last,
		})
	}

	return rows
}

// Entries produces the JSON form of the report, in input order.
func (b *Builder) Entries(accts []accounts.Account) []Entry {
	entries := []Entry{}
	for _, a := range accts {
		entries = append(entries, Entry{
			UID:       a.UID,
			Username:  a.Username,
			GID:       a.GID,
			Gecos:     a.Gecos,
			HomeDir:   a.HomeDir,
			Shell:     a.Shell,
			Sudo:      b.Sudo.IsSudo(a.Username),
			LastLogin: b.Logins.LastLogin(a.Username),
		})
	}

	return entries
}

// comment shortens a GECOS value for display: anything longer than 18
// characters keeps its first 16 plus "..", and an empty value reads "None".
// Lengths count characters, not bytes, so multi-byte runes are never split.
func comment(gecos string) string {
	if utf8.RuneCountInString(gecos) > 18 {
		gecos = string([]rune(gecos)[:16]) + ".."
	}
	if gecos == "" {
		gecos = "None"
	}
	return gecos
}
