package accounts

// Account represents one row of the account database
type Account struct {
	Username string `json:"username"`
	UID      int    `json:"uid"`
	GID      int    `json:"gid"`
	Gecos    string `json:"gecos"`
	HomeDir  string `json:"homeDir"`
	Shell    string `json:"shell"`
}

// Thresholds carries the UID boundaries that split system accounts from
// regular ones
type Thresholds struct {
	UIDMin    int `json:"uidMin"`
	UIDMax    int `json:"uidMax"`
	SysUIDMin int `json:"sysUidMin"`
	SysUIDMax int `json:"sysUidMax"`
}

// Mode selects which class of accounts a report covers.
type Mode int

const (
	ModeRegular Mode = iota
	ModeSystem
	ModeAll
)

func (m Mode) String() string {
	switch m {
	case ModeSystem:
		return "system"
	case ModeAll:
		return "all"
	default:
		return "regular"
	}
}
