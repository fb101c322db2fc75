package accounts

// Classify filters accounts down to the requested mode, preserving input
// order. System accounts are those with UID <= SysUIDMax; regular accounts
// are those with UIDMin <= UID <= UIDMax. The two ranges are independent,
// so an account can belong to both.
func Classify(accts []Account, mode Mode, th Thresholds) []Account {
	if mode == ModeAll {
		return accts
	}

	out := []Account{}
	for _, a := range accts {
		switch mode {
		case ModeSystem:
			if a.UID <= th.SysUIDMax {
				out = append(out, a)
			}
		case ModeRegular:
			if a.UID >= th.UIDMin && a.UID <= th.UIDMax {
				out = append(out, a)
			}
		}
	}

	return out
}
