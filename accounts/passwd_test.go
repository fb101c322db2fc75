package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("parses_rows_in_file_order", func(t *testing.T) {
		path := writeFixture(t, tmpDir, "passwd", ""+
			"root:x:0:0:root:/root:/bin/bash\n"+
			"daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin\n"+
			"alice:x:1000:1000:Alice Cooper:/home/alice:/bin/bash\n")

		accts, err := Load(path)
		require.NoError(t, err)
		require.Len(t, accts, 3)

		assert.Equal(t, Account{
			Username: "root",
			UID:      0,
			GID:      0,
			Gecos:    "root",
			HomeDir:  "/root",
			Shell:    "/bin/bash",
		}, accts[0])
		assert.Equal(t, "daemon", accts[1].Username)
		assert.Equal(t, 1000, accts[2].UID)
		assert.Equal(t, "Alice Cooper", accts[2].Gecos)
	})

	t.Run("skips_comments_and_blank_lines", func(t *testing.T) {
		path := writeFixture(t, tmpDir, "passwd_comments", ""+
			"# local accounts\n"+
			"\n"+
			"root:x:0:0:root:/root:/bin/bash\n")

		accts, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, accts, 1)
	})

	t.Run("skips_rows_with_missing_fields", func(t *testing.T) {
		path := writeFixture(t, tmpDir, "passwd_short", ""+
			"broken:x:12\n"+
			"root:x:0:0:root:/root:/bin/bash\n")

		accts, err := Load(path)
		require.NoError(t, err)
		require.Len(t, accts, 1)
		assert.Equal(t, "root", accts[0].Username)
	})

	t.Run("skips_rows_with_non_numeric_ids", func(t *testing.T) {
		path := writeFixture(t, tmpDir, "passwd_badid", ""+
			"baduid:x:notanumber:0:x:/:/bin/sh\n"+
			"badgid:x:5:notanumber:x:/:/bin/sh\n"+
			"ok:x:5:5:x:/:/bin/sh\n")

		accts, err := Load(path)
		require.NoError(t, err)
		require.Len(t, accts, 1)
		assert.Equal(t, "ok", accts[0].Username)
	})

	t.Run("keeps_extra_fields_on_long_rows", func(t *testing.T) {
		path := writeFixture(t, tmpDir, "passwd_long", "odd:x:7:7:gecos:with:colons:/home/odd:/bin/sh\n")

		accts, err := Load(path)
		require.NoError(t, err)
		require.Len(t, accts, 1)
		assert.Equal(t, "gecos", accts[0].Gecos)
		assert.Equal(t, "with", accts[0].HomeDir)
	})

	t.Run("missing_file_is_an_error", func(t *testing.T) {
		_, err := Load(filepath.Join(tmpDir, "nope"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open passwd file")
	})
}
