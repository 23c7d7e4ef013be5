package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotatingFile_Rotates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "globalweather.log")

	rf, err := NewRotatingFile(path, 10, 2)
	require.NoError(t, err)
	defer rf.Close()

	for _, line := range []string{"first...\n", "second..\n", "third...\n", "fourth..\n"} {
		_, err := rf.Write([]byte(line))
		require.NoError(t, err)
	}

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fourth..\n", string(current))

	b1, err := os.ReadFile(path + ".1")
	require.NoError(t, err)
	assert.Equal(t, "third...\n", string(b1))

	b2, err := os.ReadFile(path + ".2")
	require.NoError(t, err)
	assert.Equal(t, "second..\n", string(b2))

	_, err = os.Stat(path + ".3")
	assert.True(t, os.IsNotExist(err), "only two backups should be kept")
}

func TestRotatingFile_NoBackups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gw.log")

	rf, err := NewRotatingFile(path, 8, 0)
	require.NoError(t, err)
	defer rf.Close()

	_, err = rf.Write([]byte("aaaaaa\n"))
	require.NoError(t, err)
	_, err = rf.Write([]byte("bbbbbb\n"))
	require.NoError(t, err)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bbbbbb\n", string(current))

	_, err = os.Stat(path + ".1")
	assert.True(t, os.IsNotExist(err))
}

func TestRotatingFile_AppendsToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gw.log")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0600))

	rf, err := NewRotatingFile(path, 1024, 1)
	require.NoError(t, err)
	_, err = rf.Write([]byte("new\n"))
	require.NoError(t, err)
	require.NoError(t, rf.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old\nnew\n", string(data))
}

func TestRotatingFile_WriteAfterClose(t *testing.T) {
	rf, err := NewRotatingFile(filepath.Join(t.TempDir(), "gw.log"), 1024, 1)
	require.NoError(t, err)
	require.NoError(t, rf.Close())
	require.NoError(t, rf.Close())

	_, err = rf.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestNewRotatingFile_InvalidSize(t *testing.T) {
	_, err := NewRotatingFile(filepath.Join(t.TempDir(), "gw.log"), 0, 1)
	assert.True(t, err != nil && strings.Contains(err.Error(), "max size"))
}
