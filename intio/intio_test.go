package intio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReadInts(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []int
	}{
		{"newlines", "5\n3\n8\n", []int{5, 3, 8}},
		{"mixed whitespace", "  5 3\t8\r\n\n 1 ", []int{5, 3, 8, 1}},
		{"signs", "-4 +2 0", []int{-4, 2, 0}},
		{"stops at word", "1 2 abc 3 4", []int{1, 2}},
		{"keeps numeric prefix", "1 12x 3", []int{1, 12}},
		{"numeric prefix at eof", "5 6x", []int{5, 6}},
		{"sign without digits", "4 - 5", []int{4}},
		{"double sign", "4 --5", []int{4}},
		{"out of range", "4 99999999999999999999999 5", []int{4}},
		{"empty", "", nil},
		{"only garbage", "hello 1 2", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadInts(strings.NewReader(tc.input), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadIntsWarnsOnBadToken(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	got, err := ReadInts(strings.NewReader("7 x 9"), zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, []int{7}, got)

	entries := logs.FilterField(zap.String("token", "x")).All()
	require.Len(t, entries, 1)
	assert.Equal(t, "non-integer token in input; stopping read", entries[0].Message)
}

func TestReadIntsHugeBadToken(t *testing.T) {
	input := "4 5 " + strings.Repeat("a", 70_000) + " 6"

	got, err := ReadInts(strings.NewReader(input), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got)
}

func TestReadIntsHugeTrailingGarbage(t *testing.T) {
	input := "3 8" + strings.Repeat("z", 70_000)

	got, err := ReadInts(strings.NewReader(input), nil)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 8}, got)
}

func TestWriteInts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInts(&buf, []int{1, 3, 3, -5}))
	assert.Equal(t, "1\n3\n3\n-5\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteInts(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nums.txt")

	require.NoError(t, WriteFile(path, []int{10, 20, 30}))
	got, err := ReadFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.txt"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o644))
	_, err = ReadFile(empty, nil)
	assert.ErrorIs(t, err, ErrNoIntegers)
}

func TestEnsureDir(t *testing.T) {
	dir := t.TempDir()

	out := filepath.Join(dir, "outputs")
	require.NoError(t, EnsureDir(out))
	require.NoError(t, EnsureDir(out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	assert.Error(t, EnsureDir(file))
}
