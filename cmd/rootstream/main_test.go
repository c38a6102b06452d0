package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomTonic/rootstream"
)

func TestRunStreamHex(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runStream(nil, &out))
	assert.Equal(t, strings.Join(rootstream.Vectors, "\n")+"\n", out.String())
}

func TestRunStreamRaw(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runStream([]string{"--format", "raw", "-n", "2", "--seed", rootstream.DefaultSeed.String()}, &out))
	assert.Equal(t, rootstream.Vectors[0]+rootstream.Vectors[1], hex.EncodeToString(out.Bytes()))
}

func TestRunStreamFloat(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runStream([]string{"-f", "float", "-n", "3", "--seed-float", "0.7071067811865476"}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 3)
}

func TestRunStreamErrors(t *testing.T) {
	testCases := [][]string{
		{"--format", "yaml"},
		{"--hash", "md5"},
		{"--seed", "abc"},
		{"--seed", rootstream.DefaultSeed.String(), "--seed-float", "1"},
		{"--count", "-1"},
		{"--no-such-flag"},
	}
	for _, args := range testCases {
		var out bytes.Buffer
		assert.Error(t, runStream(args, &out), "args %v", args)
	}
	assert.ErrorIs(t, runStream([]string{"--help"}, &bytes.Buffer{}), pflag.ErrHelp)
}

func TestRunStreamHashes(t *testing.T) {
	var sha, b3 bytes.Buffer
	require.NoError(t, runStream([]string{"-n", "1"}, &sha))
	require.NoError(t, runStream([]string{"-n", "1", "--hash", "blake3"}, &b3))
	assert.NotEqual(t, sha.String(), b3.String())
}

func TestRunBench(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runBench([]string{"--chunks", "30", "--reps", "20"}, &out))
	assert.Contains(t, out.String(), "median ns/chunk")
	assert.Equal(t, 5, strings.Count(out.String(), "\n"))
}
