package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeKind(t *testing.T) {
	assert.Equal(t, "manual", codeKind("AB12-C3F4", ""))
	assert.Equal(t, "qr", codeKind("ab12-c3f4", ""))
	assert.Equal(t, "qr", codeKind("oWFhAQ.payload", ""))
	assert.Equal(t, "qr", codeKind("AB12-C3F4", "qr"))
}

func TestScanLoop_SkipsBlankLinesAndKeepsGoing(t *testing.T) {
	var seen []string
	in := strings.NewReader("AB12-C3F4\n\n  bad  \nCD34-E5F6\n")

	err := scanLoop(in, false, func(code string) error {
		seen = append(seen, code)
		if code == "bad" {
			return errors.New("malformed code")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"AB12-C3F4", "bad", "CD34-E5F6"}, seen)
}

func TestRun_UnknownCommand(t *testing.T) {
	require.Error(t, run([]string{"dance"}))
	require.NoError(t, run([]string{"help"}))
}
