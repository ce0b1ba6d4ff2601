package main

import (
	"bufio"
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// readFixture reads one hex-encoded BER message per line from path,
// skipping blank lines and lines starting with '#'.
func readFixture(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening fixture %s", path)
	}
	defer f.Close()

	var messages [][]byte
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		data, err := hex.DecodeString(line)
		if err != nil {
			return nil, errors.Wrapf(err, "fixture %s line %d: invalid hex", path, lineNo)
		}
		messages = append(messages, data)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading fixture %s", path)
	}
	return messages, nil
}
