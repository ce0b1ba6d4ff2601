package main

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/oba-ldap/lber/ldap"
)

func newRoundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip [fixture]",
		Short: "Decode then re-encode each fixture message and check the bytes match",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := fixturePath(args)
			if err != nil {
				return err
			}
			return runRoundtrip(path)
		},
	}
}

func runRoundtrip(path string) error {
	messages, err := readFixture(path)
	if err != nil {
		return err
	}

	mismatches := 0
	for i, data := range messages {
		reqLogger := logger.WithRequestID(uuid.New().String())

		msg, err := ldap.DecodeMessage(data)
		if err != nil {
			reqLogger.Error("decode failed", "fixture_line", i+1, "error", err.Error())
			mismatches++
			continue
		}

		reencoded, err := msg.Encode()
		if err != nil {
			reqLogger.Error("re-encode failed", "fixture_line", i+1, "error", err.Error())
			mismatches++
			continue
		}

		if !bytes.Equal(data, reencoded) {
			reqLogger.Error("round-trip mismatch",
				"fixture_line", i+1,
				"original_bytes", len(data),
				"reencoded_bytes", len(reencoded),
			)
			mismatches++
			continue
		}

		reqLogger.Info("round-trip ok", "fixture_line", i+1, "bytes", len(data))
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d messages failed to round-trip", mismatches, len(messages))
	}
	return nil
}
