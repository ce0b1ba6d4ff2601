package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/oba-ldap/lber/ldap"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [fixture]",
		Short: "Decode each hex-encoded LDAPMessage in a fixture file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := fixturePath(args)
			if err != nil {
				return err
			}
			return runDecode(path)
		},
	}
}

func runDecode(path string) error {
	messages, err := readFixture(path)
	if err != nil {
		return err
	}

	failures := 0
	for i, data := range messages {
		reqLogger := logger.WithRequestID(uuid.New().String())

		msg, err := ldap.DecodeMessage(data)
		if err != nil {
			reqLogger.Error("decode failed",
				"fixture_line", i+1,
				"bytes", len(data),
				"error", err.Error(),
			)
			failures++
			continue
		}

		reqLogger.Info("decoded message",
			"fixture_line", i+1,
			"message_id", msg.MessageID,
			"operation", fmt.Sprintf("%T", msg.Operation),
			"controls", len(msg.Controls),
		)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d messages failed to decode", failures, len(messages))
	}
	return nil
}
