// Command oba-codec is a demo CLI over the ber/ldap wire codec: it
// decodes LDAPMessage fixtures to a structured dump and can round-trip
// them back through the encoder to check the codec is lossless.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
