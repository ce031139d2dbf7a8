// Command fallbacksync publishes and inspects the fallback content snapshot
// kept in the R2 bucket.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
