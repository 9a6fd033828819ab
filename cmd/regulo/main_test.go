package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func testContext(t *testing.T, level string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("log-level", level, "")
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestSetupLogger(t *testing.T) {
	t.Run("accepts known levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
			assert.NoError(t, setupLogger(testContext(t, level)), level)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		assert.Error(t, setupLogger(testContext(t, "verbose")))
	})
}
