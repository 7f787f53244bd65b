package config

import (
	"path/filepath"
	"testing"
)

func TestResolveLedgerFlags(t *testing.T) {
	appDir := filepath.Join("some", "app", "dir")
	flags := &LedgerFlags{AppDir: appDir}
	err := flags.ResolveLedgerFlags()
	if err != nil {
		t.Fatalf("ResolveLedgerFlags: %+v", err)
	}
	if flags.LogDir != filepath.Join(appDir, defaultLogDirname) {
		t.Fatalf("TestResolveLedgerFlags: unexpected log dir %s", flags.LogDir)
	}
	if flags.LogLevel != defaultLogLevel {
		t.Fatalf("TestResolveLedgerFlags: unexpected log level %s", flags.LogLevel)
	}
	if flags.Policy != "fcfs" {
		t.Fatalf("TestResolveLedgerFlags: unexpected policy %s", flags.Policy)
	}
	if flags.DatabaseDir() != filepath.Join(appDir, defaultDataDirname) {
		t.Fatalf("TestResolveLedgerFlags: unexpected database dir %s", flags.DatabaseDir())
	}
	if flags.LogFile() != filepath.Join(appDir, defaultLogDirname, defaultLogFilename) {
		t.Fatalf("TestResolveLedgerFlags: unexpected log file %s", flags.LogFile())
	}

	flags = &LedgerFlags{AppDir: appDir, Policy: "largest-first"}
	err = flags.ResolveLedgerFlags()
	if err == nil {
		t.Fatalf("TestResolveLedgerFlags: expected an error for an unknown policy")
	}

	flags = &LedgerFlags{AppDir: appDir, LogLevel: "noisy"}
	err = flags.ResolveLedgerFlags()
	if err != nil {
		t.Fatalf("ResolveLedgerFlags: %+v", err)
	}
	err = flags.ApplyLogLevel()
	if err == nil {
		t.Fatalf("TestResolveLedgerFlags: expected an error for an invalid log level")
	}
}
