package main

import (
	"errors"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/yigit/unipay/internal/pkg/apperrors"
	"github.com/yigit/unipay/internal/seed"
)

func execute(t *testing.T, args ...string) (*runFlags, error) {
	t.Helper()
	var got *runFlags
	cmd := newRootCmd(func(_ *cobra.Command, f *runFlags) error {
		got = f
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return got, err
}

func TestRootCmdDefaults(t *testing.T) {
	f, err := execute(t)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if f.opts != seed.DefaultOptions() {
		t.Errorf("opts = %+v, want defaults", f.opts)
	}
	if f.configPath != "configs/config.yaml" || f.seed != 0 || f.migrate {
		t.Errorf("unexpected flags %+v", f)
	}
}

func TestRootCmdFlags(t *testing.T) {
	f, err := execute(t, "--students", "25", "--orgs", "1", "--fees", "0", "--requests", "4",
		"--config", "/etc/unipay.yaml", "--seed", "42", "--migrate")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	want := seed.Options{Students: 25, Orgs: 1, FeesPerOrg: 0, RequestsPerStudent: 4}
	if f.opts != want {
		t.Errorf("opts = %+v, want %+v", f.opts, want)
	}
	if f.configPath != "/etc/unipay.yaml" || f.seed != 42 || !f.migrate {
		t.Errorf("unexpected flags %+v", f)
	}
}

func TestRootCmdRejectsBadInput(t *testing.T) {
	f, err := execute(t, "--students", "-3")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f != nil {
		t.Errorf("run should not be called for invalid options")
	}

	if _, err := execute(t, "--students", "many"); err == nil {
		t.Errorf("expected flag parse error")
	}
	if _, err := execute(t, "extra"); err == nil {
		t.Errorf("expected positional arguments to be rejected")
	}
}
