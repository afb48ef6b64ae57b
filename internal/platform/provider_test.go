package platform

import (
	"errors"
	"runtime"
	"testing"
)

func TestNewProvider_ReturnsProvider(t *testing.T) {
	if runtime.GOOS != "darwin" {
		t.Skip("skipping on non-darwin")
	}
	// On darwin, the darwin package may or may not be imported for side
	// effects depending on the test binary. Just verify no panic.
	_, _ = NewProvider()
}

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestErrorTaxonomy_Distinct(t *testing.T) {
	errs := []error{ErrPermissionDenied, ErrWindowNotFound, ErrWindowNotCapturable}
	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors %v and %v should be distinct", a, b)
			}
		}
	}
}
