package tests

import (
	"testing"

	"github.com/aretw0/onboarding/internal/validator"
	"github.com/aretw0/onboarding/pkg/domain"
	"github.com/aretw0/onboarding/pkg/ports"
)

// TableLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.TableLoader.
func TableLoaderContractTest(t *testing.T, loader ports.TableLoader, want []domain.Step) {
	t.Helper()

	t.Run("LoadSteps_Content", func(t *testing.T) {
		got, err := loader.LoadSteps()
		if err != nil {
			t.Fatalf("unexpected error loading steps: %v", err)
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d steps, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i].Kind != want[i].Kind || got[i].Title != want[i].Title || got[i].ConfirmLabel != want[i].ConfirmLabel {
				t.Errorf("step %d mismatch: got %+v, want %+v", i, got[i], want[i])
			}
			if len(got[i].Options) != len(want[i].Options) {
				t.Errorf("step %d: expected %d options, got %d", i, len(want[i].Options), len(got[i].Options))
			}
		}
	})

	t.Run("LoadSteps_Valid", func(t *testing.T) {
		got, err := loader.LoadSteps()
		if err != nil {
			t.Fatalf("unexpected error loading steps: %v", err)
		}
		if err := validator.ValidateTable(got); err != nil {
			t.Errorf("loaded table is invalid: %v", err)
		}
	})

	t.Run("LoadSteps_CallerOwnsSlice", func(t *testing.T) {
		first, err := loader.LoadSteps()
		if err != nil {
			t.Fatalf("unexpected error loading steps: %v", err)
		}
		first[0].Title = "mutated"
		for i := range first {
			if len(first[i].Options) > 0 {
				first[i].Options[0].Label = "mutated"
			}
		}

		second, err := loader.LoadSteps()
		if err != nil {
			t.Fatalf("unexpected error loading steps: %v", err)
		}
		if second[0].Title == "mutated" {
			t.Error("mutating a loaded table leaked into the loader")
		}
		for i := range second {
			if len(second[i].Options) > 0 && second[i].Options[0].Label == "mutated" {
				t.Errorf("step %d: option mutation leaked into the loader", i)
			}
		}
	})
}
