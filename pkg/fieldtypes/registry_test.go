package fieldtypes

import (
	"testing"
)

func TestRegistry_Embedded(t *testing.T) {
	r := GetRegistry()

	if !r.IsComputed("formula") {
		t.Errorf("formula should be computed")
	}
	if r.IsComputed("singleLineText") {
		t.Errorf("singleLineText should not be computed")
	}
	if got := r.InputKind("unknownKind"); got != InputText {
		t.Errorf("unknown kinds should edit as text, got %s", got)
	}
	if got := r.Step("currency"); got != "0.01" {
		t.Errorf("currency step = %s, want 0.01", got)
	}
	if got := r.Step("singleLineText"); got != "1" {
		t.Errorf("default step = %s, want 1", got)
	}
}

func TestGetAllFieldTypes_Sorted(t *testing.T) {
	all := GetAllFieldTypes()
	if len(all) == 0 {
		t.Fatal("registry is empty")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Fatalf("not sorted at %d: %s >= %s", i, all[i-1].Name, all[i].Name)
		}
	}
}
