package app

import "testing"

func TestResolveMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		routeID string
		want    Mode
	}{
		{routeID: "", want: ModeListless},
		{routeID: "   ", want: ModeListless},
		{routeID: "add", want: ModeNew},
		{routeID: "ADD", want: ModeNew},
		{routeID: " Add ", want: ModeNew},
		{routeID: "adder", want: ModeEdit},
		{routeID: "3fa85f64-5717-4562-b3fc-2c963f66afa6", want: ModeEdit},
	}
	for _, tc := range tests {
		if got := ResolveMode(tc.routeID); got != tc.want {
			t.Fatalf("ResolveMode(%q) = %v, want %v", tc.routeID, got, tc.want)
		}
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	if ModeListless.String() != "listless" || ModeNew.String() != "new" || ModeEdit.String() != "edit" {
		t.Fatalf("unexpected mode labels: %s %s %s", ModeListless, ModeNew, ModeEdit)
	}
}
