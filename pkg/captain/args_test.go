// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package captain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Categorization
	}{
		{
			name: "empty",
			args: nil,
			want: Categorization{Positionals: []string{}},
		},
		{
			name: "positionals keep order",
			args: []string{"copy", "b.txt", "a.txt"},
			want: Categorization{Positionals: []string{"copy", "b.txt", "a.txt"}},
		},
		{
			name: "long flag",
			args: []string{"--world", "shout", "hi"},
			want: Categorization{Positionals: []string{"shout", "hi"}, Long: []string{"world"}},
		},
		{
			name: "combined short flags explode",
			args: []string{"-avz", "src", "-q", "dst"},
			want: Categorization{
				Positionals: []string{"src", "dst"},
				Short:       []string{"a", "v", "z", "q"},
			},
		},
		{
			name: "long flag keeps inner dashes",
			args: []string{"--dry-run", "---x"},
			want: Categorization{Positionals: []string{}, Long: []string{"dry-run", "-x"}},
		},
		{
			name: "multibyte short flag",
			args: []string{"-é"},
			want: Categorization{Positionals: []string{}, Short: []string{"é"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Categorize(tt.args)
			if err != nil {
				t.Fatalf("Categorize() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Categorize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCategorizeOnlyPositionals(t *testing.T) {
	inputs := [][]string{
		{"a"},
		{"z", "y", "x", "w"},
		{"same", "same", "same"},
		{"with space", "ünïcode", "1", "2"},
	}
	for _, args := range inputs {
		got, err := Categorize(args)
		if err != nil {
			t.Fatalf("Categorize(%q) error = %v", args, err)
		}
		if len(got.Long) != 0 || len(got.Short) != 0 {
			t.Errorf("Categorize(%q) flags = %q %q, want none", args, got.Long, got.Short)
		}
		if diff := cmp.Diff(args, got.Positionals); diff != "" {
			t.Errorf("Categorize(%q) positionals mismatch (-want +got):\n%s", args, diff)
		}
	}
}

func TestCategorizeMalformed(t *testing.T) {
	for _, tok := range []string{"-", "--"} {
		_, err := Categorize([]string{"cmd", tok, "arg"})
		var malformed *MalformedFlagError
		if !errors.As(err, &malformed) {
			t.Fatalf("Categorize(%q) error = %v, want *MalformedFlagError", tok, err)
		}
		if malformed.Token != tok {
			t.Errorf("Token = %q, want %q", malformed.Token, tok)
		}
		if !IsUsageError(err) {
			t.Errorf("IsUsageError(%v) = false, want true", err)
		}
	}
}
