// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		maxSize int64
		wantErr bool
	}{
		{name: "empty within limit", data: nil, maxSize: 10, wantErr: false},
		{name: "exactly at limit", data: []byte("0123456789"), maxSize: 10, wantErr: false},
		{name: "over limit", data: []byte("0123456789a"), maxSize: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CheckFileSize(tt.data, tt.maxSize, "config.cue")
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckFileSize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatErrorNil(t *testing.T) {
	t.Parallel()

	if got := FormatError(nil, "config.cue"); got != nil {
		t.Errorf("FormatError(nil) = %v, want nil", got)
	}
}

func TestFormatErrorIncludesPath(t *testing.T) {
	t.Parallel()

	ctx := cuecontext.New()
	schema := ctx.CompileString(`#Config: { verbose: bool }`)
	user := ctx.CompileString(`verbose: "yes"`)

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(user)
	err := unified.Validate()
	if err == nil {
		t.Fatal("expected validation error from mismatched type")
	}

	formatted := FormatError(err, "config.cue")
	if formatted == nil {
		t.Fatal("FormatError() returned nil for non-nil error")
	}
	if !strings.Contains(formatted.Error(), "config.cue") {
		t.Errorf("formatted error missing file path: %v", formatted)
	}
	if !strings.Contains(formatted.Error(), "verbose") {
		t.Errorf("formatted error missing field path: %v", formatted)
	}
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single field", path: []string{"verbose"}, want: "verbose"},
		{name: "nested fields", path: []string{"demo", "scenarios"}, want: "demo.scenarios"},
		{name: "array index", path: []string{"demo", "scenarios", "1"}, want: "demo.scenarios[1]"},
		{name: "index then field", path: []string{"items", "0", "name"}, want: "items[0].name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
