package ads

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewErrorKnownCodes(t *testing.T) {
	// Tablodaki her kod için mesaj, açıklama + kod biçiminde kurulmalı
	for code, desc := range errorCodes {
		e := NewError(code, "")
		want := fmt.Sprintf("%s (%d). ", desc, code)
		if e.Msg != want {
			t.Fatalf("code %d: got %q, want %q", code, e.Msg, want)
		}
		if !e.HasCode || e.Code != code {
			t.Fatalf("code %d: code not carried: %+v", code, e)
		}
	}
}

func TestNewErrorUnknownCode(t *testing.T) {
	e := NewError(999999, "")
	if e.Msg != "Unknown Error (999999). " {
		t.Fatalf("got %q", e.Msg)
	}
	if !strings.Contains(e.Error(), "Unknown Error") {
		t.Fatalf("rendered error missing phrase: %q", e.Error())
	}
}

func TestNewErrorAppendsText(t *testing.T) {
	e := NewError(1808, "reading symbol MAIN.counter")
	want := "Symbol not found (1808). reading symbol MAIN.counter"
	if e.Msg != want {
		t.Fatalf("got %q, want %q", e.Msg, want)
	}
	if e.Error() != "ADSError: "+want {
		t.Fatalf("rendered: %q", e.Error())
	}
}

func TestNewTextError(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "text only", text: "x", want: "x"},
		{name: "empty", text: "", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewTextError(tc.text)
			if e.Msg != tc.want {
				t.Fatalf("got %q, want %q", e.Msg, tc.want)
			}
			if e.HasCode {
				t.Fatalf("text-only error must not carry a code")
			}
			if e.Error() != "ADSError: "+tc.want {
				t.Fatalf("rendered: %q", e.Error())
			}
		})
	}
}
