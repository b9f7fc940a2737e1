package lookup

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nao1215/mbdg/internal/model"
)

func TestInteractive(t *testing.T) {
	t.Parallel()

	t.Run("prints results until Q", func(t *testing.T) {
		t.Parallel()

		svc := NewService(newTestDictionary(t))
		var out bytes.Buffer

		err := svc.Interactive(context.Background(), strings.NewReader("你好\nxyz\nQ\n中国\n"), &out, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := out.String()
		if strings.Count(got, Prompt) != 3 {
			t.Errorf("expected 3 prompts, got %d: %q", strings.Count(got, Prompt), got)
		}
		if !strings.Contains(got, "你好 ni3 hao3 ['hello', 'hi']\n") {
			t.Errorf("expected hello entry in output, got %q", got)
		}
		if !strings.Contains(got, "Entry 'xyz' is not found. Please try again.\n") {
			t.Errorf("expected not-found message in output, got %q", got)
		}
		if strings.Contains(got, "China") {
			t.Error("expected input after Q to be ignored")
		}
	})

	t.Run("lowercase q is a query", func(t *testing.T) {
		t.Parallel()

		svc := NewService(newTestDictionary(t))
		var out bytes.Buffer

		if err := svc.Interactive(context.Background(), strings.NewReader("q\nQ\n"), &out, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "Entry 'q' is not found.") {
			t.Errorf("expected q to be looked up, got %q", out.String())
		}
	})

	t.Run("end of input ends the loop", func(t *testing.T) {
		t.Parallel()

		svc := NewService(newTestDictionary(t))
		var out bytes.Buffer

		if err := svc.Interactive(context.Background(), strings.NewReader("中国"), &out, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "['China']") {
			t.Errorf("expected China entry, got %q", out.String())
		}
	})

	t.Run("decorator rewrites output", func(t *testing.T) {
		t.Parallel()

		svc := NewService(newTestDictionary(t))
		var out bytes.Buffer
		decorate := func(r model.Result, s string) string {
			if !r.Found() {
				return "!" + s
			}
			return s
		}

		if err := svc.Interactive(context.Background(), strings.NewReader("xyz\nQ\n"), &out, decorate); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out.String(), "!Entry 'xyz'") {
			t.Errorf("expected decorated message, got %q", out.String())
		}
	})
}

func TestInteractiveLongLine(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestDictionary(t))
	var out bytes.Buffer

	long := strings.Repeat("x", 70000)
	err := svc.Interactive(context.Background(), strings.NewReader(long+"\n你好\nQ\n"), &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), NotFoundMessage(long)) {
		t.Error("expected not found message for the long query")
	}
	if !strings.Contains(out.String(), "你好 ni3 hao3") {
		t.Error("expected lookup after the long query to succeed")
	}
}
